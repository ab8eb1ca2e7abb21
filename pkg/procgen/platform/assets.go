package platform

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// maxLevelSize bounds a single segment file to prevent OOM on a
// malformed or adversarial asset.
const maxLevelSize = 1_000_000

// maxTilemapDimension bounds parsed tilemap width/height.
const maxTilemapDimension = 500

//go:embed segments
var embeddedSegments embed.FS

// SegmentFile is a parsed segment asset: header metadata plus its
// tilemap body, round-trippable back to the same text via String.
type SegmentFile struct {
	ID             string
	Name           string
	Next           string
	Biome          BiomeID
	HasBiome       bool
	Archetype      Archetype
	HasArchetype   bool
	DifficultyTier int
	HasTier        bool
	Lines          []string
}

// ParseSegmentFile parses the header/body format shared by every
// segment asset:
//
//	name: Level Name
//	next: next_level_id
//	biome: ocean_depths
//	archetype: gauntlet
//	difficulty: 2
//	---
//	<tilemap data>
//
// The header is optional; content with no "---" separator is treated
// entirely as tilemap body for backwards compatibility with bare maps.
func ParseSegmentFile(id, content string) (*SegmentFile, error) {
	if len(content) > maxLevelSize {
		return nil, &ErrFileTooLarge{Size: len(content), MaxSize: maxLevelSize}
	}

	sf := &SegmentFile{ID: id, Name: "Unnamed Level"}
	var body []string
	inMapSection := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "---" {
			inMapSection = true
			continue
		}
		if inMapSection {
			body = append(body, line)
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "name:"):
			sf.Name = strings.TrimSpace(strings.TrimPrefix(trimmed, "name:"))
		case strings.HasPrefix(trimmed, "next:"):
			next := strings.TrimSpace(strings.TrimPrefix(trimmed, "next:"))
			if next != "" {
				sf.Next = next
			}
		case strings.HasPrefix(trimmed, "biome:"):
			if b, ok := ParseBiomeID(strings.TrimSpace(strings.TrimPrefix(trimmed, "biome:"))); ok {
				sf.Biome, sf.HasBiome = b, true
			}
		case strings.HasPrefix(trimmed, "archetype:"):
			if a, ok := ParseArchetype(strings.TrimSpace(strings.TrimPrefix(trimmed, "archetype:"))); ok {
				sf.Archetype, sf.HasArchetype = a, true
			}
		case strings.HasPrefix(trimmed, "difficulty:"):
			if tier, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(trimmed, "difficulty:"))); err == nil {
				sf.DifficultyTier, sf.HasTier = tier, true
			}
		}
	}

	if !inMapSection {
		body = strings.Split(content, "\n")
	}
	// Parsing consumes a trailing empty line from the final "\n" split;
	// drop it so String() round-trips the same line count.
	if len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	sf.Lines = body

	width := 0
	for _, line := range sf.Lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width > maxTilemapDimension || len(sf.Lines) > maxTilemapDimension {
		return nil, &ErrTilemapTooLarge{Width: width, Height: len(sf.Lines), MaxDimension: maxTilemapDimension}
	}
	if width == 0 || len(sf.Lines) == 0 {
		return nil, &ErrEmptyTilemap{}
	}

	return sf, nil
}

// String serializes a SegmentFile back into the header/body format
// ParseSegmentFile accepts.
func (sf *SegmentFile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", sf.Name)
	if sf.Next != "" {
		fmt.Fprintf(&b, "next: %s\n", sf.Next)
	}
	if sf.HasBiome {
		fmt.Fprintf(&b, "biome: %s\n", sf.Biome.String())
	}
	if sf.HasArchetype {
		fmt.Fprintf(&b, "archetype: %s\n", sf.Archetype.String())
	}
	if sf.HasTier {
		fmt.Fprintf(&b, "difficulty: %d\n", sf.DifficultyTier)
	}
	b.WriteString("---\n")
	for _, line := range sf.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// ToSegment converts a parsed asset into the Pool's runtime Segment
// type. Missing biome/archetype/tier default to zero values
// (OceanDepths, Ascent, tier 0); the loaders take these only from each
// file's header, never from its directory.
func (sf *SegmentFile) ToSegment() *Segment {
	return &Segment{
		ID:             sf.ID,
		Name:           sf.Name,
		Next:           sf.Next,
		Biome:          sf.Biome,
		Archetype:      sf.Archetype,
		DifficultyTier: sf.DifficultyTier,
		Lines:          sf.Lines,
	}
}

// LoadEmbeddedPool walks the embedded segments directory tree and
// parses every *.level file it finds into a Pool. Subdirectory names
// are not interpreted; biome/archetype/tier come entirely from each
// file's header.
func LoadEmbeddedPool() (*Pool, error) {
	return LoadPoolFromFS(embeddedSegments, "segments")
}

// LoadPoolFromFS parses every *.level file under root in fsys into a
// Pool, useful for tests and for loading an external, non-embedded
// segment directory.
func LoadPoolFromFS(fsys fs.FS, root string) (*Pool, error) {
	pool := NewPool()

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".level" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		id := strings.TrimSuffix(path.Base(p), ".level")
		sf, err := ParseSegmentFile(id, string(data))
		if err != nil {
			return fmt.Errorf("parsing segment %s: %w", p, err)
		}
		pool.AddLevel(sf.ToSegment())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}
