package platform

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseSegmentFileWithHeader(t *testing.T) {
	content := "name: Test Room\n" +
		"next: room_02\n" +
		"biome: ocean_depths\n" +
		"archetype: gauntlet\n" +
		"difficulty: 2\n" +
		"---\n" +
		"#####\n" +
		"#P  #\n" +
		"#####\n"

	sf, err := ParseSegmentFile("room_01", content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sf.Name != "Test Room" {
		t.Errorf("Name = %q, want %q", sf.Name, "Test Room")
	}
	if sf.Next != "room_02" {
		t.Errorf("Next = %q, want %q", sf.Next, "room_02")
	}
	if !sf.HasBiome || sf.Biome != BiomeOceanDepths {
		t.Errorf("Biome = %v (has=%v), want BiomeOceanDepths", sf.Biome, sf.HasBiome)
	}
	if !sf.HasArchetype || sf.Archetype != ArchetypeGauntlet {
		t.Errorf("Archetype = %v (has=%v), want ArchetypeGauntlet", sf.Archetype, sf.HasArchetype)
	}
	if !sf.HasTier || sf.DifficultyTier != 2 {
		t.Errorf("DifficultyTier = %d (has=%v), want 2", sf.DifficultyTier, sf.HasTier)
	}
	if len(sf.Lines) != 3 {
		t.Fatalf("Lines = %d rows, want 3: %#v", len(sf.Lines), sf.Lines)
	}
}

func TestParseSegmentFileWithoutHeader(t *testing.T) {
	content := "#####\n#P  #\n#####\n"

	sf, err := ParseSegmentFile("bare", content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sf.HasBiome || sf.HasArchetype || sf.HasTier {
		t.Errorf("bare tilemap should have no header metadata, got %+v", sf)
	}
	if len(sf.Lines) != 3 {
		t.Fatalf("Lines = %d rows, want 3", len(sf.Lines))
	}
}

func TestParseSegmentFileRejectsOversizedFile(t *testing.T) {
	huge := strings.Repeat("#", maxLevelSize+1)
	_, err := ParseSegmentFile("oversized", huge)
	if err == nil {
		t.Fatal("expected error for oversized file, got nil")
	}
	if _, ok := err.(*ErrFileTooLarge); !ok {
		t.Fatalf("expected *ErrFileTooLarge, got %T", err)
	}
}

func TestParseSegmentFileRejectsOversizedTilemap(t *testing.T) {
	var b strings.Builder
	b.WriteString("name: Giant\n---\n")
	row := strings.Repeat("#", maxTilemapDimension+1) + "\n"
	for i := 0; i < 3; i++ {
		b.WriteString(row)
	}

	_, err := ParseSegmentFile("giant", b.String())
	if err == nil {
		t.Fatal("expected error for oversized tilemap, got nil")
	}
	if _, ok := err.(*ErrTilemapTooLarge); !ok {
		t.Fatalf("expected *ErrTilemapTooLarge, got %T", err)
	}
}

func TestParseSegmentFileRejectsEmptyTilemap(t *testing.T) {
	_, err := ParseSegmentFile("empty", "name: Nothing\n---\n")
	if err == nil {
		t.Fatal("expected error for empty tilemap, got nil")
	}
	if _, ok := err.(*ErrEmptyTilemap); !ok {
		t.Fatalf("expected *ErrEmptyTilemap, got %T", err)
	}
}

func TestSegmentFileStringRoundTrips(t *testing.T) {
	content := "name: Round Trip\n" +
		"biome: shipwreck\n" +
		"archetype: depths\n" +
		"difficulty: 3\n" +
		"---\n" +
		"#####\n" +
		"#P >#\n" +
		"#####\n"

	sf, err := ParseSegmentFile("rt", content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reparsed, err := ParseSegmentFile("rt", sf.String())
	if err != nil {
		t.Fatalf("unexpected error reparsing serialized form: %v", err)
	}

	if reparsed.Name != sf.Name || reparsed.Biome != sf.Biome || reparsed.Archetype != sf.Archetype || reparsed.DifficultyTier != sf.DifficultyTier {
		t.Fatalf("metadata did not round-trip: got %+v, want %+v", reparsed, sf)
	}
	if len(reparsed.Lines) != len(sf.Lines) {
		t.Fatalf("line count did not round-trip: got %d, want %d", len(reparsed.Lines), len(sf.Lines))
	}
	for i := range sf.Lines {
		if reparsed.Lines[i] != sf.Lines[i] {
			t.Errorf("line %d did not round-trip: got %q, want %q", i, reparsed.Lines[i], sf.Lines[i])
		}
	}
}

func TestLoadPoolFromFSParsesEveryLevelFile(t *testing.T) {
	fsys := fstest.MapFS{
		"segments/a/one.level": &fstest.MapFile{Data: []byte(
			"name: One\nbiome: ocean_depths\narchetype: gauntlet\ndifficulty: 1\n---\n#####\n#P  #\n#####\n",
		)},
		"segments/b/two.level": &fstest.MapFile{Data: []byte(
			"name: Two\nbiome: coral_reefs\narchetype: maze\ndifficulty: 2\n---\n#####\n#  >#\n#####\n",
		)},
		"segments/b/notes.txt": &fstest.MapFile{Data: []byte("ignored, wrong extension")},
	}

	pool, err := LoadPoolFromFS(fsys, "segments")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	oceanLevels := pool.GetAllForBiome(BiomeOceanDepths)
	if len(oceanLevels) != 1 || oceanLevels[0].Name != "One" {
		t.Errorf("ocean_depths levels = %+v, want one level named One", oceanLevels)
	}
	coralLevels := pool.GetAllForBiome(BiomeCoralReefs)
	if len(coralLevels) != 1 || coralLevels[0].Name != "Two" {
		t.Errorf("coral_reefs levels = %+v, want one level named Two", coralLevels)
	}
}

func TestLoadPoolFromFSPropagatesParseErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"segments/bad.level": &fstest.MapFile{Data: []byte("name: Bad\n---\n")},
	}

	_, err := LoadPoolFromFS(fsys, "segments")
	if err == nil {
		t.Fatal("expected error from malformed segment, got nil")
	}
}
