package platform

import "fmt"

// ErrPoolNotLoaded is returned when generation is attempted before any
// segments have been registered with the pool.
type ErrPoolNotLoaded struct{}

func (e *ErrPoolNotLoaded) Error() string {
	return "platform: segment pool has no registered segments"
}

// ErrNoLevelsForBiome is returned when a biome has no segments at all.
type ErrNoLevelsForBiome struct {
	Biome BiomeID
}

func (e *ErrNoLevelsForBiome) Error() string {
	return fmt.Sprintf("platform: no segments registered for biome %q", e.Biome)
}

// ErrNoMatchingLevels is returned when a tier/archetype filter produces no
// candidates.
type ErrNoMatchingLevels struct {
	Biome     BiomeID
	Archetype Archetype
	HasArch   bool
	MinTier   int
	MaxTier   int
}

func (e *ErrNoMatchingLevels) Error() string {
	if e.HasArch {
		return fmt.Sprintf("platform: no segments for biome %q archetype %q in tier range [%d,%d]", e.Biome, e.Archetype, e.MinTier, e.MaxTier)
	}
	return fmt.Sprintf("platform: no segments for biome %q in tier range [%d,%d]", e.Biome, e.MinTier, e.MaxTier)
}

// ErrArchetypeSelectionFailed is returned when the sequencer cannot pick an
// archetype under the anti-repeat policy.
type ErrArchetypeSelectionFailed struct{}

func (e *ErrArchetypeSelectionFailed) Error() string {
	return "platform: archetype sequencer could not select an archetype"
}

// ErrSequencerNotInitialized is returned when the sequencer is consulted
// before ClearRecentlyUsed/Reset has run for the current pool.
type ErrSequencerNotInitialized struct{}

func (e *ErrSequencerNotInitialized) Error() string {
	return "platform: archetype sequencer consulted before reset"
}

// ErrSegmentSelectionFailed is returned when the linker cannot choose the
// requested number of segments.
type ErrSegmentSelectionFailed struct {
	Biome   BiomeID
	MinTier int
	MaxTier int
}

func (e *ErrSegmentSelectionFailed) Error() string {
	return fmt.Sprintf("platform: could not select segments for biome %q in tier range [%d,%d]", e.Biome, e.MinTier, e.MaxTier)
}

// ErrLinkingFailed is returned when geometric assembly produces a
// degenerate grid (empty segment set or unusable layout).
type ErrLinkingFailed struct {
	Reason string
}

func (e *ErrLinkingFailed) Error() string {
	return fmt.Sprintf("platform: linking failed: %s", e.Reason)
}

// ErrValidationFailed is returned when the Validator rejects a generated
// level. Issues holds the individual rejection reasons, in the order they
// were discovered.
type ErrValidationFailed struct {
	Issues []string
}

func (e *ErrValidationFailed) Error() string {
	if len(e.Issues) == 0 {
		return "platform: validation failed"
	}
	return fmt.Sprintf("platform: validation failed: %s", e.Issues[0])
}

// ErrRetriesExhausted is returned when the outer generation loop gives up
// after its retry cap.
type ErrRetriesExhausted struct {
	Attempts int
}

func (e *ErrRetriesExhausted) Error() string {
	return fmt.Sprintf("platform: generation gave up after %d attempts", e.Attempts)
}

// ErrFileTooLarge is returned by the segment loader for an oversized file.
type ErrFileTooLarge struct {
	Size    int
	MaxSize int
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("platform: segment file too large: %d bytes (max %d)", e.Size, e.MaxSize)
}

// ErrTilemapTooLarge is returned when a parsed tilemap exceeds the maximum
// allowed dimension in either axis.
type ErrTilemapTooLarge struct {
	Width, Height, MaxDimension int
}

func (e *ErrTilemapTooLarge) Error() string {
	return fmt.Sprintf("platform: tilemap too large: %dx%d (max %d)", e.Width, e.Height, e.MaxDimension)
}

// ErrEmptyTilemap is returned when a parsed segment file has no tilemap
// content.
type ErrEmptyTilemap struct{}

func (e *ErrEmptyTilemap) Error() string {
	return "platform: empty tilemap"
}
