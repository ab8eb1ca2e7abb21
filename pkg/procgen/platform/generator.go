package platform

import (
	"github.com/opd-ai/venture/pkg/procgen"
	"github.com/sirupsen/logrus"
)

// maxGenerationRetries bounds how many perturbed seeds a single
// generation request will try before giving up. Generation is cheap, so
// a generous retry budget costs little and catches rare degenerate
// layouts.
const maxGenerationRetries = 50

// levelsPerRun is the assumed run length used to turn a level index into
// a progress fraction for difficulty derivation.
const levelsPerRun = 20

// GeneratedLevel is a finished level ready to hand to the renderer: its
// tilemap, a display name, the seed that produced it, and the
// validator's assessment. Linked levels are validated before they are
// returned; GenerateArchetypeLevel does not run the validator and leaves
// Result at its zero value.
type GeneratedLevel struct {
	Tilemap []string
	Name    string
	Seed    uint64
	Result  ValidationResult
}

// GenerationManager owns the segment pool, archetype sequencer, and
// validator across an entire run, and orchestrates single-archetype and
// linked-segment level generation.
type GenerationManager struct {
	pool      *Pool
	sequencer *ArchetypeSequencer
	validator *Validator
	log       *logrus.Entry
}

// NewGenerationManager creates a manager with a default validator, no
// logging, and no pool loaded; call LoadPool before generating anything.
func NewGenerationManager() *GenerationManager {
	return NewGenerationManagerWithLogger(nil)
}

// NewGenerationManagerWithLogger creates a manager that logs its milestones
// through the given logger at Debug level. A nil logger disables logging
// entirely, matching terrain.NewMazeGeneratorWithLogger's convention.
func NewGenerationManagerWithLogger(logger *logrus.Logger) *GenerationManager {
	var logEntry *logrus.Entry
	if logger != nil {
		logEntry = logger.WithField("generator", "platform")
	}
	return &GenerationManager{validator: NewValidator(), log: logEntry}
}

// LoadPool replaces the manager's segment pool, loaded from the embedded
// bundle by the caller (or from a test fixture directory).
func (m *GenerationManager) LoadPool(pool *Pool) {
	m.pool = pool
}

// InitSequencer starts a fresh archetype sequencer for a new run and
// clears the pool's recently-used history.
func (m *GenerationManager) InitSequencer(seed uint64) {
	m.sequencer = NewArchetypeSequencer(seed)
	if m.pool != nil {
		m.pool.ClearRecentlyUsed()
	}
}

// segmentCountForLevel mirrors the roguelite progression curve: more
// segments per level as both progression and preset difficulty rise.
func segmentCountForLevel(preset DifficultyPreset, levelIndex int) int {
	switch preset {
	case PresetCasual:
		n := 6 + levelIndex/3
		if n > 12 {
			n = 12
		}
		return n
	case PresetChallenge:
		n := 14 + levelIndex
		if n > 24 {
			n = 24
		}
		return n
	default:
		n := 10 + levelIndex/2
		if n > 20 {
			n = 20
		}
		return n
	}
}

// GenerateArchetypeLevel produces a level from a single handcrafted
// segment, chosen by the sequencer and scaled by difficulty. No
// linking or layout selection is involved; useful for short levels or
// tutorial-style single rooms.
func (m *GenerationManager) GenerateArchetypeLevel(biome BiomeID, preset DifficultyPreset, levelIndex int, isBoss bool, seed uint64) (GeneratedLevel, error) {
	if m.pool == nil || m.pool.Empty() {
		return GeneratedLevel{}, &ErrPoolNotLoaded{}
	}
	if m.sequencer == nil {
		m.InitSequencer(seed)
	}

	progress := float64(levelIndex) / levelsPerRun
	if progress > 1 {
		progress = 1
	}
	difficulty := DifficultyParamsForProgress(progress, preset)

	available := m.pool.AvailableArchetypes(biome)
	if len(available) == 0 {
		return GeneratedLevel{}, &ErrNoLevelsForBiome{Biome: biome}
	}

	archetype, ok := m.sequencer.SelectArchetype(available, levelIndex, isBoss)
	if !ok {
		return GeneratedLevel{}, &ErrArchetypeSelectionFailed{}
	}

	candidates := m.pool.GetLevels(biome, archetype, difficulty.MinTier, difficulty.MaxTier)
	if len(candidates) == 0 {
		candidates = m.pool.GetAnyLevelForBiome(biome, difficulty.MinTier, difficulty.MaxTier)
	}
	if len(candidates) == 0 {
		return GeneratedLevel{}, &ErrNoMatchingLevels{Biome: biome, Archetype: archetype, HasArch: true, MinTier: difficulty.MinTier, MaxTier: difficulty.MaxTier}
	}

	pickSeed := procgen.NewSeedGenerator(int64(seed)).GetSeed("segment-pick", levelIndex)
	rng := NewRng(uint64(pickSeed))
	selected := candidates[rng.RangeUsize(0, len(candidates))]
	m.pool.MarkUsed(selected.ID)

	scaled := ApplyDifficultyScaling(selected.Lines, difficulty, seed)

	if m.log != nil && m.log.Logger.GetLevel() >= logrus.DebugLevel {
		m.log.WithFields(logrus.Fields{
			"segment":   selected.ID,
			"biome":     biome.String(),
			"archetype": archetype.String(),
			"min_tier":  difficulty.MinTier,
			"max_tier":  difficulty.MaxTier,
		}).Debug("archetype level selected")
	}

	return GeneratedLevel{
		Tilemap: scaled,
		Name:    selected.Name,
		Seed:    seed,
	}, nil
}

// generateLinkedLevel runs one attempt at assembling, scaling, and
// validating a multi-segment level at a fixed seed; the caller wraps
// this in the seed-perturbing retry loop.
func (m *GenerationManager) generateLinkedLevel(biome BiomeID, preset DifficultyPreset, levelIndex int, seed uint64, segmentCount int) (GeneratedLevel, error) {
	if m.pool == nil || m.pool.Empty() {
		return GeneratedLevel{}, &ErrPoolNotLoaded{}
	}

	progress := float64(levelIndex) / levelsPerRun
	if progress > 1 {
		progress = 1
	}
	difficulty := DifficultyParamsForProgress(progress, preset)

	allLevels := m.pool.GetAllForBiome(biome)
	if len(allLevels) == 0 {
		return GeneratedLevel{}, &ErrNoLevelsForBiome{Biome: biome}
	}

	segments := SelectSegments(allLevels, biome, segmentCount, difficulty.MinTier, difficulty.MaxTier, seed)
	if len(segments) == 0 {
		return GeneratedLevel{}, &ErrSegmentSelectionFailed{Biome: biome, MinTier: difficulty.MinTier, MaxTier: difficulty.MaxTier}
	}

	layout := SelectLayoutStrategy(levelIndex, preset, seed)
	config := DefaultSegmentLinkerConfig(seed, layout)

	result := LinkSegments(segments, config)
	if !result.Success {
		return GeneratedLevel{}, &ErrLinkingFailed{Reason: "segment placement failed to converge"}
	}

	scaled := ApplyDifficultyScaling(result.Tilemap, difficulty, seed)

	validation := m.validator.ValidateDetailed(scaled)
	if !validation.IsCompletable {
		return GeneratedLevel{}, &ErrValidationFailed{Issues: validation.Issues}
	}

	if m.log != nil && m.log.Logger.GetLevel() >= logrus.DebugLevel {
		m.log.WithFields(logrus.Fields{
			"segments": len(result.SegmentNames),
			"biome":    biome.String(),
			"layout":   layout.String(),
			"width":    result.Width,
			"height":   result.Height,
		}).Debug("linked level generated")
	}

	return GeneratedLevel{
		Tilemap: scaled,
		Name:    biome.String(),
		Seed:    seed,
		Result:  validation,
	}, nil
}

// GenerateLinkedLevelWithRetry attempts generateLinkedLevel up to
// maxGenerationRetries times, perturbing the seed between attempts so a
// degenerate layout or a validation failure doesn't doom the whole
// request to the same outcome. Any other error is returned at once.
func (m *GenerationManager) GenerateLinkedLevelWithRetry(biome BiomeID, preset DifficultyPreset, levelIndex int, seed uint64, segmentCount int) (GeneratedLevel, error) {
	seedGen := procgen.NewSeedGenerator(int64(seed))
	for attempt := 0; attempt < maxGenerationRetries; attempt++ {
		trySeed := uint64(seedGen.GetSeed("link-attempt", attempt))
		level, err := m.generateLinkedLevel(biome, preset, levelIndex, trySeed, segmentCount)
		if err == nil {
			if attempt > 0 && m.log != nil {
				m.log.WithField("attempts", attempt+1).Debug("generation succeeded after retry")
			}
			return level, nil
		}
		switch err.(type) {
		case *ErrValidationFailed, *ErrLinkingFailed:
			continue
		default:
			return GeneratedLevel{}, err
		}
	}
	return GeneratedLevel{}, &ErrRetriesExhausted{Attempts: maxGenerationRetries}
}

// GenerateRogueliteLevel always uses linked segments, scaling segment
// count with both preset and level progression for longer, more varied
// levels later in a run.
func (m *GenerationManager) GenerateRogueliteLevel(biome BiomeID, preset DifficultyPreset, levelIndex int, seed uint64) (GeneratedLevel, error) {
	segmentCount := segmentCountForLevel(preset, levelIndex)
	return m.GenerateLinkedLevelWithRetry(biome, preset, levelIndex, seed, segmentCount)
}
