package platform

import "strings"

// DifficultyPreset selects the overall challenge curve for a run.
type DifficultyPreset int

const (
	PresetCasual DifficultyPreset = iota
	PresetStandard
	PresetChallenge
)

func (p DifficultyPreset) String() string {
	switch p {
	case PresetCasual:
		return "casual"
	case PresetChallenge:
		return "challenge"
	default:
		return "standard"
	}
}

// DifficultyParams drives both the segment pool's tier filtering and the
// Rewriter's per-slot substitution chances.
type DifficultyParams struct {
	MinTier           int
	MaxTier           int
	CollectibleChance float64
	EnemyChance       float64
	PufferfishChance  float64
	HazardChance      float64
	GrappleChance     float64
}

type presetRange struct {
	minTier                      int
	maxTierFloor                 int
	collectLo, collectHi         float64
	enemyLo, enemyHi             float64
	hazardLo, hazardHi           float64
	pufferLo, pufferHi           float64
	grappleLo, grappleHi         float64
}

var presetRanges = map[DifficultyPreset]presetRange{
	PresetCasual: {
		minTier: 1, maxTierFloor: 2,
		collectLo: 0.35, collectHi: 0.20,
		enemyLo: 0.15, enemyHi: 0.35,
		hazardLo: 0.05, hazardHi: 0.25,
		pufferLo: 0.10, pufferHi: 0.30,
		grappleLo: 0.30, grappleHi: 0.45,
	},
	PresetStandard: {
		minTier: 1, maxTierFloor: 3,
		collectLo: 0.45, collectHi: 0.40,
		enemyLo: 0.30, enemyHi: 0.50,
		hazardLo: 0.20, hazardHi: 0.40,
		pufferLo: 0.25, pufferHi: 0.45,
		grappleLo: 0.35, grappleHi: 0.50,
	},
	PresetChallenge: {
		minTier: 2, maxTierFloor: 5,
		collectLo: 0.40, collectHi: 0.50,
		enemyLo: 0.50, enemyHi: 0.70,
		hazardLo: 0.35, hazardHi: 0.60,
		pufferLo: 0.45, pufferHi: 0.65,
		grappleLo: 0.45, grappleHi: 0.60,
	},
}

func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

// DifficultyParamsForProgress derives tier bounds and slot chances for a
// point in a run's progression, per preset. progress (typically
// level_index / 20) is clamped to [0,1].
func DifficultyParamsForProgress(progress float64, preset DifficultyPreset) DifficultyParams {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	r := presetRanges[preset]

	maxTier := r.maxTierFloor + int(progress*float64(5-r.maxTierFloor))
	if maxTier > 5 {
		maxTier = 5
	}

	return DifficultyParams{
		MinTier:           r.minTier,
		MaxTier:            maxTier,
		CollectibleChance: lerp(r.collectLo, r.collectHi, progress),
		EnemyChance:       lerp(r.enemyLo, r.enemyHi, progress),
		PufferfishChance:  lerp(r.pufferLo, r.pufferHi, progress),
		HazardChance:      lerp(r.hazardLo, r.hazardHi, progress),
		GrappleChance:     lerp(r.grappleLo, r.grappleHi, progress),
	}
}

// ApplyDifficultyScaling runs a single left-to-right, top-to-bottom pass
// over the grid substituting each slot character for concrete tile
// content, drawing from one RNG stream seeded from the level seed so
// the same (seed, params) pair always yields the same content. Every
// remaining '~' in a segment's source is treated as a slot, matching
// how the segment format actually encodes grapple slots; a segment
// wanting literal standing water would need a distinct tile, which this
// corpus's segment authoring does not use.
func ApplyDifficultyScaling(lines []string, difficulty DifficultyParams, seed uint64) []string {
	rng := NewRng(seed)
	out := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, ch := range line {
			b.WriteRune(rewriteSlot(ch, difficulty, rng))
		}
		out[i] = b.String()
	}
	return out
}

func rewriteSlot(ch rune, difficulty DifficultyParams, rng *Rng) rune {
	switch ch {
	case '?':
		if rng.Chance(float32(difficulty.CollectibleChance)) {
			return '*'
		}
		return ' '
	case '%':
		if rng.Chance(float32(difficulty.EnemyChance)) {
			if rng.Chance(float32(difficulty.PufferfishChance)) {
				return 'O'
			}
			return 'C'
		}
		return ' '
	case '$':
		if rng.Chance(float32(difficulty.HazardChance)) {
			return '^'
		}
		return ' '
	case '~':
		if rng.Chance(float32(difficulty.GrappleChance)) {
			return '@'
		}
		return ' '
	default:
		return ch
	}
}
