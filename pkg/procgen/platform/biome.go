package platform

import "strings"

// BiomeID is a curated visual/mechanical region tag. The set is closed;
// the core treats biomes as opaque labels for indexing and rewriter
// seeding, never as a source of gameplay branching.
type BiomeID int

const (
	BiomeOceanDepths BiomeID = iota
	BiomeCoralReefs
	BiomeTropicalShore
	BiomeShipwreck
	BiomeArcticWaters
	BiomeVolcanicVents
	BiomeSunkenRuins
	BiomeAbyss
)

// AllBiomes lists every biome in fixed declaration order. Iteration over
// this slice, never over a map, is what keeps biome-indexed output
// deterministic.
var AllBiomes = []BiomeID{
	BiomeOceanDepths,
	BiomeCoralReefs,
	BiomeTropicalShore,
	BiomeShipwreck,
	BiomeArcticWaters,
	BiomeVolcanicVents,
	BiomeSunkenRuins,
	BiomeAbyss,
}

// String returns the canonical lowercase-underscore form used in segment
// file headers.
func (b BiomeID) String() string {
	switch b {
	case BiomeOceanDepths:
		return "ocean_depths"
	case BiomeCoralReefs:
		return "coral_reefs"
	case BiomeTropicalShore:
		return "tropical_shore"
	case BiomeShipwreck:
		return "shipwreck"
	case BiomeArcticWaters:
		return "arctic_waters"
	case BiomeVolcanicVents:
		return "volcanic_vents"
	case BiomeSunkenRuins:
		return "sunken_ruins"
	case BiomeAbyss:
		return "abyss"
	default:
		return "unknown"
	}
}

// ParseBiomeID parses the accepted string forms: case-insensitive,
// underscore-optional.
func ParseBiomeID(s string) (BiomeID, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	for _, b := range AllBiomes {
		if strings.ReplaceAll(b.String(), "_", "") == normalized {
			return b, true
		}
	}
	return 0, false
}
