package platform

import "testing"

func makeSegment(id string, biome BiomeID, archetype Archetype, tier int) *Segment {
	return &Segment{
		ID:             id,
		Name:           id,
		Biome:          biome,
		Archetype:      archetype,
		DifficultyTier: tier,
		Lines:          []string{"#####", "#P >#", "#####"},
	}
}

func TestPoolGetLevelsFiltersByTierAndArchetype(t *testing.T) {
	p := NewPool()
	p.AddLevel(makeSegment("a1", BiomeOceanDepths, ArchetypeGauntlet, 1))
	p.AddLevel(makeSegment("a2", BiomeOceanDepths, ArchetypeGauntlet, 3))
	p.AddLevel(makeSegment("a3", BiomeOceanDepths, ArchetypeMaze, 1))

	got := p.GetLevels(BiomeOceanDepths, ArchetypeGauntlet, 1, 2)
	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("expected only a1 in tier range, got %v", got)
	}
}

func TestPoolMarkUsedExcludesUntilEvicted(t *testing.T) {
	p := NewPool()
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		p.AddLevel(makeSegment(id, BiomeOceanDepths, ArchetypeGauntlet, 1))
	}

	p.MarkUsed("a")
	got := p.GetLevels(BiomeOceanDepths, ArchetypeGauntlet, 1, 1)
	for _, seg := range got {
		if seg.ID == "a" {
			t.Fatal("expected 'a' to be excluded immediately after use")
		}
	}

	// Mark 10 more distinct segments used; that should evict "a" from the
	// bounded recently-used FIFO (cap 10), making it reappear.
	for i := 1; i < 11; i++ {
		id := string(rune('a' + i))
		p.MarkUsed(id)
	}

	got = p.GetLevels(BiomeOceanDepths, ArchetypeGauntlet, 1, 1)
	found := false
	for _, seg := range got {
		if seg.ID == "a" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected 'a' to reappear after being evicted from the recently-used FIFO")
	}
}

func TestPoolAvailableArchetypesFixedOrder(t *testing.T) {
	p := NewPool()
	p.AddLevel(makeSegment("m", BiomeOceanDepths, ArchetypeMaze, 1))
	p.AddLevel(makeSegment("g", BiomeOceanDepths, ArchetypeGauntlet, 1))

	got := p.AvailableArchetypes(BiomeOceanDepths)
	if len(got) != 2 || got[0] != ArchetypeGauntlet || got[1] != ArchetypeMaze {
		t.Fatalf("expected fixed declaration order [Gauntlet, Maze], got %v", got)
	}
}

func TestPoolEmpty(t *testing.T) {
	p := NewPool()
	if !p.Empty() {
		t.Fatal("expected new pool to be empty")
	}
	p.AddLevel(makeSegment("x", BiomeOceanDepths, ArchetypeGauntlet, 1))
	if p.Empty() {
		t.Fatal("expected pool with a segment to be non-empty")
	}
}

func TestPoolGetAnyLevelForBiomeExcludesRecentlyUsed(t *testing.T) {
	p := NewPool()
	p.AddLevel(makeSegment("s1", BiomeOceanDepths, ArchetypeGauntlet, 1))
	p.AddLevel(makeSegment("s2", BiomeOceanDepths, ArchetypeMaze, 1))
	p.MarkUsed("s1")

	got := p.GetAnyLevelForBiome(BiomeOceanDepths, 1, 1)
	if len(got) != 1 || got[0].ID != "s2" {
		t.Fatalf("expected only s2, got %v", got)
	}
}
