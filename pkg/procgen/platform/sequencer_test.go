package platform

import "testing"

func TestSequencerStartingLevelPrefersStartingArchetypes(t *testing.T) {
	s := NewArchetypeSequencer(12345)
	available := AllArchetypes

	chosen, ok := s.SelectArchetype(available, 0, false)
	if !ok {
		t.Fatal("expected a selection")
	}
	if !contains(StartingArchetypes, chosen) {
		t.Fatalf("expected a starting archetype at level 0, got %v", chosen)
	}
}

func TestSequencerBossPrefersArena(t *testing.T) {
	s := NewArchetypeSequencer(12345)
	available := AllArchetypes

	chosen, ok := s.SelectArchetype(available, 3, true)
	if !ok {
		t.Fatal("expected a selection")
	}
	if chosen != ArchetypeArena {
		t.Fatalf("expected Arena for boss level, got %v", chosen)
	}
}

func TestSequencerBossFallsBackWithoutArena(t *testing.T) {
	s := NewArchetypeSequencer(99)
	available := []Archetype{ArchetypeGauntlet, ArchetypeMaze}

	chosen, ok := s.SelectArchetype(available, 3, true)
	if !ok {
		t.Fatal("expected a selection")
	}
	if chosen == ArchetypeArena {
		t.Fatal("Arena unavailable, selection should not return it")
	}
}

func TestSequencerNeverRepeatsPrevious(t *testing.T) {
	s := NewArchetypeSequencer(42)
	available := AllArchetypes

	var previous Archetype
	for i := 0; i < 50; i++ {
		chosen, ok := s.SelectArchetype(available, i, false)
		if !ok {
			t.Fatal("expected a selection")
		}
		if i > 0 && chosen == previous {
			t.Fatalf("archetype %v repeated immediately at index %d", chosen, i)
		}
		previous = chosen
	}
}

func TestSequencerDepthsAscentMutualExclusion(t *testing.T) {
	s := NewArchetypeSequencer(7)
	available := []Archetype{ArchetypeAscent, ArchetypeDepths}

	s.history = []Archetype{ArchetypeAscent}
	chosen, ok := s.SelectArchetype(available, 1, false)
	if !ok {
		t.Fatal("expected fallback selection when all candidates are filtered")
	}
	_ = chosen // with only two mutually-exclusive candidates, filtering empties and falls back to available
}

func TestSequencerDeterministicGivenSameSeed(t *testing.T) {
	seq := func() []Archetype {
		s := NewArchetypeSequencer(2024)
		var picks []Archetype
		for i := 0; i < 10; i++ {
			chosen, _ := s.SelectArchetype(AllArchetypes, i, i == 5)
			picks = append(picks, chosen)
		}
		return picks
	}

	a := seq()
	b := seq()
	if len(a) != len(b) {
		t.Fatal("length mismatch")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("divergence at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSequencerReset(t *testing.T) {
	s := NewArchetypeSequencer(1)
	s.SelectArchetype(AllArchetypes, 0, false)
	if len(s.history) == 0 {
		t.Fatal("expected history to be populated")
	}
	s.Reset()
	if len(s.history) != 0 {
		t.Fatal("expected history to be cleared after Reset")
	}
}
