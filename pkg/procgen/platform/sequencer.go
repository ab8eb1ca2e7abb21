package platform

// historyWindow is how far back the recency weighting looks.
const historyWindow = 5

// recencyWeight maps occurrence count within the history window to a
// selection weight: the more recently (and more often) an archetype
// appeared, the less likely it is picked again.
func recencyWeight(count int) float64 {
	switch {
	case count == 0:
		return 3.0
	case count == 1:
		return 1.5
	case count == 2:
		return 0.5
	default:
		return 0.1
	}
}

// ArchetypeSequencer is a stateful pacing policy: it chooses the next
// archetype based on history, boss-level flag, and anti-repeat rules, and
// owns the RNG stream that drives its weighted choices.
type ArchetypeSequencer struct {
	history []Archetype
	rng     *Rng
}

// NewArchetypeSequencer creates a sequencer with an empty history, seeded
// for reproducibility. Reset at each run start.
func NewArchetypeSequencer(seed uint64) *ArchetypeSequencer {
	return &ArchetypeSequencer{rng: NewRng(seed)}
}

// Reset clears history for a new run.
func (s *ArchetypeSequencer) Reset() {
	s.history = nil
}

func contains(list []Archetype, a Archetype) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

func intersect(available, preferred []Archetype) []Archetype {
	var out []Archetype
	for _, p := range preferred {
		if contains(available, p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *ArchetypeSequencer) countInHistory(a Archetype) int {
	start := 0
	if len(s.history) > historyWindow {
		start = len(s.history) - historyWindow
	}
	count := 0
	for _, h := range s.history[start:] {
		if h == a {
			count++
		}
	}
	return count
}

// SelectArchetype picks the next archetype from available, honoring boss
// preference, starting-level preference, and anti-repeat/recency
// weighting in that priority order. Returns false only if available is
// empty.
func (s *ArchetypeSequencer) SelectArchetype(available []Archetype, levelIndex int, isBoss bool) (Archetype, bool) {
	if len(available) == 0 {
		return 0, false
	}

	if isBoss && contains(available, ArchetypeArena) {
		s.history = append(s.history, ArchetypeArena)
		return ArchetypeArena, true
	}

	if levelIndex == 0 {
		starting := intersect(available, StartingArchetypes)
		if len(starting) > 0 {
			chosen, _ := Choose(s.rng, starting)
			s.history = append(s.history, chosen)
			return chosen, true
		}
	}

	var previous Archetype
	hasPrevious := len(s.history) > 0
	if hasPrevious {
		previous = s.history[len(s.history)-1]
	}

	var filtered []Archetype
	for _, a := range available {
		if hasPrevious && a.ShouldAvoidAfter(previous) {
			continue
		}
		filtered = append(filtered, a)
	}
	if len(filtered) == 0 {
		filtered = available
	}

	weighted := make([]WeightedItem[Archetype], 0, len(filtered))
	for _, a := range filtered {
		weighted = append(weighted, WeightedItem[Archetype]{
			Value:  a,
			Weight: recencyWeight(s.countInHistory(a)),
		})
	}

	chosen, ok := WeightedChoose(s.rng, weighted)
	if !ok {
		chosen, ok = Choose(s.rng, available)
		if !ok {
			return 0, false
		}
	}

	s.history = append(s.history, chosen)
	return chosen, true
}
