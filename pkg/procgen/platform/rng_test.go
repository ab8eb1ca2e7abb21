package platform

import "testing"

func TestRngDeterministic(t *testing.T) {
	r1 := NewRng(12345)
	r2 := NewRng(12345)
	for i := 0; i < 100; i++ {
		if a, b := r1.NextU32(), r2.NextU32(); a != b {
			t.Fatalf("draw %d diverged: %d != %d", i, a, b)
		}
	}
}

func TestRngDifferentSeeds(t *testing.T) {
	r1 := NewRng(12345)
	r2 := NewRng(54321)
	same := true
	for i := 0; i < 10; i++ {
		if r1.NextU32() != r2.NextU32() {
			same = false
		}
	}
	if same {
		t.Fatal("expected different seeds to diverge")
	}
}

func TestRngFloatRange(t *testing.T) {
	r := NewRng(42)
	for i := 0; i < 1000; i++ {
		f := r.NextFloat()
		if f < 0 || f >= 1 {
			t.Fatalf("float %f out of range", f)
		}
	}
}

func TestRngBoundedNoBias(t *testing.T) {
	r := NewRng(42)
	const bound = 7
	var counts [bound]int
	const samples = 70000
	for i := 0; i < samples; i++ {
		v := r.NextBounded(bound)
		if v >= bound {
			t.Fatalf("value %d out of bound %d", v, bound)
		}
		counts[v]++
	}
	expected := float64(samples) / bound
	for i, c := range counts {
		ratio := float64(c) / expected
		if ratio < 0.85 || ratio > 1.15 {
			t.Fatalf("bucket %d has %d samples, expected ~%.0f", i, c, expected)
		}
	}
}

func TestRngRange(t *testing.T) {
	r := NewRng(42)
	for i := 0; i < 1000; i++ {
		v := r.Range(-10, 10)
		if v < -10 || v > 10 {
			t.Fatalf("range value %d out of bounds", v)
		}
	}
}

func TestChoose(t *testing.T) {
	r := NewRng(42)
	items := []int{1, 2, 3, 4, 5}
	for i := 0; i < 100; i++ {
		v, ok := Choose(r, items)
		if !ok {
			t.Fatal("expected a value")
		}
		found := false
		for _, x := range items {
			if x == v {
				found = true
			}
		}
		if !found {
			t.Fatalf("chosen value %d not in items", v)
		}
	}
	if _, ok := Choose(r, []int{}); ok {
		t.Fatal("expected empty slice to return false")
	}
}

func TestWeightedChoose(t *testing.T) {
	r := NewRng(42)
	items := []WeightedItem[rune]{
		{Value: 'a', Weight: 1.0},
		{Value: 'b', Weight: 3.0},
		{Value: 'c', Weight: 1.0},
	}
	counts := map[rune]int{}
	const samples = 5000
	for i := 0; i < samples; i++ {
		v, ok := WeightedChoose(r, items)
		if !ok {
			t.Fatal("expected a value")
		}
		counts[v]++
	}
	a, b, c := float64(counts['a']), float64(counts['b']), float64(counts['c'])
	if ratio := b / a; ratio < 2.5 || ratio > 3.5 {
		t.Fatalf("b/a ratio out of range: %f", ratio)
	}
	if ratio := b / c; ratio < 2.5 || ratio > 3.5 {
		t.Fatalf("b/c ratio out of range: %f", ratio)
	}
}

func TestShuffle(t *testing.T) {
	r := NewRng(42)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	original := append([]int(nil), items...)
	Shuffle(r, items)

	sorted := append([]int(nil), items...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("shuffle lost an element: %v", sorted)
		}
	}

	same := true
	for i := range items {
		if items[i] != original[i] {
			same = false
		}
	}
	if same {
		t.Fatal("expected shuffled order to differ from original")
	}
}

func TestChance(t *testing.T) {
	r := NewRng(42)
	for i := 0; i < 100; i++ {
		if r.Chance(0.0) {
			t.Fatal("chance(0) must always be false")
		}
	}
	for i := 0; i < 100; i++ {
		if !r.Chance(1.0) {
			t.Fatal("chance(1) must always be true")
		}
	}
	count := 0
	for i := 0; i < 10000; i++ {
		if r.Chance(0.5) {
			count++
		}
	}
	if count < 4500 || count > 5500 {
		t.Fatalf("chance(0.5) count out of range: %d", count)
	}
}

func TestFork(t *testing.T) {
	r := NewRng(42)
	fork1 := r.Fork()
	fork2 := r.Fork()
	same := true
	for i := 0; i < 10; i++ {
		if fork1.NextU32() != fork2.NextU32() {
			same = false
		}
	}
	if same {
		t.Fatal("expected forks to diverge")
	}
}
