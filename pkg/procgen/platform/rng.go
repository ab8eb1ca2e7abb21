package platform

import "math/bits"

// pcgMultiplier and pcgDefaultIncrement are the constants from the PCG paper.
const (
	pcgMultiplier        uint64 = 6364136223846793005
	pcgDefaultIncrement  uint64 = 1442695040888963407
)

// Rng is a PCG-XSH-RR pseudorandom generator: 64-bit state, 32-bit output,
// deterministic and reproducible across platforms given the same seed.
// Every stochastic decision in the generation pipeline draws from an Rng
// descended from a single run seed.
type Rng struct {
	state uint64
	inc   uint64
}

// NewRng creates an Rng from a seed using the default stream.
func NewRng(seed uint64) *Rng {
	r := &Rng{state: 0, inc: pcgDefaultIncrement}
	r.state += seed
	r.advance()
	return r
}

// NewRngWithStream creates an Rng from a seed and an explicit stream
// selector. Distinct streams produce independent sequences from the same
// seed; the increment is forced odd as PCG requires.
func NewRngWithStream(seed, stream uint64) *Rng {
	r := &Rng{state: 0, inc: (stream << 1) | 1}
	r.state += seed
	r.advance()
	return r
}

func (r *Rng) advance() {
	r.state = r.state*pcgMultiplier + r.inc
}

// NextU32 returns the next 32-bit output via the XSH-RR permutation.
func (r *Rng) NextU32() uint32 {
	old := r.state
	r.advance()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}

// NextU64 combines two 32-bit draws into a 64-bit value.
func (r *Rng) NextU64() uint64 {
	high := uint64(r.NextU32())
	low := uint64(r.NextU32())
	return (high << 32) | low
}

// NextFloat returns a float32 in [0, 1) using the upper 24 bits of a draw.
func (r *Rng) NextFloat() float32 {
	return float32(r.NextU32()>>8) / 16777216.0
}

// NextF64 returns a float64 in [0, 1) using the upper 53 bits of a draw.
func (r *Rng) NextF64() float64 {
	return float64(r.NextU64()>>11) / 9007199254740992.0
}

// NextBounded returns an unbiased value in [0, bound) using Lemire's
// nearly-divisionless method. NextBounded(0) returns 0.
func (r *Rng) NextBounded(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	threshold := -bound % bound
	for {
		v := r.NextU32()
		m := uint64(v) * uint64(bound)
		if uint32(m) >= threshold {
			return uint32(m >> 32)
		}
	}
}

// Range returns a uniform int in [min, max] inclusive.
func (r *Rng) Range(min, max int) int {
	if max <= min {
		return min
	}
	span := uint32(max - min + 1)
	return min + int(r.NextBounded(span))
}

// RangeUsize returns a uniform int in [min, max) (exclusive upper bound),
// for indexing slices.
func (r *Rng) RangeUsize(min, max int) int {
	if max <= min {
		return min
	}
	span := uint32(max - min)
	return min + int(r.NextBounded(span))
}

// ChooseIndex picks a uniform index into a slice of length n. Returns -1
// if n is 0.
func (r *Rng) ChooseIndex(n int) int {
	if n <= 0 {
		return -1
	}
	return int(r.NextBounded(uint32(n)))
}

// Choose picks a uniform random element from items. Returns false if
// items is empty.
func Choose[T any](r *Rng, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	idx := r.ChooseIndex(len(items))
	return items[idx], true
}

// WeightedItem pairs a value with a non-negative selection weight.
type WeightedItem[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoose selects an item with probability proportional to its
// weight, using Kahan-compensated summation for the cumulative total so
// that selection is stable regardless of floating-point accumulation
// order. Returns false if items is empty or the total weight is zero.
func WeightedChoose[T any](r *Rng, items []WeightedItem[T]) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	var total, compensation float64
	for _, it := range items {
		y := it.Weight - compensation
		t := total + y
		compensation = (t - total) - y
		total = t
	}
	if total <= 0 {
		return zero, false
	}

	target := r.NextF64() * total
	var cumulative float64
	for _, it := range items {
		cumulative += it.Weight
		if target < cumulative {
			return it.Value, true
		}
	}
	return items[len(items)-1].Value, true
}

// Shuffle permutes items in place using Fisher-Yates.
func Shuffle[T any](r *Rng, items []T) {
	n := len(items)
	if n <= 1 {
		return
	}
	for i := n - 1; i >= 1; i-- {
		j := int(r.NextBounded(uint32(i + 1)))
		items[i], items[j] = items[j], items[i]
	}
}

// Chance returns true with the given probability. Chance(0) is always
// false, Chance(1) is always true.
func (r *Rng) Chance(probability float32) bool {
	return r.NextFloat() < probability
}

// OneIn returns true with probability 1/n.
func (r *Rng) OneIn(n uint32) bool {
	return n > 0 && r.NextBounded(n) == 0
}

// NormalApprox returns a roughly normally distributed value in [0, 1]
// (mean 0.5) via an Irwin-Hall sum of four uniform draws.
func (r *Rng) NormalApprox() float32 {
	return (r.NextFloat() + r.NextFloat() + r.NextFloat() + r.NextFloat()) / 4.0
}

// Fork derives a new, independent Rng from two consumed draws plus a
// stream disambiguator. The parent's state advances as a side effect.
func (r *Rng) Fork() *Rng {
	seed := r.NextU64()
	stream := r.NextU64()
	return NewRngWithStream(seed, stream)
}
