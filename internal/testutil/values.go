package testutil

import (
	"math"
	"math/rand"
)

// Grid returns n evenly spaced points on [lo, hi], endpoints included.
func Grid(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// DeterministicValues returns uniform values in [-amplitude, amplitude] from a fixed seed.
func DeterministicValues(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicMagnitudes returns signed values whose binary exponents are
// spread uniformly over [minExp, maxExp], so that products and quotients of
// two elements cover many orders of magnitude without overflowing.
func DeterministicMagnitudes(seed int64, minExp, maxExp, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	span := maxExp - minExp + 1
	for i := range out {
		v := math.Ldexp(1+rng.Float64(), minExp+rng.Intn(span))
		if rng.Intn(2) == 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}
