package humanoid

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource is the randomness every timing model draws from.
// *rand.Rand satisfies it. Implementations need not be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// NormFloat64 returns a standard normally distributed float64.
	NormFloat64() float64
}

// newTimeSeededSource returns a fresh source seeded from the wall clock.
func newTimeSeededSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// sampleUniform draws from [lo, hi). Inverted bounds are tolerated and
// sample the same interval.
func sampleUniform(rng RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// sampleGaussian samples a value from a Gaussian distribution.
func sampleGaussian(rng RandomSource, mean, stdDev float64) float64 {
	if rng == nil {
		return mean
	}
	return mean + rng.NormFloat64()*stdDev
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
