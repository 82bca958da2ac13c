package humanoid

import "math"

// ThinkingPause configures the rare, long hesitation injected on top of a
// model's regular intervals. Values are read on every draw, so changes take
// effect on the next interval.
type ThinkingPause struct {
	Probability float64
	MinMs       float64
	MaxMs       float64
}

// SetProbability clamps p into [0, 1].
func (tp *ThinkingPause) SetProbability(p float64) {
	tp.Probability = clamp(p, 0, 1)
}

// SetRange clamps minMs to be non-negative and forces maxMs >= minMs.
func (tp *ThinkingPause) SetRange(minMs, maxMs float64) {
	tp.MinMs = math.Max(0, minMs)
	tp.MaxMs = math.Max(tp.MinMs, maxMs)
}

// Set applies probability and range in one call with the same clamping.
func (tp *ThinkingPause) Set(probability, minMs, maxMs float64) {
	tp.SetProbability(probability)
	tp.SetRange(minMs, maxMs)
}

// fires reports whether a pause triggers on this draw.
func (tp *ThinkingPause) fires(rng RandomSource) bool {
	return rng.Float64() < tp.Probability
}

// sample returns a pause length in seconds.
func (tp *ThinkingPause) sample(rng RandomSource) float64 {
	return sampleUniform(rng, tp.MinMs, tp.MaxMs) / 1000.0
}
