// internal/humanoid/config.go
package humanoid

import (
	"math/rand"
	"time"
)

// DensityAdjustment rescales the density bucket owning Distance by Factor.
type DensityAdjustment struct {
	Distance float64
	Factor   float64
}

// ThinkingOverride pins thinking-pause settings across every model a Clicker
// builds. Nil fields keep the model's own default.
type ThinkingOverride struct {
	Probability *float64
	MinMs       *float64
	MaxMs       *float64
}

// Config holds the parameters defining the behavior of the Clicker.
type Config struct {
	// HumanTiming enables modelled delays. When false every point is paced
	// uniformly from the fallback duration.
	HumanTiming bool
	// DistanceBased selects the distance-adaptive model over the flat one.
	// It also asks the path generator for distance-adaptive point counts.
	DistanceBased bool
	// FallbackDuration is the total duration of a move with human timing off.
	FallbackDuration time.Duration

	Thinking           ThinkingOverride
	DensityAdjustments []DensityAdjustment
	Curve              CurveConfig

	// Rng, when set, is shared by the models and the default path generator.
	Rng *rand.Rand
}

// DefaultConfig returns the configuration used when nothing is tuned:
// distance-adaptive human timing with a two second legacy fallback.
func DefaultConfig() Config {
	return Config{
		HumanTiming:      true,
		DistanceBased:    true,
		FallbackDuration: 2 * time.Second,
		Curve:            DefaultCurveConfig(),
	}
}

// Mode reports the timing variant the configuration selects.
func (c Config) Mode() TimingMode {
	switch {
	case !c.HumanTiming:
		return ModeDisabled
	case c.DistanceBased:
		return ModeDistanceAdaptive
	default:
		return ModeFlat
	}
}
