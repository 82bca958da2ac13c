// File: internal/config/humanoid_config.go
// This file defines the HumanoidConfig struct, which contains the tunable
// parameters of the pointer timing models: which model paces a move, the
// thinking-pause overrides, density adjustments and the shape of the default
// path generator.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
)

// HumanoidConfig selects and tunes the timing models.
type HumanoidConfig struct {
	HumanTiming        bool                      `mapstructure:"human_timing" yaml:"human_timing"`
	DistanceBased      bool                      `mapstructure:"distance_based" yaml:"distance_based"`
	FallbackDuration   time.Duration             `mapstructure:"fallback_duration" yaml:"fallback_duration"`
	Thinking           ThinkingConfig            `mapstructure:"thinking" yaml:"thinking"`
	DensityAdjustments []DensityAdjustmentConfig `mapstructure:"density_adjustments" yaml:"density_adjustments"`
	Curve              CurveConfig               `mapstructure:"curve" yaml:"curve"`
}

// ThinkingConfig pins thinking-pause parameters across timing models. Unset
// fields keep each model's own default.
type ThinkingConfig struct {
	Probability *float64 `mapstructure:"probability" yaml:"probability,omitempty"`
	MinMs       *float64 `mapstructure:"min_ms" yaml:"min_ms,omitempty"`
	MaxMs       *float64 `mapstructure:"max_ms" yaml:"max_ms,omitempty"`
}

// DensityAdjustmentConfig rescales the density bucket owning Distance.
type DensityAdjustmentConfig struct {
	Distance float64 `mapstructure:"distance" yaml:"distance"`
	Factor   float64 `mapstructure:"factor" yaml:"factor"`
}

// CurveConfig shapes the default Bezier path generator.
type CurveConfig struct {
	Points          int     `mapstructure:"points" yaml:"points"`
	PerlinAmplitude float64 `mapstructure:"perlin_amplitude" yaml:"perlin_amplitude"`
	Knots           float64 `mapstructure:"knots" yaml:"knots"`
	Seed            int64   `mapstructure:"seed" yaml:"seed"`
}

// setHumanoidDefaults mirrors humanoid.DefaultConfig. Thinking values have no
// defaults: they are model specific.
func setHumanoidDefaults(v *viper.Viper) {
	def := humanoid.DefaultConfig()
	v.SetDefault("humanoid.human_timing", def.HumanTiming)
	v.SetDefault("humanoid.distance_based", def.DistanceBased)
	v.SetDefault("humanoid.fallback_duration", def.FallbackDuration)

	v.SetDefault("humanoid.curve.points", def.Curve.Points)
	v.SetDefault("humanoid.curve.perlin_amplitude", def.Curve.PerlinAmplitude)
	v.SetDefault("humanoid.curve.knots", def.Curve.Knots)
	v.SetDefault("humanoid.curve.seed", int64(0))
}

// Validate rejects values that cannot be clamped into something meaningful.
func (h *HumanoidConfig) Validate() error {
	if h.Curve.Points < 2 {
		return fmt.Errorf("curve.points must be at least 2")
	}
	for i, adj := range h.DensityAdjustments {
		if adj.Factor < 0 {
			return fmt.Errorf("density_adjustments[%d].factor must not be negative", i)
		}
	}
	return nil
}

// ToHumanoid converts the loaded configuration into the Clicker's Config.
func (h HumanoidConfig) ToHumanoid() humanoid.Config {
	cfg := humanoid.Config{
		HumanTiming:      h.HumanTiming,
		DistanceBased:    h.DistanceBased,
		FallbackDuration: h.FallbackDuration,
		Curve: humanoid.CurveConfig{
			Points:          h.Curve.Points,
			PerlinAmplitude: h.Curve.PerlinAmplitude,
			Knots:           h.Curve.Knots,
			Seed:            h.Curve.Seed,
		},
	}
	cfg.Thinking = humanoid.ThinkingOverride{
		Probability: copyFloat(h.Thinking.Probability),
		MinMs:       copyFloat(h.Thinking.MinMs),
		MaxMs:       copyFloat(h.Thinking.MaxMs),
	}
	for _, adj := range h.DensityAdjustments {
		cfg.DensityAdjustments = append(cfg.DensityAdjustments, humanoid.DensityAdjustment{
			Distance: adj.Distance,
			Factor:   adj.Factor,
		})
	}
	return cfg
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
