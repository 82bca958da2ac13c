// File: cmd/timing.go
package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/xkilldash9x/cursorpace/internal/config"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
	"go.uber.org/zap"
)

// timingFlags are the timing overrides shared by every command that moves
// the pointer or samples a model.
type timingFlags struct {
	mode                string
	seed                int64
	fallback            time.Duration
	thinkingProbability float64
	thinkingMinMs       float64
	thinkingMaxMs       float64
}

func (f *timingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "", "timing mode: distance, flat or disabled (default from config)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for reproducible paths and delays (0 picks a random seed)")
	cmd.Flags().DurationVar(&f.fallback, "fallback", 0, "total move duration with human timing disabled, e.g. 500ms")
	cmd.Flags().Float64Var(&f.thinkingProbability, "thinking-probability", 0, "probability of a thinking pause")
	cmd.Flags().Float64Var(&f.thinkingMinMs, "thinking-min", 0, "minimum thinking pause in milliseconds")
	cmd.Flags().Float64Var(&f.thinkingMaxMs, "thinking-max", 0, "maximum thinking pause in milliseconds")
}

// apply writes the flags the user actually set into cfg.
func (f *timingFlags) apply(cmd *cobra.Command, cfg config.Interface) error {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		mode, err := humanoid.ParseTimingMode(f.mode)
		if err != nil {
			return err
		}
		cfg.SetHumanoidHumanTiming(mode != humanoid.ModeDisabled)
		if mode != humanoid.ModeDisabled {
			cfg.SetHumanoidDistanceBased(mode == humanoid.ModeDistanceAdaptive)
		}
	}
	if flags.Changed("fallback") {
		cfg.SetHumanoidFallbackDuration(f.fallback)
	}
	if flags.Changed("thinking-probability") {
		cfg.SetHumanoidThinkingProbability(f.thinkingProbability)
	}
	if flags.Changed("thinking-min") {
		cfg.SetHumanoidThinkingMinMs(f.thinkingMinMs)
	}
	if flags.Changed("thinking-max") {
		cfg.SetHumanoidThinkingMaxMs(f.thinkingMaxMs)
	}
	return nil
}

// newClicker builds a Clicker from the loaded configuration. A non-zero seed
// makes the whole run reproducible.
func newClicker(cfg config.Interface, seed int64, executor humanoid.Executor, logger *zap.Logger) *humanoid.Clicker {
	hc := cfg.Humanoid().ToHumanoid()
	if seed != 0 {
		hc.Curve.Seed = seed
	}
	if hc.Curve.Seed != 0 {
		hc.Rng = rand.New(rand.NewSource(hc.Curve.Seed))
	}
	return humanoid.New(hc, logger, executor, nil)
}

// parsePoint reads a point written as "x,y".
func parsePoint(s string) (humanoid.Vector2D, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return humanoid.Vector2D{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return humanoid.Vector2D{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return humanoid.Vector2D{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return humanoid.Vector2D{X: x, Y: y}, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
