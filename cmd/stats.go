// File: cmd/stats.go
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/xkilldash9x/cursorpace/internal/browser"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
	"github.com/xkilldash9x/cursorpace/internal/observability"
	"go.uber.org/zap"
)

// errTimingDisabled is returned when a command needs a timing model but human
// timing is switched off.
var errTimingDisabled = errors.New("human timing is disabled; pick --mode distance or --mode flat")

func newStatsCmd() *cobra.Command {
	var (
		timing   timingFlags
		distance float64
		samples  int
		asJSON   bool
	)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Sample the active timing model and summarise its intervals",
		Long: `Draws interval samples from the configured timing model.

For the distance model, steps are scattered around the average step of an
optimally sampled path of --distance pixels. The flat model ignores distance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples <= 0 {
				return fmt.Errorf("--samples must be positive, got %d", samples)
			}
			if distance <= 0 {
				return fmt.Errorf("--distance must be positive, got %g", distance)
			}
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			if err := timing.apply(cmd, cfg); err != nil {
				return err
			}

			runID := uuid.NewString()
			logger := observability.GetLogger().With(zap.String("run_id", runID))
			clicker := newClicker(cfg, timing.seed, browser.NewRecordingExecutor(humanoid.Vector2D{}), logger)

			stats, ok := clicker.TimingStats(distance, samples)
			if !ok {
				return errTimingDisabled
			}
			logger.Debug("Sampled timing model", zap.String("mode", string(stats.Mode)), zap.Int("samples", samples))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	timing.register(statsCmd)
	statsCmd.Flags().Float64Var(&distance, "distance", 500, "total path distance in pixels")
	statsCmd.Flags().IntVar(&samples, "samples", 1000, "number of intervals to draw")
	statsCmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return statsCmd
}

func printStats(w io.Writer, s *humanoid.TimingStats) {
	fmt.Fprintf(w, "mode:            %s\n", s.Mode)
	if s.Mode == humanoid.ModeDistanceAdaptive {
		fmt.Fprintf(w, "distance:        %.1f px\n", s.TotalDistance)
		fmt.Fprintf(w, "optimal points:  %d\n", s.OptimalPoints)
		fmt.Fprintf(w, "point density:   %.4f per px\n", s.PointDensity)
	}
	printSummary(w, "intervals (ms)", s.Intervals)
}

func printSummary(w io.Writer, title string, s humanoid.Summary) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "  count  %d\n", s.Count)
	fmt.Fprintf(w, "  mean   %.2f\n", s.Mean)
	fmt.Fprintf(w, "  median %.2f\n", s.Median)
	fmt.Fprintf(w, "  std    %.2f\n", s.StdDev)
	fmt.Fprintf(w, "  min    %.2f\n", s.Min)
	fmt.Fprintf(w, "  max    %.2f\n", s.Max)
	for _, p := range []int{50, 75, 90, 95} {
		if v, ok := s.Percentiles[p]; ok {
			fmt.Fprintf(w, "  p%d    %.2f\n", p, v)
		}
	}
}
