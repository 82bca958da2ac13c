// File: cmd/simulate.go
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/xkilldash9x/cursorpace/internal/browser"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
	"github.com/xkilldash9x/cursorpace/internal/observability"
	"go.uber.org/zap"
)

// simulationReport describes one recorded move.
type simulationReport struct {
	RunID      string              `json:"run_id"`
	Mode       humanoid.TimingMode `json:"mode"`
	From       humanoid.Vector2D   `json:"from"`
	To         humanoid.Vector2D   `json:"to"`
	Points     int                 `json:"points"`
	PathLength float64             `json:"path_length"`
	DurationMs float64             `json:"duration_ms"`
	Delays     humanoid.Summary    `json:"delays_ms"`
	Clicked    bool                `json:"clicked"`
	Steps      []browser.Step      `json:"steps,omitempty"`
}

func newSimulateCmd() *cobra.Command {
	var (
		timing    timingFlags
		from, to  string
		click     bool
		realtime  bool
		withSteps bool
		asJSON    bool
	)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a move against a recording pointer and report its timing",
		Example: `  cursorpace simulate --from 0,0 --to 800,450 --seed 7
  cursorpace simulate --to 300,300 --mode disabled --fallback 500ms --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			target, err := parsePoint(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
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
			recorder := browser.NewRecordingExecutor(start)
			recorder.Realtime = realtime
			clicker := newClicker(cfg, timing.seed, recorder, logger)

			if err := clicker.Move(cmd.Context(), target, clicker.FallbackDuration(), nil); err != nil {
				return err
			}
			if click {
				if err := clicker.Click(cmd.Context()); err != nil {
					return err
				}
			}

			report := buildReport(runID, clicker.Mode(), start, target, recorder)
			report.Clicked = click
			if withSteps {
				report.Steps = recorder.Steps()
			}
			logger.Info("Simulation complete",
				zap.String("mode", string(report.Mode)),
				zap.Int("points", report.Points),
				zap.Float64("duration_ms", report.DurationMs))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	timing.register(simulateCmd)
	simulateCmd.Flags().StringVar(&from, "from", "0,0", "start point as x,y")
	simulateCmd.Flags().StringVar(&to, "to", "", "target point as x,y")
	simulateCmd.Flags().BoolVar(&click, "click", false, "click at the target")
	simulateCmd.Flags().BoolVar(&realtime, "realtime", false, "actually wait out every delay")
	simulateCmd.Flags().BoolVar(&withSteps, "steps", false, "include every recorded step in JSON output")
	simulateCmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	_ = simulateCmd.MarkFlagRequired("to")
	return simulateCmd
}

func buildReport(runID string, mode humanoid.TimingMode, from, to humanoid.Vector2D, rec *browser.RecordingExecutor) simulationReport {
	var points []humanoid.Vector2D
	for _, s := range rec.Steps() {
		if s.Kind == browser.StepMove {
			points = append(points, s.Point)
		}
	}
	var delays []float64
	for _, d := range rec.Delays() {
		delays = append(delays, durationMs(d))
	}
	return simulationReport{
		RunID:      runID,
		Mode:       mode,
		From:       from,
		To:         to,
		Points:     len(points),
		PathLength: humanoid.PathLength(points),
		DurationMs: durationMs(rec.Elapsed()),
		Delays:     humanoid.Summarize(delays),
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func printReport(w io.Writer, r simulationReport) {
	fmt.Fprintf(w, "run:          %s\n", r.RunID)
	fmt.Fprintf(w, "mode:         %s\n", r.Mode)
	fmt.Fprintf(w, "move:         (%.0f, %.0f) -> (%.0f, %.0f)\n", r.From.X, r.From.Y, r.To.X, r.To.Y)
	fmt.Fprintf(w, "points:       %d\n", r.Points)
	fmt.Fprintf(w, "path length:  %.1f px\n", r.PathLength)
	fmt.Fprintf(w, "duration:     %.1f ms\n", r.DurationMs)
	if r.Clicked {
		fmt.Fprintln(w, "clicked:      yes")
	}
	printSummary(w, "delays (ms)", r.Delays)
}
