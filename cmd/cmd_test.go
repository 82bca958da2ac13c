// File: cmd/cmd_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xkilldash9x/cursorpace/internal/browser"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
	"github.com/xkilldash9x/cursorpace/internal/observability"
)

// executeCommand runs a fresh command tree and returns what it wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	root := NewRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// createTempConfig writes content to a YAML file inside the test's temp dir.
func createTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runSimulation(t *testing.T, args ...string) simulationReport {
	t.Helper()
	out, err := executeCommand(t, append([]string{"simulate", "--json"}, args...)...)
	require.NoError(t, err)
	var report simulationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	return report
}

func lastMove(steps []browser.Step) (browser.Step, bool) {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].Kind == browser.StepMove {
			return steps[i], true
		}
	}
	return browser.Step{}, false
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestStatsCmd(t *testing.T) {
	t.Run("Flat JSON", func(t *testing.T) {
		out, err := executeCommand(t, "stats", "--mode", "flat", "--samples", "200", "--seed", "3", "--json")
		require.NoError(t, err)

		var stats humanoid.TimingStats
		require.NoError(t, json.Unmarshal([]byte(out), &stats))
		assert.Equal(t, humanoid.ModeFlat, stats.Mode)
		assert.Equal(t, 200, stats.Intervals.Count)
		assert.Zero(t, stats.TotalDistance, "the flat model has no spatial context")
		assert.Greater(t, stats.Intervals.Min, 0.0)
		assert.Contains(t, stats.Intervals.Percentiles, 95)
	})

	t.Run("Distance Text", func(t *testing.T) {
		out, err := executeCommand(t, "stats", "--distance", "500", "--samples", "50", "--seed", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "mode:            distance")
		assert.Contains(t, out, "distance:        500.0 px")
		assert.Contains(t, out, "count  50")
	})

	t.Run("Disabled", func(t *testing.T) {
		_, err := executeCommand(t, "stats", "--mode", "disabled")
		assert.ErrorIs(t, err, errTimingDisabled)
	})

	t.Run("Invalid Samples", func(t *testing.T) {
		_, err := executeCommand(t, "stats", "--samples", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--samples must be positive")
	})

	t.Run("Invalid Distance", func(t *testing.T) {
		for _, d := range []string{"0", "-5"} {
			_, err := executeCommand(t, "stats", "--distance", d)
			require.Error(t, err, d)
			assert.Contains(t, err.Error(), "--distance must be positive")
		}
	})

	t.Run("Invalid Mode", func(t *testing.T) {
		_, err := executeCommand(t, "stats", "--mode", "warp")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown timing mode "warp"`)
	})
}

func TestSimulateCmd(t *testing.T) {
	t.Run("Seeded Runs Are Reproducible", func(t *testing.T) {
		args := []string{"--from", "10,10", "--to", "400,300", "--seed", "11", "--steps"}
		first := runSimulation(t, args...)
		second := runSimulation(t, args...)

		assert.NotEqual(t, first.RunID, second.RunID)
		assert.Equal(t, first.Steps, second.Steps)
		assert.Equal(t, first.Delays, second.Delays)
		assert.Equal(t, humanoid.ModeDistanceAdaptive, first.Mode)
	})

	t.Run("Distance Mode Ends On Target", func(t *testing.T) {
		report := runSimulation(t, "--from", "10,10", "--to", "400,300", "--seed", "5", "--steps")

		last, ok := lastMove(report.Steps)
		require.True(t, ok)
		assert.Equal(t, humanoid.Vector2D{X: 400, Y: 300}, last.Point)
		assert.Equal(t, report.Points-1, report.Delays.Count, "no delay follows the final point")
		assert.GreaterOrEqual(t, report.PathLength, humanoid.Vector2D{X: 10, Y: 10}.Dist(humanoid.Vector2D{X: 400, Y: 300})-3)
	})

	t.Run("Flat Mode Paces Every Point", func(t *testing.T) {
		report := runSimulation(t, "--to", "300,400", "--mode", "flat", "--seed", "5")
		assert.Equal(t, humanoid.ModeFlat, report.Mode)
		assert.Equal(t, report.Points, report.Delays.Count)
	})

	t.Run("Disabled Uses Fallback", func(t *testing.T) {
		report := runSimulation(t, "--to", "300,400", "--mode", "disabled", "--fallback", "500ms", "--seed", "5")
		assert.Equal(t, humanoid.ModeDisabled, report.Mode)
		assert.Equal(t, report.Points, report.Delays.Count)
		assert.InDelta(t, 500, report.DurationMs, 1)
		assert.InDelta(t, report.Delays.Min, report.Delays.Max, 1e-9, "legacy pacing is uniform")
	})

	t.Run("Click", func(t *testing.T) {
		report := runSimulation(t, "--to", "50,50", "--click", "--steps", "--seed", "2")
		assert.True(t, report.Clicked)
		require.NotEmpty(t, report.Steps)
		assert.Equal(t, browser.StepClick, report.Steps[len(report.Steps)-1].Kind)
	})

	t.Run("Text Output", func(t *testing.T) {
		out, err := executeCommand(t, "simulate", "--to", "120,80", "--seed", "9")
		require.NoError(t, err)
		assert.Contains(t, out, "mode:         distance")
		assert.Contains(t, out, "move:         (0, 0) -> (120, 80)")
		assert.Contains(t, out, "delays (ms):")
	})

	t.Run("Bad Point", func(t *testing.T) {
		_, err := executeCommand(t, "simulate", "--to", "abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--to")
	})

	t.Run("Missing Target", func(t *testing.T) {
		_, err := executeCommand(t, "simulate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "to" not set`)
	})
}

func TestConfigFlag(t *testing.T) {
	t.Run("File Values Apply", func(t *testing.T) {
		path := createTempConfig(t, `
logger:
  level: error
humanoid:
  human_timing: false
  fallback_duration: 200ms
`)
		report := runSimulation(t, "--config", path, "--to", "90,120", "--seed", "4")
		assert.Equal(t, humanoid.ModeDisabled, report.Mode)
		assert.InDelta(t, 200, report.DurationMs, 1)
	})

	t.Run("Flags Override File", func(t *testing.T) {
		path := createTempConfig(t, `
humanoid:
  human_timing: false
`)
		report := runSimulation(t, "--config", path, "--mode", "flat", "--to", "90,120", "--seed", "4")
		assert.Equal(t, humanoid.ModeFlat, report.Mode)
	})

	t.Run("Missing Explicit File", func(t *testing.T) {
		_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "stats")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize configuration")
	})

	t.Run("Invalid File", func(t *testing.T) {
		path := createTempConfig(t, `
humanoid:
  curve:
    points: 1
`)
		_, err := executeCommand(t, "--config", path, "stats")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "curve.points must be at least 2")
	})
}

func TestBrowseCmd_RequiresTarget(t *testing.T) {
	// Fails before any browser is launched.
	_, err := executeCommand(t, "browse", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one --target is required")
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    humanoid.Vector2D
		wantErr bool
	}{
		{in: "10,20", want: humanoid.Vector2D{X: 10, Y: 20}},
		{in: " 1.5 , -3 ", want: humanoid.Vector2D{X: 1.5, Y: -3}},
		{in: "10", wantErr: true},
		{in: "x,2", wantErr: true},
		{in: "1,", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
