// internal/browser/recorder_test.go
package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
)

func TestRecordingExecutor(t *testing.T) {
	ctx := context.Background()
	rec := NewRecordingExecutor(humanoid.Vector2D{X: 1, Y: 1})

	require.NoError(t, rec.MoveTo(ctx, humanoid.Vector2D{X: 5, Y: 5}))
	require.NoError(t, rec.Sleep(ctx, 20*time.Millisecond))
	require.NoError(t, rec.MoveTo(ctx, humanoid.Vector2D{X: 9, Y: 9}))
	require.NoError(t, rec.Sleep(ctx, 30*time.Millisecond))
	require.NoError(t, rec.Click(ctx))

	steps := rec.Steps()
	require.Len(t, steps, 5)
	assert.Equal(t, []StepKind{StepMove, StepSleep, StepMove, StepSleep, StepClick},
		[]StepKind{steps[0].Kind, steps[1].Kind, steps[2].Kind, steps[3].Kind, steps[4].Kind})
	assert.Equal(t, 20*time.Millisecond, steps[2].At)
	assert.Equal(t, 50*time.Millisecond, steps[4].At)
	assert.Equal(t, humanoid.Vector2D{X: 9, Y: 9}, steps[4].Point)

	assert.Equal(t, 50*time.Millisecond, rec.Elapsed())
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 30 * time.Millisecond}, rec.Delays())

	pos, err := rec.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, humanoid.Vector2D{X: 9, Y: 9}, pos)

	rec.Reset()
	assert.Empty(t, rec.Steps())
	assert.Zero(t, rec.Elapsed())
	pos, _ = rec.CurrentPosition(ctx)
	assert.Equal(t, humanoid.Vector2D{X: 9, Y: 9}, pos, "reset keeps the position")
}

func TestRecordingExecutor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := NewRecordingExecutor(humanoid.Vector2D{})
	assert.ErrorIs(t, rec.MoveTo(ctx, humanoid.Vector2D{X: 1}), context.Canceled)
	assert.ErrorIs(t, rec.Sleep(ctx, time.Second), context.Canceled)
	assert.ErrorIs(t, rec.Click(ctx), context.Canceled)
	assert.Empty(t, rec.Steps())

	rec.Realtime = true
	assert.ErrorIs(t, rec.Sleep(ctx, time.Hour), context.Canceled)
}

func TestRecordingExecutor_Realtime(t *testing.T) {
	rec := NewRecordingExecutor(humanoid.Vector2D{})
	rec.Realtime = true

	start := time.Now()
	require.NoError(t, rec.Sleep(context.Background(), 15*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, rec.Elapsed())
}
