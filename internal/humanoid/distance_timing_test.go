// internal/humanoid/distance_timing_test.go
package humanoid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIntervalForStepDistance(t *testing.T) {
	t.Run("uniform shape for high variation", func(t *testing.T) {
		m := NewDistanceIntervalModel(fixedRand{f: 0.5})
		m.SetThinkingParameters(0, 150, 250)
		// [0, 0.5): base 15, variation 12 -> uniform(9, 21) midpoint, jitter 1.0.
		assert.InDelta(t, 0.015, m.GetIntervalForStepDistance(0.2), 1e-9)
	})

	t.Run("normal shape for low variation", func(t *testing.T) {
		m := NewDistanceIntervalModel(fixedRand{f: 0.5, n: 0})
		// [2.5, 4): base 9, variation 7.
		assert.InDelta(t, 0.009, m.GetIntervalForStepDistance(3), 1e-9)
	})

	t.Run("normal shape is clamped to 50ms before jitter", func(t *testing.T) {
		m := NewDistanceIntervalModel(fixedRand{f: 0.5, n: 3})
		m.SetIntervalBuckets([]IntervalBucket{{Lower: 0, Upper: 100, BaseMs: 40, VariationMs: 8}})
		assert.InDelta(t, 0.050, m.GetIntervalForStepDistance(5), 1e-9)

		m = NewDistanceIntervalModel(fixedRand{f: 0.5, n: -10})
		m.SetIntervalBuckets([]IntervalBucket{{Lower: 0, Upper: 100, BaseMs: 40, VariationMs: 8}})
		assert.InDelta(t, 0.003, m.GetIntervalForStepDistance(5), 1e-9)
	})

	t.Run("uniform shape is floored at 3ms before jitter", func(t *testing.T) {
		m := NewDistanceIntervalModel(fixedRand{f: 0})
		m.SetIntervalBuckets([]IntervalBucket{{Lower: 0, Upper: 10, BaseMs: 4, VariationMs: 20}})
		// max(3, -6) = 3, then the lowest jitter of 0.8.
		assert.InDelta(t, 0.0024, m.GetIntervalForStepDistance(1), 1e-9)
	})

	t.Run("uncovered step uses the fallback range", func(t *testing.T) {
		m := NewDistanceIntervalModel(fixedRand{f: 0.5})
		assert.InDelta(t, 0.0115, m.GetIntervalForStepDistance(150), 1e-9)
	})

	t.Run("thinking pause fires only at rest", func(t *testing.T) {
		m := NewDistanceIntervalModel(fixedRand{f: 0.05, n: 0})
		assert.InDelta(t, 0.155, m.GetIntervalForStepDistance(0.1), 1e-9)

		// A draw of 0.05 is under the probability but the pointer is moving.
		got := m.GetIntervalForStepDistance(0.5)
		assert.Less(t, got, 0.05)
	})

	t.Run("degenerate thinking range", func(t *testing.T) {
		m := NewDistanceIntervalModel(rand.New(rand.NewSource(1)))
		m.SetThinkingParameters(1, 150, 150)
		for i := 0; i < 50; i++ {
			require.Equal(t, 0.15, m.GetIntervalForStepDistance(0.1))
		}
	})
}

func TestGetIntervalForStepDistance_Range(t *testing.T) {
	m := NewDistanceIntervalModel(rand.New(rand.NewSource(42)))
	m.SetThinkingParameters(0, 0, 0)
	for i := 0; i < 5000; i++ {
		step := float64(i%200) * 0.5
		got := m.GetIntervalForStepDistance(step)
		// 3ms floor and 50ms ceiling, each scaled by the 0.8-1.2 jitter.
		require.GreaterOrEqual(t, got, 0.00239, "step %v", step)
		require.LessOrEqual(t, got, 0.06001, "step %v", step)
	}
}

func TestSetThinkingParameters_Clamps(t *testing.T) {
	m := NewDistanceIntervalModel(nil)

	m.SetThinkingParameters(1.7, -5, -10)
	assert.Equal(t, ThinkingPause{Probability: 1, MinMs: 0, MaxMs: 0}, *m.Thinking())

	m.SetThinkingParameters(-0.2, 300, 100)
	assert.Equal(t, ThinkingPause{Probability: 0, MinMs: 300, MaxMs: 300}, *m.Thinking())
}

func TestGenerateIntervalsForPoints(t *testing.T) {
	m := NewDistanceIntervalModel(rand.New(rand.NewSource(3)))

	assert.Nil(t, m.GenerateIntervalsForPoints(nil))
	assert.Nil(t, m.GenerateIntervalsForPoints([]Vector2D{{X: 1, Y: 1}}))

	points := straightLine(Vector2D{}, Vector2D{X: 100}, 25)
	intervals := m.GenerateIntervalsForPoints(points)
	assert.Len(t, intervals, 24)
	assert.Len(t, m.Schedule(points), 24)
	for _, iv := range intervals {
		assert.Greater(t, iv, 0.0)
	}
}

func TestDistanceIntervalModel_BucketsRoundTrip(t *testing.T) {
	m := NewDistanceIntervalModel(nil)
	assert.Equal(t, DefaultIntervalBuckets(), m.IntervalBuckets())

	custom := []IntervalBucket{{Lower: 0, Upper: 5, BaseMs: 10, VariationMs: 2, Weight: 1}}
	m.SetIntervalBuckets(custom)
	assert.Equal(t, custom, m.IntervalBuckets())
}

func TestDistanceIntervalModel_DensityDelegation(t *testing.T) {
	m := NewDistanceIntervalModel(fixedRand{f: 0.5})
	assert.Equal(t, 36, m.CalculateOptimalPointCount(80))

	m.AdjustDensityForDistance(80, 1.5)
	assert.Equal(t, 54, m.CalculateOptimalPointCount(80))
	assert.Equal(t, 54, m.Density().CalculateOptimalPointCount(80))
}

func TestDistanceIntervalModel_Stats(t *testing.T) {
	m := NewDistanceIntervalModel(rand.New(rand.NewSource(11)))

	stats := m.Stats(400, 200)
	assert.Equal(t, ModeDistanceAdaptive, stats.Mode)
	assert.Equal(t, 400.0, stats.TotalDistance)
	assert.GreaterOrEqual(t, stats.OptimalPoints, 20)
	assert.LessOrEqual(t, stats.OptimalPoints, 320)
	assert.InDelta(t, float64(stats.OptimalPoints)/400, stats.PointDensity, 1e-12)
	assert.Equal(t, 200, stats.Intervals.Count)
	assert.LessOrEqual(t, stats.Intervals.Min, stats.Intervals.Median)
	assert.LessOrEqual(t, stats.Intervals.Median, stats.Intervals.Max)

	t.Run("zero distance", func(t *testing.T) {
		zero := m.Stats(0, 10)
		assert.Zero(t, zero.PointDensity)
		assert.Equal(t, 10, zero.Intervals.Count)
	})
}
