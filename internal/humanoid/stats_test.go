// internal/humanoid/stats_test.go
package humanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil))
	})

	t.Run("odd sample", func(t *testing.T) {
		samples := []float64{5, 1, 3}
		s := Summarize(samples)
		assert.Equal(t, 3, s.Count)
		assert.InDelta(t, 3.0, s.Mean, 1e-12)
		assert.InDelta(t, 3.0, s.Median, 1e-12)
		assert.Equal(t, 1.0, s.Min)
		assert.Equal(t, 5.0, s.Max)
		assert.Equal(t, []float64{5, 1, 3}, samples, "input is not reordered")
	})

	t.Run("even sample", func(t *testing.T) {
		s := Summarize([]float64{4, 1, 3, 2})
		assert.InDelta(t, 2.5, s.Median, 1e-12)
		assert.InDelta(t, 2.5, s.Mean, 1e-12)
		// Population standard deviation.
		assert.InDelta(t, 1.118033988749895, s.StdDev, 1e-12)
		assert.InDelta(t, 3.25, s.Percentiles[75], 1e-12)
		assert.InDelta(t, 3.7, s.Percentiles[90], 1e-12)
		assert.InDelta(t, 3.85, s.Percentiles[95], 1e-12)
		assert.Len(t, s.Percentiles, 4)
	})

	t.Run("single value", func(t *testing.T) {
		s := Summarize([]float64{7})
		assert.Equal(t, 7.0, s.Median)
		assert.Equal(t, 7.0, s.Percentiles[95])
		assert.Zero(t, s.StdDev)
	})
}
