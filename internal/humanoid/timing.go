package humanoid

import "fmt"

// TimingMode selects how the Clicker paces a path.
type TimingMode string

const (
	// ModeDisabled paces every point uniformly from the fallback duration.
	ModeDisabled TimingMode = "disabled"
	// ModeDistanceAdaptive derives each delay from the step's distance.
	ModeDistanceAdaptive TimingMode = "distance"
	// ModeFlat draws delays from the tiered mixture, ignoring geometry.
	ModeFlat TimingMode = "flat"
)

// ParseTimingMode accepts the names used on the command line and in config.
func ParseTimingMode(s string) (TimingMode, error) {
	switch TimingMode(s) {
	case ModeDisabled, ModeDistanceAdaptive, ModeFlat:
		return TimingMode(s), nil
	case "":
		return ModeDistanceAdaptive, nil
	}
	return "", fmt.Errorf("humanoid: unknown timing mode %q", s)
}

// IntervalModel produces the delay schedule for a path. Index i of the
// returned slice is the delay, in seconds, to wait after moving to point i.
type IntervalModel interface {
	Schedule(points []Vector2D) []float64
	Thinking() *ThinkingPause
	Stats(totalDistance float64, sampleCount int) TimingStats
}
