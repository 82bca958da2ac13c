// Filename: internal/humanoid/interface.go
package humanoid

import (
	"context"
	"time"
)

// Controller defines the high-level pointer interactions offered by the Clicker.
type Controller interface {
	// Move travels from the current position to target. A nil path asks the
	// configured PathGenerator for one.
	Move(ctx context.Context, target Vector2D, fallbackDuration time.Duration, path []Vector2D) error
	Click(ctx context.Context) error
}

// Executor defines the host primitive that physically moves the pointer.
// MoveTo is expected to be instantaneous: all pacing is done through Sleep.
type Executor interface {
	// CurrentPosition reports where the pointer is now.
	CurrentPosition(ctx context.Context) (Vector2D, error)
	// MoveTo places the pointer at p.
	MoveTo(ctx context.Context, p Vector2D) error
	// Click presses and releases the primary button at the current position.
	Click(ctx context.Context) error
	// Sleep pauses execution, respecting context cancellation.
	Sleep(ctx context.Context, d time.Duration) error
}

// PathGenerator produces the ordered points of a move. Implementations must
// return at least two points, starting at start and ending at end.
type PathGenerator interface {
	Generate(start, end Vector2D, distanceAdaptive bool) []Vector2D
}
