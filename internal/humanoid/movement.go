// internal/humanoid/movement.go
package humanoid

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// legacyPace is the per-point pause when timing is off and no duration is given.
	legacyPace = 8 * time.Millisecond
	// tremorThreshold is the delay above which a point is nudged by up to a
	// pixel, modelling tremor during slow, deliberate motion.
	tremorThreshold = 0.020
)

// Move travels from the current pointer position to target. If path is nil,
// one is requested from the path generator. With human timing disabled the
// move takes fallbackDuration overall; a non-positive value selects an 8ms
// pace per point.
func (c *Clicker) Move(ctx context.Context, target Vector2D, fallbackDuration time.Duration, path []Vector2D) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start, err := c.executor.CurrentPosition(ctx)
	if err != nil {
		return fmt.Errorf("humanoid: failed to read pointer position: %w", err)
	}
	if path == nil {
		path = c.generator.Generate(start, target, c.distanceBased)
	}
	if len(path) == 0 {
		return ErrNoPath
	}

	logger := c.logger.With(zap.String("move_id", uuid.NewString()), zap.Int("points", len(path)))
	if c.mode() == ModeDisabled {
		return c.legacyMove(ctx, logger, path, fallbackDuration)
	}

	intervals := c.model.Schedule(path)
	logger.Debug("Move planned",
		zap.String("mode", string(c.mode())),
		zap.Int("intervals", len(intervals)),
		zap.Duration("planned", secondsToDuration(sum(intervals))))

	for i, point := range path {
		hasInterval := i < len(intervals)
		if hasInterval && intervals[i] > tremorThreshold {
			point = point.Add(Vector2D{
				X: sampleUniform(c.rng, -1, 1),
				Y: sampleUniform(c.rng, -1, 1),
			}).Truncate()
		}
		if err := c.executor.MoveTo(ctx, point); err != nil {
			if ctx.Err() == nil {
				logger.Warn("Humanoid: Failed to dispatch pointer move", zap.Int("index", i), zap.Error(err))
			}
			return fmt.Errorf("humanoid: move to point %d failed: %w", i, err)
		}
		if hasInterval {
			if err := c.executor.Sleep(ctx, secondsToDuration(intervals[i])); err != nil {
				return err
			}
		}
	}

	logger.Debug("Move completed")
	return nil
}

// legacyMove paces every point identically, pausing after each move so the
// whole path spans fallbackDuration.
func (c *Clicker) legacyMove(ctx context.Context, logger *zap.Logger, path []Vector2D, fallbackDuration time.Duration) error {
	pace := legacyPace
	if fallbackDuration > 0 {
		pace = fallbackDuration / time.Duration(len(path))
	}
	logger.Debug("Move planned", zap.String("mode", string(ModeDisabled)), zap.Duration("pace", pace))

	for i, point := range path {
		if err := c.executor.MoveTo(ctx, point); err != nil {
			return fmt.Errorf("humanoid: move to point %d failed: %w", i, err)
		}
		if err := c.executor.Sleep(ctx, pace); err != nil {
			return err
		}
	}
	return nil
}

// Click presses the primary button at the current position.
func (c *Clicker) Click(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.executor.Click(ctx); err != nil {
		return fmt.Errorf("humanoid: click failed: %w", err)
	}
	return nil
}

// FallbackDuration returns the configured legacy move duration.
func (c *Clicker) FallbackDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fallbackDuration
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}
