// internal/browser/recorder.go
package browser

import (
	"context"
	"sync"
	"time"

	"github.com/xkilldash9x/cursorpace/internal/humanoid"
)

// StepKind labels a recorded executor call.
type StepKind string

const (
	StepMove  StepKind = "move"
	StepClick StepKind = "click"
	StepSleep StepKind = "sleep"
)

// Step is one recorded executor call. At is the virtual clock when the call
// began, i.e. the sum of all earlier sleeps.
type Step struct {
	Kind  StepKind          `json:"kind"`
	Point humanoid.Vector2D `json:"point"`
	Delay time.Duration     `json:"delay,omitempty"`
	At    time.Duration     `json:"at"`
}

// RecordingExecutor is a headless humanoid.Executor that records every call.
// Unless Realtime is set, sleeps only advance a virtual clock.
type RecordingExecutor struct {
	Realtime bool

	mu    sync.Mutex
	pos   humanoid.Vector2D
	clock time.Duration
	steps []Step
}

var _ humanoid.Executor = (*RecordingExecutor)(nil)

// NewRecordingExecutor creates a recorder with the pointer at start.
func NewRecordingExecutor(start humanoid.Vector2D) *RecordingExecutor {
	return &RecordingExecutor{pos: start}
}

func (r *RecordingExecutor) CurrentPosition(ctx context.Context) (humanoid.Vector2D, error) {
	if err := ctx.Err(); err != nil {
		return humanoid.Vector2D{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos, nil
}

func (r *RecordingExecutor) MoveTo(ctx context.Context, p humanoid.Vector2D) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos = p
	r.steps = append(r.steps, Step{Kind: StepMove, Point: p, At: r.clock})
	return nil
}

func (r *RecordingExecutor) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Kind: StepClick, Point: r.pos, At: r.clock})
	return nil
}

func (r *RecordingExecutor) Sleep(ctx context.Context, d time.Duration) error {
	if r.Realtime {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Kind: StepSleep, Point: r.pos, Delay: d, At: r.clock})
	r.clock += d
	return nil
}

// Steps returns a copy of everything recorded so far.
func (r *RecordingExecutor) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Step(nil), r.steps...)
}

// Elapsed is the total time slept.
func (r *RecordingExecutor) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock
}

// Delays returns the durations of all recorded sleeps in order.
func (r *RecordingExecutor) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []time.Duration
	for _, s := range r.steps {
		if s.Kind == StepSleep {
			out = append(out, s.Delay)
		}
	}
	return out
}

// Reset clears the recording and the virtual clock, keeping the position.
func (r *RecordingExecutor) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
	r.clock = 0
}
