// internal/browser/executor.go
package browser

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/xkilldash9x/cursorpace/internal/config"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
)

// dispatchFunc sends a single mouse event to the browser.
type dispatchFunc func(ctx context.Context, p *input.DispatchMouseEventParams) error

func doDispatch(ctx context.Context, p *input.DispatchMouseEventParams) error {
	return p.Do(ctx)
}

// CDPExecutor drives the page pointer through the DevTools protocol. The
// protocol has no query for the cursor location, so the executor tracks the
// last position it dispatched, starting from the configured origin.
type CDPExecutor struct {
	mu       sync.Mutex
	pos      humanoid.Vector2D
	holdMin  time.Duration
	holdMax  time.Duration
	rng      *rand.Rand
	dispatch dispatchFunc
}

var _ humanoid.Executor = (*CDPExecutor)(nil)

// NewCDPExecutor creates an executor for the chromedp context passed to each call.
func NewCDPExecutor(cfg config.BrowserConfig) *CDPExecutor {
	holdMin := time.Duration(cfg.ClickHoldMinMs) * time.Millisecond
	holdMax := time.Duration(cfg.ClickHoldMaxMs) * time.Millisecond
	if holdMax < holdMin {
		holdMax = holdMin
	}
	return &CDPExecutor{
		pos:      humanoid.Vector2D{X: cfg.StartX, Y: cfg.StartY},
		holdMin:  holdMin,
		holdMax:  holdMax,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		dispatch: doDispatch,
	}
}

// CurrentPosition returns the last dispatched pointer position.
func (e *CDPExecutor) CurrentPosition(ctx context.Context) (humanoid.Vector2D, error) {
	if err := ctx.Err(); err != nil {
		return humanoid.Vector2D{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos, nil
}

// MoveTo dispatches a mouseMoved event. The tracked position only advances
// when the browser accepted the event.
func (e *CDPExecutor) MoveTo(ctx context.Context, p humanoid.Vector2D) error {
	if err := e.dispatch(ctx, input.DispatchMouseEvent(input.MouseMoved, p.X, p.Y)); err != nil {
		return fmt.Errorf("browser: dispatch mouseMoved: %w", err)
	}
	e.mu.Lock()
	e.pos = p
	e.mu.Unlock()
	return nil
}

// Click presses and releases the left button at the tracked position,
// holding it for a random duration within the configured bounds.
func (e *CDPExecutor) Click(ctx context.Context) error {
	e.mu.Lock()
	pos := e.pos
	hold := e.holdMin
	if span := e.holdMax - e.holdMin; span > 0 {
		hold += time.Duration(e.rng.Int63n(int64(span) + 1))
	}
	e.mu.Unlock()

	press := input.DispatchMouseEvent(input.MousePressed, pos.X, pos.Y).
		WithButton(input.Left).
		WithClickCount(1)
	if err := e.dispatch(ctx, press); err != nil {
		return fmt.Errorf("browser: dispatch mousePressed: %w", err)
	}
	if err := e.Sleep(ctx, hold); err != nil {
		return err
	}
	release := input.DispatchMouseEvent(input.MouseReleased, pos.X, pos.Y).
		WithButton(input.Left).
		WithClickCount(1)
	if err := e.dispatch(ctx, release); err != nil {
		return fmt.Errorf("browser: dispatch mouseReleased: %w", err)
	}
	return nil
}

// Sleep blocks for d or until ctx is done.
func (e *CDPExecutor) Sleep(ctx context.Context, d time.Duration) error {
	return chromedp.Sleep(d).Do(ctx)
}
