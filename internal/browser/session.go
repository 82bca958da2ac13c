// internal/browser/session.go
package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
	"github.com/xkilldash9x/cursorpace/internal/config"
	"go.uber.org/zap"
)

// DefaultAllocatorOptions builds the Chrome launch flags for cfg. Extra
// arguments in cfg.Args take the form "name" or "name=value".
func DefaultAllocatorOptions(cfg config.BrowserConfig) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("enable-automation", true),
		chromedp.WindowSize(cfg.WindowWidth, cfg.WindowHeight),
	}
	if cfg.Headless {
		opts = append(opts, chromedp.Headless)
	}
	for _, arg := range cfg.Args {
		opts = append(opts, parseArg(arg))
	}
	return opts
}

func parseArg(arg string) chromedp.ExecAllocatorOption {
	name := strings.TrimLeft(arg, "-")
	if key, value, ok := strings.Cut(name, "="); ok {
		return chromedp.Flag(key, value)
	}
	return chromedp.Flag(name, true)
}

// Session is a running browser tab with a pointer executor bound to it.
type Session struct {
	ctx      context.Context
	cancel   context.CancelFunc
	executor *CDPExecutor
	logger   *zap.Logger
}

// NewSession launches Chrome and navigates the first tab to cfg.URL.
func NewSession(ctx context.Context, cfg config.BrowserConfig, logger *zap.Logger) (*Session, error) {
	logger = logger.Named("browser")
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, DefaultAllocatorOptions(cfg)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithErrorf(logger.Sugar().Errorf))
	cancel := func() {
		tabCancel()
		allocCancel()
	}

	logger.Info("Launching browser", zap.Bool("headless", cfg.Headless), zap.String("url", cfg.URL))
	if err := chromedp.Run(tabCtx, chromedp.Navigate(cfg.URL)); err != nil {
		cancel()
		return nil, fmt.Errorf("browser: failed to open %q: %w", cfg.URL, err)
	}

	return &Session{
		ctx:      tabCtx,
		cancel:   cancel,
		executor: NewCDPExecutor(cfg),
		logger:   logger,
	}, nil
}

// Context returns the chromedp context that executor calls must run under.
func (s *Session) Context() context.Context { return s.ctx }

// Executor returns the pointer executor for this tab.
func (s *Session) Executor() *CDPExecutor { return s.executor }

// Close shuts the tab and the browser process down.
func (s *Session) Close() {
	s.logger.Debug("Closing browser session")
	s.cancel()
}
