// File: cmd/browse.go
package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/xkilldash9x/cursorpace/internal/browser"
	"github.com/xkilldash9x/cursorpace/internal/humanoid"
	"github.com/xkilldash9x/cursorpace/internal/observability"
	"go.uber.org/zap"
)

func newBrowseCmd() *cobra.Command {
	var (
		timing   timingFlags
		targets  []string
		click    bool
		headless bool
	)

	browseCmd := &cobra.Command{
		Use:   "browse [url]",
		Short: "Drive a real Chrome pointer through a sequence of targets",
		Example: `  cursorpace browse https://example.com --target 200,150 --target 640,400 --click
  cursorpace browse --headless=false --target 100,100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.SetBrowserURL(args[0])
			}
			if cmd.Flags().Changed("headless") {
				cfg.SetBrowserHeadless(headless)
			}
			if err := timing.apply(cmd, cfg); err != nil {
				return err
			}

			points := make([]humanoid.Vector2D, 0, len(targets))
			for _, t := range targets {
				p, err := parsePoint(t)
				if err != nil {
					return fmt.Errorf("--target: %w", err)
				}
				points = append(points, p)
			}
			if len(points) == 0 {
				return fmt.Errorf("at least one --target is required")
			}

			logger := observability.GetLogger().With(zap.String("run_id", uuid.NewString()))
			session, err := browser.NewSession(cmd.Context(), cfg.Browser(), logger)
			if err != nil {
				return err
			}
			defer session.Close()

			clicker := newClicker(cfg, timing.seed, session.Executor(), logger)
			ctx := session.Context()
			for i, p := range points {
				if err := clicker.Move(ctx, p, clicker.FallbackDuration(), nil); err != nil {
					return fmt.Errorf("target %d: %w", i, err)
				}
				if click {
					if err := clicker.Click(ctx); err != nil {
						return fmt.Errorf("target %d: %w", i, err)
					}
				}
				logger.Info("Reached target", zap.Int("index", i), zap.Float64("x", p.X), zap.Float64("y", p.Y))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "visited %d target(s) in %s mode\n", len(points), clicker.Mode())
			return nil
		},
	}

	timing.register(browseCmd)
	browseCmd.Flags().StringArrayVar(&targets, "target", nil, "pointer target as x,y (repeatable)")
	browseCmd.Flags().BoolVar(&click, "click", false, "click at every target")
	browseCmd.Flags().BoolVar(&headless, "headless", true, "run Chrome without a window")
	return browseCmd
}
