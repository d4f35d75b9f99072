package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/techradar/internal/app"
	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/tui"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// Launch runs the TUI against an opened app until the user quits or the
// process receives SIGINT/SIGTERM.
func Launch(ctx context.Context, a *app.App, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg == nil {
		cfg = a.Config()
	}
	theme.Init(cfg.ColorScheme)

	model := tui.New(ctx, a, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	_, err := p.Run()
	// animation frames must not outlive the program
	model.Animator.Stop()

	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, tea.ErrInterrupted), errors.Is(err, context.Canceled):
		slog.Info("shutdown signal received")
		return nil
	default:
		return fmt.Errorf("error running program: %w", err)
	}
}
