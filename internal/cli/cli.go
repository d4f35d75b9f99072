// Package cli holds the plumbing shared by the subcommands: store setup,
// output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/app"
	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/dataset"
)

type appKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	// owned is false when the app came from the context, in which case the
	// caller closes it.
	owned bool
}

// WithApp returns a context carrying an already opened app. Commands run
// under it reuse the app instead of seeding a fresh store.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// FromCommand returns the CLI for a running command. Without an app in the
// context it loads the config and seeds a fresh store from --data, the
// configured data_file, or the built-in sample.
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := []app.Option{app.WithConfig(cfg)}
	if dataFile := StringFlag(cmd, "data"); dataFile != "" {
		opts = append(opts, app.WithDataFile(dataFile))
	}

	a, err := app.Open(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &CLI{App: a, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// CategoryNames returns quadrant and ring names in position order
func (c *CLI) CategoryNames(ctx context.Context) (quadrants, rings []string, err error) {
	qs, err := c.App.QuadrantService.ListQuadrants(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list quadrants: %w", err)
	}
	rs, err := c.App.RingService.ListRings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rings: %w", err)
	}
	return QuadrantNames(qs), RingNames(rs), nil
}

// MaybeExport writes the store to the --export file when one was given.
// Mutating commands call it so changes can outlive the process.
func (c *CLI) MaybeExport(cmd *cobra.Command) error {
	path := StringFlag(cmd, "export")
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Error("failed to close export file", "path", path, "error", cerr)
		}
	}()

	if err := dataset.Export(cmd.Context(), c.App.Repo(), f); err != nil {
		return err
	}
	slog.Info("dataset exported", "path", path)
	return nil
}

// StringFlag reads a string flag, local or inherited, returning "" when the
// command does not define it.
func StringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Formatter builds an OutputFormatter from the command's output flags,
// writing to the command's stdout.
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddGlobalFlags registers the store flags every subcommand inherits
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("data", "", "Dataset file to seed the store from (YAML)")
	cmd.PersistentFlags().String("export", "", "Write the store to this YAML file after a successful change")
}
