// Package cmd wires the cobra command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/category"
	"github.com/thenoetrevino/techradar/internal/cli/datasetcli"
	"github.com/thenoetrevino/techradar/internal/cli/project"
	"github.com/thenoetrevino/techradar/internal/cli/radarcli"
	"github.com/thenoetrevino/techradar/internal/cli/serve"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/cli/technology"
	"github.com/thenoetrevino/techradar/internal/cli/tutorial"
	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/launcher"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// NewRootCmd builds the full command tree. Running the root without a
// subcommand opens the TUI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "techradar",
		Short: "Technology radar for the terminal",
		Long: `techradar tracks which technologies a team adopts, trials, assesses or
holds, and which projects use them. Run it without a subcommand for the
interactive radar.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initStyles,
		RunE:              runTUI,
	}
	cli.AddGlobalFlags(root)

	root.AddCommand(tuiCmd())
	root.AddCommand(technology.TechnologyCmd())
	root.AddCommand(category.QuadrantCmd())
	root.AddCommand(category.RingCmd())
	root.AddCommand(project.ProjectCmd())
	root.AddCommand(radarcli.RadarCmd())
	root.AddCommand(datasetcli.DatasetCmd())
	root.AddCommand(serve.ServeCmd())
	root.AddCommand(tutorial.TutorialCmd())

	return root
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive radar",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

// initStyles applies the configured color scheme to CLI and TUI styles
func initStyles(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)
	theme.Init(cfg.ColorScheme)
	return nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	c, err := cli.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	if err := launcher.Launch(cmd.Context(), c.App, c.App.Config()); err != nil {
		return err
	}
	return c.MaybeExport(cmd)
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	root := NewRootCmd()
	err := root.ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	// handler errors were already reported by the output formatter
	var reported *cli.ExitCodeError
	if !errors.As(err, &reported) {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCodeFor(err)
}
