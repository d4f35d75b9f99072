package radarcli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/handler"
	"github.com/thenoetrevino/techradar/internal/radar"
	"github.com/thenoetrevino/techradar/internal/tui/components"
)

// Drawing is a rendered radar. Lines carry the plain text, Styled the
// terminal rendering.
type Drawing struct {
	Columns    int      `json:"columns"`
	Rows       int      `json:"rows"`
	Seed       uint64   `json:"seed"`
	Placed     int      `json:"placed"`
	SelectedID int      `json:"selected_id,omitempty"`
	Lines      []string `json:"lines"`
	Styled     string   `json:"-"`
}

// RenderCmd returns the radar render subcommand
func RenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the radar as text",
		Long: `Draw the radar the way the TUI shows it, without animation.

Colors are dropped when stdout is not a terminal. --select highlights one
technology and labels it.`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&renderHandler{}),
	}

	cmd.Flags().Int("cols", 80, "Canvas width in terminal columns")
	cmd.Flags().Int("rows", 30, "Canvas height in terminal rows")
	cmd.Flags().Int("select", 0, "Technology to highlight")
	cmd.Flags().Uint64("seed", 0, "Jitter seed (0 picks one)")
	cmd.Flags().StringP("query", "q", "", "Only technologies matching this text")
	cmd.Flags().String("quadrant", "", "Only this quadrant (name or position)")
	cmd.Flags().String("ring", "", "Only this ring (name or position)")
	cli.AddOutputFlags(cmd)

	return cmd
}

type renderHandler struct{}

func (h *renderHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	cols := args.GetInt("cols", 80)
	rows := args.GetInt("rows", 30)
	if cols < 10 || rows < 5 {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: fmt.Errorf("canvas must be at least 10x5, got %dx%d", cols, rows)}
	}

	quadrants, err := c.App.QuadrantService.ListQuadrants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quadrants: %w", err)
	}
	rings, err := c.App.RingService.ListRings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rings: %w", err)
	}

	technologies, err := filtered(ctx, c, args, cli.QuadrantNames(quadrants), cli.RingNames(rings))
	if err != nil {
		return nil, err
	}

	seed := seedFor(args, c.App.Config().Radar.Seed)
	placements, err := radar.NewSeededLayout(components.UnitGeometry, seed).Build(technologies)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitDataErr, Err: err}
	}

	selected := args.GetInt("select", 0)
	if selected != 0 {
		if _, err := c.App.TechnologyService.GetTechnology(ctx, selected); err != nil {
			return nil, err
		}
	}

	styled := components.RenderCanvas(components.CanvasProps{
		Width:      cols,
		Height:     rows,
		Placements: placements,
		Quadrants:  quadrants,
		Rings:      rings,
		SelectedID: selected,
	})

	return &Drawing{
		Columns:    cols,
		Rows:       rows,
		Seed:       seed,
		Placed:     len(placements),
		SelectedID: selected,
		Lines:      strings.Split(ansi.Strip(styled), "\n"),
		Styled:     styled,
	}, nil
}

func (h *renderHandler) Human(w io.Writer, result any) error {
	d := result.(*Drawing)
	_, err := lipgloss.Fprintln(w, d.Styled)
	return err
}
