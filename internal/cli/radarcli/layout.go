package radarcli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/handler"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/query"
	"github.com/thenoetrevino/techradar/internal/radar"
)

// Layout is a computed radar. Seed reproduces it on a later run.
type Layout struct {
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Seed       uint64            `json:"seed"`
	Geometry   radar.Geometry    `json:"geometry"`
	Placements []radar.Placement `json:"placements"`
}

// LayoutCmd returns the radar layout subcommand
func LayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print where every technology sits on the radar",
		Long: `Print the polar and cartesian position of every technology.

Positions are jittered inside their quadrant and ring. The seed comes from
--seed, then radar.seed in the config, then the clock, and is printed so a
layout can be reproduced.`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&layoutHandler{}),
	}

	addLayoutFlags(cmd, 800, 800)
	cli.AddOutputFlags(cmd)

	return cmd
}

func addLayoutFlags(cmd *cobra.Command, width, height float64) {
	cmd.Flags().Float64("width", width, "Container width")
	cmd.Flags().Float64("height", height, "Container height")
	cmd.Flags().Uint64("seed", 0, "Jitter seed (0 picks one)")
	cmd.Flags().StringP("query", "q", "", "Only technologies matching this text")
	cmd.Flags().String("quadrant", "", "Only this quadrant (name or position)")
	cmd.Flags().String("ring", "", "Only this ring (name or position)")
}

type layoutHandler struct {
	quadrants, rings []string
}

func (h *layoutHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	var err error
	h.quadrants, h.rings, err = c.CategoryNames(ctx)
	if err != nil {
		return nil, err
	}
	return compute(ctx, c, args, h.quadrants, h.rings)
}

// compute places the filtered technologies in a width x height container
func compute(ctx context.Context, c *cli.CLI, args *handler.Arguments, quadrants, rings []string) (*Layout, error) {
	cmd := args.GetCmd()
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")
	if width <= 0 || height <= 0 {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: fmt.Errorf("width and height must be positive")}
	}

	cfg := c.App.Config().Radar
	seed := seedFor(args, cfg.Seed)
	technologies, err := filtered(ctx, c, args, quadrants, rings)
	if err != nil {
		return nil, err
	}
	geometry, placements, err := radar.Compute(technologies, width, height, cfg.Margin, seed)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitDataErr, Err: err}
	}

	return &Layout{
		Width:      width,
		Height:     height,
		Seed:       seed,
		Geometry:   geometry,
		Placements: placements,
	}, nil
}

func (h *layoutHandler) Human(w io.Writer, result any) error {
	l := result.(*Layout)
	if _, err := fmt.Fprintf(w, "%s radius %.1f, seed %d\n\n",
		styles.TitleStyle.Render(fmt.Sprintf("Radar %gx%g", l.Width, l.Height)), l.Geometry.Radius, l.Seed); err != nil {
		return err
	}
	for _, p := range l.Placements {
		pt := p.Point()
		_, err := fmt.Fprintf(w, "  [%d] %-28s %-11s %-7s %6.1f° r=%6.1f (%7.1f, %7.1f)\n",
			p.TechnologyID, p.Name,
			cli.NameAt(h.quadrants, p.Quadrant), cli.NameAt(h.rings, p.Ring),
			p.Angle*180/math.Pi, p.Radius, pt.X, pt.Y)
		if err != nil {
			return err
		}
	}
	return nil
}

// seedFor picks --seed, then the configured seed, then the clock
func seedFor(args *handler.Arguments, configured *uint64) uint64 {
	if s, _ := args.GetCmd().Flags().GetUint64("seed"); s != 0 {
		return s
	}
	if configured != nil {
		return *configured
	}
	return radar.ClockSeed()
}

// filtered lists the technologies passing --query, --quadrant and --ring
func filtered(ctx context.Context, c *cli.CLI, args *handler.Arguments, quadrants, rings []string) ([]*models.Technology, error) {
	filter := query.Filter{Query: args.GetString("query", "")}
	if ref := args.GetString("quadrant", ""); ref != "" {
		q, err := cli.ResolvePosition(ref, quadrants)
		if err != nil {
			return nil, err
		}
		filter.Quadrant = &q
	}
	if ref := args.GetString("ring", ""); ref != "" {
		r, err := cli.ResolvePosition(ref, rings)
		if err != nil {
			return nil, err
		}
		filter.Ring = &r
	}
	return c.App.TechnologyService.Query(ctx, filter)
}
