package technology

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/handler"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
	technologyservice "github.com/thenoetrevino/techradar/internal/services/technology"
)

// CreateCmd returns the technology create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a technology to the radar",
		Long: `Add a technology to the radar.

Quadrant and ring accept a zero-based position or a name, for example
--quadrant Tools --ring Adopt. Pass --export to keep the change.`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&createHandler{}, handler.RequireFlags("name", "quadrant", "ring", "description")),
	}

	cmd.Flags().String("name", "", "Technology name (required)")
	cmd.Flags().String("quadrant", "", "Quadrant name or position (required)")
	cmd.Flags().String("ring", "", "Ring name or position (required)")
	cmd.Flags().String("description", "", "What the technology is (required)")
	cmd.Flags().String("website", "", "Homepage URL")
	cmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	cmd.Flags().String("custom-properties", "", "Free-form extra data")

	cli.AddOutputFlags(cmd)

	return cmd
}

type createHandler struct{}

func (h *createHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	quadrant, ring, err := resolveCategories(ctx, c, args.GetString("quadrant", ""), args.GetString("ring", ""))
	if err != nil {
		return nil, err
	}

	return c.App.TechnologyService.CreateTechnology(ctx, technologyservice.CreateTechnologyRequest{
		Name:             args.GetString("name", ""),
		Quadrant:         quadrant,
		Ring:             ring,
		Description:      args.GetString("description", ""),
		Website:          args.StringPtr("website"),
		Tags:             args.GetStringSlice("tags", nil),
		CustomProperties: args.StringPtr("custom-properties"),
	})
}

func (h *createHandler) Human(w io.Writer, result any) error {
	tech := result.(*models.Technology)
	_, err := fmt.Fprintf(w, "%s Technology '%s' created successfully (ID: %d)\n",
		styles.SuccessStyle.Render("OK"), tech.Name, tech.ID)
	return err
}

// resolveCategories turns quadrant and ring references into positions.
// A blank reference resolves to -1 so callers can tell it apart.
func resolveCategories(ctx context.Context, c *cli.CLI, quadrantRef, ringRef string) (quadrant, ring int, err error) {
	quadrants, rings, err := c.CategoryNames(ctx)
	if err != nil {
		return 0, 0, err
	}

	quadrant, ring = -1, -1
	if quadrantRef != "" {
		if quadrant, err = cli.ResolvePosition(quadrantRef, quadrants); err != nil {
			return 0, 0, fmt.Errorf("quadrant: %w", err)
		}
	}
	if ringRef != "" {
		if ring, err = cli.ResolvePosition(ringRef, rings); err != nil {
			return 0, 0, fmt.Errorf("ring: %w", err)
		}
	}
	return quadrant, ring, nil
}
