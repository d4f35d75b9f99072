package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/handler"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
)

// TechnologiesCmd returns the project technologies subcommand
func TechnologiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "technologies [project-id]",
		Short: "List the technologies a project uses",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(&technologiesHandler{}),
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

type technologiesHandler struct {
	quadrants, rings []string
}

func (h *technologiesHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseID(args.GetCmd(), args.Args)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}
	if _, err := c.App.ProjectService.GetProject(ctx, id); err != nil {
		return nil, err
	}
	if h.quadrants, h.rings, err = c.CategoryNames(ctx); err != nil {
		return nil, err
	}
	return c.App.ProjectService.TechnologiesForProject(ctx, id)
}

func (h *technologiesHandler) Human(w io.Writer, result any) error {
	technologies := result.([]*models.Technology)
	if len(technologies) == 0 {
		_, err := fmt.Fprintln(w, "No technologies linked")
		return err
	}
	for _, t := range technologies {
		if _, err := fmt.Fprintf(w, "  %s\n", styles.RenderTechnologyLine(t, h.quadrants, h.rings)); err != nil {
			return err
		}
	}
	return nil
}
