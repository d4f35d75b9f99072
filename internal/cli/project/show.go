package project

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/handler"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
)

// Detail is a project together with the technologies it uses
type Detail struct {
	*models.Project
	Technologies []*models.Technology `json:"technologies"`

	quadrants, rings []string
}

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show a project and the technologies it uses",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(&showHandler{}),
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

type showHandler struct{}

func (h *showHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseID(args.GetCmd(), args.Args)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}

	project, err := c.App.ProjectService.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	technologies, err := c.App.ProjectService.TechnologiesForProject(ctx, id)
	if err != nil {
		return nil, err
	}
	quadrants, rings, err := c.CategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	return &Detail{Project: project, Technologies: technologies, quadrants: quadrants, rings: rings}, nil
}

func (h *showHandler) Human(w io.Writer, result any) error {
	d := result.(*Detail)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(d.Name) + "\n")
	b.WriteString(styles.Field("Status", d.Status) + "\n")
	if d.Website != nil {
		b.WriteString(styles.Field("Website", *d.Website) + "\n")
	}
	if d.Repository != nil {
		b.WriteString(styles.Field("Repository", *d.Repository) + "\n")
	}
	b.WriteString(styles.SectionStyle.Render("Description") + "\n")
	b.WriteString(d.Description + "\n")
	b.WriteString(styles.SectionStyle.Render("Technologies") + "\n")
	if len(d.Technologies) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No technologies linked"))
	}
	for i, t := range d.Technologies {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.RenderTechnologyLine(t, d.quadrants, d.rings))
	}

	_, err := fmt.Fprintln(w, styles.RenderCard(b.String()))
	return err
}
