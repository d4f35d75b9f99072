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

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects with their details.",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().String("status", "", "Only projects with this status (e.g. active, planned, completed)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

type listHandler struct{}

func (h *listHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	projects, err := c.App.ProjectService.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	status := args.GetString("status", "")
	if status == "" {
		return projects, nil
	}
	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if strings.EqualFold(p.Status, status) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (h *listHandler) Human(w io.Writer, result any) error {
	projects := result.([]*models.Project)
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects found")
		return err
	}

	if _, err := fmt.Fprintf(w, "Found %d projects:\n\n", len(projects)); err != nil {
		return err
	}
	for _, p := range projects {
		line := fmt.Sprintf("  [%d] %s %s", p.ID, styles.TitleStyle.Render(p.Name), styles.SubtitleStyle.Render("("+p.Status+")"))
		if p.Description != "" {
			line += " - " + p.Description
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
