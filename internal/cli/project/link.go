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
	projectservice "github.com/thenoetrevino/techradar/internal/services/project"
)

// LinkCmd returns the project link subcommand
func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Record that a project uses a technology",
		Long: `Record that a project uses a technology.

Neither id is checked for existence and the same pair may be linked
more than once; listings show each technology or project once.`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&linkHandler{}, requireIDs),
	}

	cmd.Flags().Int("technology", 0, "Technology ID (required)")
	cmd.Flags().Int("project", 0, "Project ID (required)")
	cmd.Flags().String("notes", "", "How the project uses the technology")

	cli.AddOutputFlags(cmd)

	return cmd
}

func requireIDs(cmd *cobra.Command) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.ParseInt("technology"); err != nil {
		return err
	}
	_, err := p.ParseInt("project")
	return err
}

type linkHandler struct{}

func (h *linkHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return c.App.ProjectService.Link(ctx, projectservice.LinkRequest{
		TechnologyID: args.GetInt("technology", 0),
		ProjectID:    args.GetInt("project", 0),
		Notes:        args.StringPtr("notes"),
	})
}

func (h *linkHandler) Human(w io.Writer, result any) error {
	link := result.(*models.TechnologyProject)
	_, err := fmt.Fprintf(w, "%s Linked technology %d to project %d (link ID: %d)\n",
		styles.SuccessStyle.Render("OK"), link.TechnologyID, link.ProjectID, link.ID)
	return err
}
