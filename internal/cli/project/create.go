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

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long:  "Create a new project. Pass --export to keep the change.",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(&createHandler{}, handler.RequireFlags("name", "description")),
	}

	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("description", "", "Project description (required)")
	cmd.Flags().String("status", models.ProjectStatusActive, "Project status")
	cmd.Flags().String("website", "", "Project website URL")
	cmd.Flags().String("repository", "", "Source repository URL")
	cmd.Flags().String("image", "", "Image or logo URL")

	cli.AddOutputFlags(cmd)

	return cmd
}

type createHandler struct{}

func (h *createHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return c.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:        args.GetString("name", ""),
		Description: args.GetString("description", ""),
		Status:      args.GetString("status", models.ProjectStatusActive),
		Website:     args.StringPtr("website"),
		Repository:  args.StringPtr("repository"),
		Image:       args.StringPtr("image"),
	})
}

func (h *createHandler) Human(w io.Writer, result any) error {
	p := result.(*models.Project)
	_, err := fmt.Fprintf(w, "%s Project '%s' created successfully (ID: %d)\n",
		styles.SuccessStyle.Render("OK"), p.Name, p.ID)
	return err
}
