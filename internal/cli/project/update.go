package project

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/handler"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
	projectservice "github.com/thenoetrevino/techradar/internal/services/project"
)

var errNothingToUpdate = errors.New("at least one field flag is required")

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [project-id]",
		Short: "Change fields of a project",
		Long:  "Only flags that are given are applied. Pass an empty URL flag to clear it.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(&updateHandler{}),
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("website", "", "New website URL")
	cmd.Flags().String("repository", "", "New repository URL")
	cmd.Flags().String("image", "", "New image URL")

	cli.AddOutputFlags(cmd)

	return cmd
}

type updateHandler struct{}

func (h *updateHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseID(args.GetCmd(), args.Args)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}

	patch := models.ProjectPatch{
		Name:        args.StringPtr("name"),
		Description: args.StringPtr("description"),
		Status:      args.StringPtr("status"),
		Website:     nullableFlag(args, "website"),
		Repository:  nullableFlag(args, "repository"),
		Image:       nullableFlag(args, "image"),
	}
	if onlyOutputFlags(args) {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: errNothingToUpdate}
	}

	return c.App.ProjectService.UpdateProject(ctx, projectservice.UpdateProjectRequest{
		ID:           id,
		ProjectPatch: patch,
	})
}

func (h *updateHandler) Human(w io.Writer, result any) error {
	p := result.(*models.Project)
	_, err := fmt.Fprintf(w, "%s Project '%s' updated successfully (ID: %d)\n",
		styles.SuccessStyle.Render("OK"), p.Name, p.ID)
	return err
}

func nullableFlag(args *handler.Arguments, name string) models.Nullable[string] {
	if !args.Has(name) {
		return models.Nullable[string]{}
	}
	if v := args.GetString(name, ""); v != "" {
		return models.Some(v)
	}
	return models.Null[string]()
}

func onlyOutputFlags(args *handler.Arguments) bool {
	for name := range args.Flags {
		switch name {
		case "id", "json", "quiet", "data", "export":
		default:
			return false
		}
	}
	return true
}
