package technology

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
	technologyservice "github.com/thenoetrevino/techradar/internal/services/technology"
)

var errNothingToUpdate = errors.New("at least one field flag is required")

// UpdateCmd returns the technology update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [technology-id]",
		Short: "Change fields of a technology",
		Long: `Change fields of a technology. Only flags that are given are applied.

Pass an empty --website or --custom-properties to clear it, and an empty
--tags to remove every tag.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(&updateHandler{}),
	}

	cmd.Flags().Int("id", 0, "Technology ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("quadrant", "", "New quadrant name or position")
	cmd.Flags().String("ring", "", "New ring name or position")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("website", "", "New homepage URL")
	cmd.Flags().StringSlice("tags", nil, "Replacement tag list")
	cmd.Flags().String("custom-properties", "", "New free-form extra data")

	cli.AddOutputFlags(cmd)

	return cmd
}

type updateHandler struct{}

func (h *updateHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseID(args.GetCmd(), args.Args)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}

	quadrant, ring, err := resolveCategories(ctx, c, args.GetString("quadrant", ""), args.GetString("ring", ""))
	if err != nil {
		return nil, err
	}

	var patch models.TechnologyPatch
	patch.Name = args.StringPtr("name")
	patch.Description = args.StringPtr("description")
	if quadrant >= 0 {
		patch.Quadrant = &quadrant
	}
	if ring >= 0 {
		patch.Ring = &ring
	}
	if args.Has("website") {
		patch.Website = nullable(args.GetString("website", ""))
	}
	if args.Has("custom-properties") {
		patch.CustomProperties = nullable(args.GetString("custom-properties", ""))
	}
	if args.Has("tags") {
		tags := args.GetStringSlice("tags", nil)
		if tags == nil {
			tags = []string{}
		}
		patch.Tags = &tags
	}
	if patch.IsEmpty() {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: errNothingToUpdate}
	}

	return c.App.TechnologyService.UpdateTechnology(ctx, technologyservice.UpdateTechnologyRequest{
		ID:              id,
		TechnologyPatch: patch,
	})
}

func (h *updateHandler) Human(w io.Writer, result any) error {
	tech := result.(*models.Technology)
	_, err := fmt.Fprintf(w, "%s Technology '%s' updated successfully (ID: %d)\n",
		styles.SuccessStyle.Render("OK"), tech.Name, tech.ID)
	return err
}

// nullable maps an empty flag value to an explicit clear
func nullable(v string) models.Nullable[string] {
	if v == "" {
		return models.Null[string]()
	}
	return models.Some(v)
}
