package category

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
)

var errNothingToUpdate = errors.New("at least one of --name, --description or --color is required")

// ============================================================================
// list
// ============================================================================

func listCmd(k kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s in radar order", k.plural),
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(&listHandler{kind: k}),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type listHandler struct{ kind kind }

func (h *listHandler) Execute(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	return h.kind.list(ctx, c)
}

func (h *listHandler) Human(w io.Writer, result any) error {
	categories := result.([]*Category)
	if _, err := fmt.Fprintf(w, "Found %d %s:\n\n", len(categories), h.kind.plural); err != nil {
		return err
	}
	for _, cat := range categories {
		if _, err := fmt.Fprintf(w, "  %d. %s %s\n", cat.Position,
			colored(h.kind, cat), styles.SubtitleStyle.Render(fmt.Sprintf("(id %d, %d technologies)", cat.ID, cat.Technologies))); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// show
// ============================================================================

func showCmd(k kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("show [%s-id]", k.noun),
		Short: fmt.Sprintf("Show one %s", k.noun),
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(&showHandler{kind: k}),
	}
	cmd.Flags().Int("id", 0, "Record ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

type showHandler struct{ kind kind }

func (h *showHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseID(args.GetCmd(), args.Args)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}
	return h.kind.find(ctx, c, id)
}

func (h *showHandler) Human(w io.Writer, result any) error {
	cat := result.(*Category)
	content := colored(h.kind, cat) + "\n" +
		styles.Field("Position", fmt.Sprint(cat.Position)) + "\n" +
		styles.Field("Technologies", fmt.Sprint(cat.Technologies)) + "\n" +
		styles.SectionStyle.Render("Description") + "\n" +
		cat.Description
	_, err := fmt.Fprintln(w, styles.RenderCard(content))
	return err
}

// ============================================================================
// update
// ============================================================================

func updateCmd(k kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("update [%s-id]", k.noun),
		Short: fmt.Sprintf("Rename, describe or recolor a %s", k.noun),
		Long:  "Only flags that are given are applied. Pass an empty --color to clear it.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(&updateHandler{kind: k}, checkColor),
	}
	cmd.Flags().Int("id", 0, "Record ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("color", "", "New hex color like #3b82f6")
	cli.AddOutputFlags(cmd)
	return cmd
}

func checkColor(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseColor("color")
	return err
}

type updateHandler struct{ kind kind }

func (h *updateHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseID(args.GetCmd(), args.Args)
	if err != nil {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}

	p := patch{Name: args.StringPtr("name"), Description: args.StringPtr("description")}
	if args.Has("color") {
		p.Color = models.Null[string]()
		if color := args.GetString("color", ""); color != "" {
			p.Color = models.Some(color)
		}
	}
	if p.Name == nil && p.Description == nil && !p.Color.Set {
		return nil, &cli.ExitCodeError{Code: cli.ExitUsage, Err: errNothingToUpdate}
	}

	if err := h.kind.update(ctx, c, id, p); err != nil {
		return nil, err
	}
	return h.kind.find(ctx, c, id)
}

func (h *updateHandler) Human(w io.Writer, result any) error {
	cat := result.(*Category)
	_, err := fmt.Fprintf(w, "%s %s '%s' updated successfully (ID: %d)\n",
		styles.SuccessStyle.Render("OK"), h.kind.noun, cat.Name, cat.ID)
	return err
}

func colored(k kind, cat *Category) string {
	theme := styles.Scheme()
	fallback := theme.QuadrantColor(cat.Position)
	if k.noun == "ring" {
		fallback = theme.RingColor(cat.Position)
	}
	return styles.ColoredText(cat.Name, styles.CategoryColor(cat.Color, fallback))
}
