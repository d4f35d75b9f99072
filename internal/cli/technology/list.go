package technology

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/query"
)

// ListCmd returns the technology list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List technologies",
		Long: `List technologies in store order.

The search matches name, description and tags without regard to case.
Quadrant and ring accept either a zero-based position or a name.
All filters must match.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringP("query", "q", "", "Case-insensitive text to search for")
	cmd.Flags().String("quadrant", "", "Only technologies in this quadrant (name or position)")
	cmd.Flags().String("ring", "", "Only technologies in this ring (name or position)")
	cmd.Flags().Int("page", 0, "Page to show, starting at 1 (0 shows everything)")
	cmd.Flags().Int("page-size", 0, "Technologies per page (defaults to list.page_size)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() { _ = c.Close() }()

	quadrants, rings, err := c.CategoryNames(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	filter := query.Filter{Query: cli.StringFlag(cmd, "query")}
	if ref := cli.StringFlag(cmd, "quadrant"); ref != "" {
		q, err := cli.ResolvePosition(ref, quadrants)
		if err != nil {
			return formatter.Fail(err, "use a quadrant name or a position from 0 to 3")
		}
		filter.Quadrant = &q
	}
	if ref := cli.StringFlag(cmd, "ring"); ref != "" {
		r, err := cli.ResolvePosition(ref, rings)
		if err != nil {
			return formatter.Fail(err, "use a ring name or a position from 0 to 3")
		}
		filter.Ring = &r
	}

	technologies, err := c.App.TechnologyService.Query(ctx, filter)
	if err != nil {
		return formatter.Fail(err, "")
	}
	total := len(technologies)

	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("page-size")
	if size <= 0 {
		size = c.App.Config().List.PageSize
	}
	pages := 1
	if page > 0 {
		page = query.ClampPage(page, total, size)
		pages = query.TotalPages(total, size)
		technologies = query.Paginate(technologies, page, size)
	}

	return formatter.Render(technologies, func(w io.Writer) error {
		return renderList(w, technologies, total, page, pages, quadrants, rings)
	})
}

func renderList(w io.Writer, technologies []*models.Technology, total, page, pages int, quadrants, rings []string) error {
	if total == 0 {
		_, err := fmt.Fprintln(w, "No technologies found")
		return err
	}

	header := fmt.Sprintf("Found %d technologies", total)
	if page > 0 {
		header += fmt.Sprintf(" (page %d of %d)", page, pages)
	}
	if _, err := fmt.Fprintf(w, "%s:\n\n", header); err != nil {
		return err
	}
	for _, t := range technologies {
		if _, err := fmt.Fprintf(w, "  %s\n", styles.RenderTechnologyLine(t, quadrants, rings)); err != nil {
			return err
		}
	}
	return nil
}
