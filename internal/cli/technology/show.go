package technology

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
)

// Detail is a technology together with the projects using it
type Detail struct {
	*models.Technology
	QuadrantName string            `json:"quadrant_name"`
	RingName     string            `json:"ring_name"`
	Projects     []*models.Project `json:"projects"`
}

// ShowCmd returns the technology show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [technology-id]",
		Short: "Show a technology and the projects using it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Technology ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	id, err := cli.ParseID(cmd, args)
	if err != nil {
		return formatter.FailWithCode(cli.ExitUsage, err,
			"Usage: techradar technology show <technology-id>")
	}

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() { _ = c.Close() }()

	tech, err := c.App.TechnologyService.GetTechnology(ctx, id)
	if err != nil {
		return formatter.Fail(err, "run 'techradar technology list' to see valid ids")
	}
	projects, err := c.App.ProjectService.ProjectsForTechnology(ctx, id)
	if err != nil {
		return formatter.Fail(err, "")
	}
	quadrants, rings, err := c.CategoryNames(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	detail := &Detail{
		Technology:   tech,
		QuadrantName: cli.NameAt(quadrants, tech.Quadrant),
		RingName:     cli.NameAt(rings, tech.Ring),
		Projects:     projects,
	}
	return formatter.Render(detail, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, renderDetail(detail))
		return err
	})
}

func renderDetail(d *Detail) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(d.Name))
	b.WriteString(" " + styles.RingChip(d.Ring, d.RingName) + "\n")
	b.WriteString(styles.Field("Quadrant", styles.QuadrantText(d.Quadrant, d.QuadrantName)) + "\n")
	if d.Website != nil {
		b.WriteString(styles.Field("Website", *d.Website) + "\n")
	}
	if len(d.Tags) > 0 {
		b.WriteString(styles.Field("Tags", strings.Join(d.Tags, ", ")) + "\n")
	}

	b.WriteString(styles.SectionStyle.Render("Description") + "\n")
	b.WriteString(d.Description + "\n")

	b.WriteString(styles.SectionStyle.Render("Projects") + "\n")
	if len(d.Projects) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("Not used by any project"))
	}
	for i, p := range d.Projects {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s (%s)", p.Name, p.Status)
	}

	return styles.RenderCard(b.String())
}
