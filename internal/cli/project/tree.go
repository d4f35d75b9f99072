package project

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/models"
)

// treeNodeJSON is one project with the technologies it uses
type treeNodeJSON struct {
	ID           int                  `json:"id"`
	Name         string               `json:"name"`
	Status       string               `json:"status"`
	Technologies []*models.Technology `json:"technologies"`
}

// TreeCmd returns the project tree subcommand
func TreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Display projects with the technologies they use",
		Long: `Display every project with the technologies linked to it, indented
under the project. Technologies show the ring they sit in.`,
		Args: cobra.NoArgs,
		RunE: runTree,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (project IDs with technology IDs indented)")

	return cmd
}

func runTree(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() { _ = c.Close() }()

	tree, err := buildTree(ctx, c)
	if err != nil {
		return formatter.Fail(err, "")
	}

	w := cmd.OutOrStdout()
	switch {
	case formatter.Quiet:
		return outputQuietTree(w, tree)
	case formatter.JSON:
		return formatter.Render(tree, nil)
	}

	if len(tree) == 0 {
		_, err := fmt.Fprintln(w, "No projects found")
		return err
	}
	quadrants, rings, err := c.CategoryNames(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	_, err = fmt.Fprint(w, renderTree(tree, quadrants, rings))
	return err
}

func buildTree(ctx context.Context, c *cli.CLI) ([]*treeNodeJSON, error) {
	projects, err := c.App.ProjectService.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	tree := make([]*treeNodeJSON, 0, len(projects))
	for _, p := range projects {
		technologies, err := c.App.ProjectService.TechnologiesForProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		tree = append(tree, &treeNodeJSON{ID: p.ID, Name: p.Name, Status: p.Status, Technologies: technologies})
	}
	return tree, nil
}

// outputQuietTree prints project ids with their technology ids indented
func outputQuietTree(w io.Writer, tree []*treeNodeJSON) error {
	for _, node := range tree {
		if _, err := fmt.Fprintf(w, "%d\n", node.ID); err != nil {
			return err
		}
		for _, t := range node.Technologies {
			if _, err := fmt.Fprintf(w, "  %d\n", t.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderTree(tree []*treeNodeJSON, quadrants, rings []string) string {
	var output strings.Builder
	for _, node := range tree {
		output.WriteString(styles.TitleStyle.Render(node.Name))
		output.WriteString(" " + styles.SubtitleStyle.Render("("+node.Status+")") + "\n")

		for i, t := range node.Technologies {
			connector := "├── "
			if i == len(node.Technologies)-1 {
				connector = "└── "
			}
			output.WriteString(connector + styles.RenderTechnologyLine(t, quadrants, rings) + "\n")
		}
	}
	return output.String()
}
