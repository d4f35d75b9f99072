// Package datasetcli implements the dataset subcommands: exporting the
// store as YAML and checking dataset files before they are loaded.
package datasetcli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/cli/handler"
	"github.com/thenoetrevino/techradar/internal/cli/styles"
	"github.com/thenoetrevino/techradar/internal/dataset"
)

// DatasetCmd returns the dataset parent command
func DatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Export and validate radar datasets",
		Long: `The store lives in memory and is seeded from a YAML dataset on every run.
Use export to save the current radar and validate to check a file first.`,
	}

	cmd.AddCommand(exportCmd())
	cmd.AddCommand(validateCmd())

	return cmd
}

// ============================================================================
// export
// ============================================================================

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the radar as a YAML dataset",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(&exportHandler{}),
	}
	cmd.Flags().StringP("output", "o", "", "File to write (default stdout)")
	cli.AddOutputFlags(cmd)
	return cmd
}

type exportHandler struct {
	path string
}

func (h *exportHandler) Execute(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	ds, err := dataset.FromStore(ctx, c.App.Repo())
	if err != nil {
		return nil, err
	}

	h.path = args.GetString("output", "")
	if h.path == "" {
		return ds, nil
	}

	f, err := os.Create(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", h.path, err)
	}
	if err := ds.Encode(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", h.path, err)
	}
	return ds, nil
}

func (h *exportHandler) Human(w io.Writer, result any) error {
	ds := result.(*dataset.Dataset)
	if h.path == "" {
		return ds.Encode(w)
	}
	_, err := fmt.Fprintf(w, "%s %d technologies, %d projects to %s\n",
		styles.SuccessStyle.Render("Exported"), len(ds.Technologies), len(ds.Projects), h.path)
	return err
}

// ============================================================================
// validate
// ============================================================================

// Report summarizes a dataset that passed validation
type Report struct {
	Path         string `json:"path"`
	Quadrants    int    `json:"quadrants"`
	Rings        int    `json:"rings"`
	Technologies int    `json:"technologies"`
	Projects     int    `json:"projects"`
	Links        int    `json:"links"`
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a dataset file without loading it",
		Long: `Parse a dataset file and report every record that cannot be placed on
the radar or resolved. Exits with code 4 when the file is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// runValidate needs no store, so it skips the handler plumbing
func runValidate(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	path := args[0]

	ds, err := dataset.Load(path)
	if err != nil {
		return formatter.FailWithCode(cli.ExitDataErr, err, "datasets are YAML with quadrants, rings, technologies, projects and links")
	}
	if err := ds.Validate(); err != nil {
		return formatter.FailWithCode(cli.ExitDataErr, err, "")
	}

	report := &Report{
		Path:         path,
		Quadrants:    len(ds.Quadrants),
		Rings:        len(ds.Rings),
		Technologies: len(ds.Technologies),
		Projects:     len(ds.Projects),
		Links:        len(ds.Links),
	}
	return formatter.Render(report, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s: %d quadrants, %d rings, %d technologies, %d projects, %d links\n",
			styles.SuccessStyle.Render("Valid"), report.Path,
			report.Quadrants, report.Rings, report.Technologies, report.Projects, report.Links)
		return err
	})
}
