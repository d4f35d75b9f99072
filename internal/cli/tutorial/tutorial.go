// Package tutorial prints the workflow guide for people and agents new to
// the radar CLI.
package tutorial

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print the techradar workflow guide",
		Long: `Print the techradar workflow guide as markdown.

The guide is styled on a terminal and printed raw when piped, so agents
can load it as context.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw || !isTerminal(cmd) {
				_, err := fmt.Fprint(cmd.OutOrStdout(), tutorialContent)
				return err
			}
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			out, err := renderer.Render(tutorialContent)
			if err != nil {
				return fmt.Errorf("failed to render tutorial: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without styling")
	return cmd
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
