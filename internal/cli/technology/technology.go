// Package technology implements the technology subcommands.
package technology

import (
	"github.com/spf13/cobra"
)

// TechnologyCmd returns the technology parent command
func TechnologyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "technology",
		Aliases: []string{"tech"},
		Short:   "Browse and edit radar technologies",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())

	return cmd
}
