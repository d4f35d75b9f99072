package technology

import (
	"strings"

	"github.com/spf13/cobra"
)

// SearchCmd returns the technology search subcommand. It is list with the
// query taken from the arguments.
func SearchCmd() *cobra.Command {
	cmd := ListCmd()
	cmd.Use = "search <text>"
	cmd.Short = "Search technologies by name, description or tag"
	cmd.Long = "Search technologies by name, description or tag, ignoring case."
	cmd.Args = cobra.MinimumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cmd.Flags().Set("query", strings.Join(args, " ")); err != nil {
			return err
		}
		return runList(cmd, nil)
	}
	return cmd
}
