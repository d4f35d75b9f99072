// Package project implements the project subcommands and the
// technology/project links.
package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and the technologies they use",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(TechnologiesCmd())
	cmd.AddCommand(LinkCmd())
	cmd.AddCommand(TreeCmd())

	return cmd
}
