// Package radarcli implements the radar subcommands: computed layouts and a
// static text rendering of the plot.
package radarcli

import (
	"github.com/spf13/cobra"
)

// RadarCmd returns the radar parent command
func RadarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "radar",
		Short: "Compute and draw radar layouts",
	}

	cmd.AddCommand(LayoutCmd())
	cmd.AddCommand(RenderCmd())

	return cmd
}
