// Package serve runs the HTTP API over the in-memory radar.
package serve

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/api"
	"github.com/thenoetrevino/techradar/internal/cli"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the radar over REST and GraphQL",
		Long: `Serve the radar until interrupted.

REST lives under /api, GraphQL at /graphql and a health check at /health.
Changes made through the API are lost on exit unless --export is given.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (default server.addr from the config)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	formatter := cli.Formatter(cmd)

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	addr := cli.StringFlag(cmd, "addr")
	if addr == "" {
		addr = c.App.Config().Server.Addr
	}

	f, err := api.NewFiberApp(c.App)
	if err != nil {
		return formatter.Fail(err, "")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Serving the radar on %s (ctrl+c to stop)\n", addr); err != nil {
		return err
	}
	if err := api.Serve(ctx, f, addr); err != nil {
		return formatter.Fail(fmt.Errorf("server stopped: %w", err), "check that the address is free")
	}

	// the export runs after shutdown so it captures every API change
	if err := c.MaybeExport(cmd); err != nil {
		return formatter.Fail(err, "")
	}
	return nil
}
