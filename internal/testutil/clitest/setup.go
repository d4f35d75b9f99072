// Package clitest runs cobra subcommands against an in-memory app.
package clitest

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/techradar/internal/app"
	"github.com/thenoetrevino/techradar/internal/cli"
)

// SetupCLITest opens an app seeded with the built-in sample radar
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	a, err := app.Open(context.Background())
	if err != nil {
		t.Fatalf("Failed to open app: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Close()
	})
	return a
}

// Run executes cmd with args under a throwaway root carrying the global
// flags. The command reuses a instead of opening its own store.
func Run(t *testing.T, a *app.App, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := &cobra.Command{
		Use:           "techradar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cli.AddGlobalFlags(root)
	root.AddCommand(cmd)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{cmd.Name()}, args...))

	err = root.ExecuteContext(cli.WithApp(context.Background(), a))
	return out.String(), errOut.String(), err
}
