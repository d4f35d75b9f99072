// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/techradar/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HumanRenderer is implemented by handlers with a custom human-readable view
type HumanRenderer interface {
	Human(w io.Writer, result any) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic and returns a cobra RunE
// compatible function. Handler errors are reported through the formatter
// and come back carrying their exit code.
func Command(h Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		formatter := cli.Formatter(cmd)

		if err := parseFlags(cmd); err != nil {
			return formatter.FailWithCode(cli.ExitUsage, err, "see --help for usage")
		}

		c, err := cli.FromCommand(cmd)
		if err != nil {
			return formatter.Fail(err, "")
		}
		defer func() {
			if err := c.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		result, err := h.Execute(ctx, c, arguments)
		if err != nil {
			return formatter.Fail(err, "")
		}

		if err := c.MaybeExport(cmd); err != nil {
			return formatter.Fail(err, "")
		}

		human := func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%+v\n", result)
			return err
		}
		if r, ok := h.(HumanRenderer); ok {
			human = func(w io.Writer) error { return r.Human(w, result) }
		}
		return formatter.Render(result, human)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(h Handler) func(*cobra.Command, []string) error {
	return Command(h, func(cmd *cobra.Command) error {
		return nil
	})
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "uint64":
			if v, err := cmd.Flags().GetUint64(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "float64":
			if v, err := cmd.Flags().GetFloat64(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringSlice":
			if v, err := cmd.Flags().GetStringSlice(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether the flag was set explicitly
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	val, ok := a.Flags[name].(string)
	if !ok {
		return defaultVal
	}
	return val
}

// StringPtr returns the flag value when it was set, nil otherwise
func (a *Arguments) StringPtr(name string) *string {
	val, ok := a.Flags[name].(string)
	if !ok {
		return nil
	}
	return &val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	val, ok := a.Flags[name].(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetFloat retrieves a float64 flag with default
func (a *Arguments) GetFloat(name string, defaultVal float64) float64 {
	val, ok := a.Flags[name].(float64)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	val, _ := a.Flags[name].(bool)
	return val
}

// GetStringSlice retrieves a string slice flag with default
func (a *Arguments) GetStringSlice(name string, defaultVal []string) []string {
	val, ok := a.Flags[name].([]string)
	if !ok {
		return defaultVal
	}
	return val
}
