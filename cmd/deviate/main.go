// Command deviate validates D-Bus introspection XML and reports API changes
// between two versions of an interface description.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/godbusapi/deviate"
)

// Exit codes.
const (
	exitOK           = 0 // success, nothing incompatible found
	exitError        = 1 // user error, unreadable or invalid input
	exitIncompatible = 2 // comparison found changes failing the configured gate
)

// errIncompatible marks a completed comparison whose result fails the gate.
// The notices were already printed when it is returned.
var errIncompatible = errors.New("incompatible changes found")

type cli struct {
	verbose int
	noColor bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var c cli

	root := &cobra.Command{
		Use:           "deviate",
		Short:         "D-Bus introspection XML validator and API comparator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountVarP(&c.verbose, "verbose", "v", "enable debug logging (repeat for trace)")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colored output")

	root.AddCommand(c.newCompareCommand())
	root.AddCommand(c.newLintCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		if errors.Is(err, errIncompatible) {
			return exitIncompatible
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = deviate.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func (c *cli) parseOptions() []deviate.ParseOption {
	var opts []deviate.ParseOption
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, deviate.WithLogger(logger))
	}
	return opts
}
