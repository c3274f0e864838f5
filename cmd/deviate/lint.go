package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/godbusapi/deviate"
)

func (c *cli) newLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE...",
		Short: "Check introspection documents for grammar violations",
		Long: `Lint parses each document in recovery mode, reporting every grammar
violation instead of stopping at the first. The exit status is 1 when any
document is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.parseOptions()

			invalid := 0
			for _, path := range args {
				var ledger deviate.Ledger
				_, err := deviate.Parse(deviate.File(path),
					append(opts, deviate.WithRecovery(&ledger))...)
				switch {
				case errors.Is(err, deviate.ErrInvalid):
					invalid++
					for _, d := range ledger.Entries() {
						fmt.Fprintln(os.Stderr, d.String())
					}
				case err != nil:
					return err
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d documents invalid", invalid, len(args))
			}
			return nil
		},
	}
}
