package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/godbusapi/deviate"
	"github.com/godbusapi/deviate/diff"
)

func (c *cli) newCompareCommand() *cobra.Command {
	var (
		warnings       []string
		failOnForwards bool
		configFile     string
	)

	cmd := &cobra.Command{
		Use:   "compare OLD NEW",
		Short: "Compare two introspection documents for API changes",
		Long: `Compare parses two introspection documents and reports every API
difference, classified by compatibility impact. Informational notices go to
stdout; forwards- and backwards-incompatible ones go to stderr.

The exit status is 2 when backwards-incompatible changes were found (or
forwards-incompatible ones with --fail-on-forwards), 1 on invalid input,
and 0 otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configFile != "" {
				fileCfg, err := loadConfig(configFile)
				if err != nil {
					return err
				}
				cfg = cfg.merge(fileCfg)
			}
			if cmd.Flags().Changed("warnings") {
				cfg.Warnings = warnings
			}
			if cmd.Flags().Changed("fail-on-forwards") {
				cfg.FailOnForwards = failOnForwards
			}
			categories, err := cfg.categories()
			if err != nil {
				return err
			}

			return c.runCompare(args[0], args[1], categories, cfg.FailOnForwards)
		},
	}

	cmd.Flags().StringSliceVar(&warnings, "warnings", nil,
		"warning categories to report (info, forwards-compatibility, backwards-compatibility)")
	cmd.Flags().BoolVar(&failOnForwards, "fail-on-forwards", false,
		"treat forwards-incompatible changes as fatal")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML configuration file")
	return cmd
}

func (c *cli) runCompare(oldPath, newPath string, categories []diff.Category, failOnForwards bool) error {
	opts := c.parseOptions()

	oldNode, err := deviate.Parse(deviate.File(oldPath), opts...)
	if err != nil {
		return err
	}
	newNode, err := deviate.Parse(deviate.File(newPath), opts...)
	if err != nil {
		return err
	}

	report := deviate.Compare(oldNode, newNode)
	c.printNotices(report.Notices(categories...))

	if report.HasBackwardsIncompatibilities() {
		return errIncompatible
	}
	if failOnForwards && report.Has(diff.SeverityForwardsIncompatible) {
		return errIncompatible
	}
	return nil
}

// printNotices writes one "LEVEL: message" line per notice. Informational
// notices go to stdout, incompatibilities to stderr.
func (c *cli) printNotices(notices []diff.Notice) {
	if c.noColor {
		color.NoColor = true
	}
	labels := map[diff.Severity]*color.Color{
		diff.SeverityInfo:                  color.New(color.FgCyan),
		diff.SeverityForwardsIncompatible:  color.New(color.FgYellow),
		diff.SeverityBackwardsIncompatible: color.New(color.FgRed, color.Bold),
	}
	for _, n := range notices {
		out := os.Stderr
		if n.Severity == diff.SeverityInfo {
			out = os.Stdout
		}
		label := n.Severity.Label()
		if col, ok := labels[n.Severity]; ok {
			label = col.Sprint(label)
		}
		fmt.Fprintf(out, "%s: %s\n", label, n.Message)
	}
}
