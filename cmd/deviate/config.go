package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/godbusapi/deviate/diff"
)

// fileConfig is the YAML configuration accepted by --config.
//
//	warnings: [forwards-compatibility, backwards-compatibility]
//	fail_on_forwards: true
type fileConfig struct {
	Warnings       []string `yaml:"warnings"`
	FailOnForwards bool     `yaml:"fail_on_forwards"`

	hasWarnings bool
}

func defaultConfig() fileConfig {
	var names []string
	for _, c := range diff.AllCategories() {
		names = append(names, string(c))
	}
	return fileConfig{Warnings: names}
}

func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.hasWarnings = cfg.Warnings != nil
	return cfg, nil
}

// merge overlays the settings present in other onto c.
func (c fileConfig) merge(other fileConfig) fileConfig {
	if other.hasWarnings {
		c.Warnings = other.Warnings
	}
	c.FailOnForwards = c.FailOnForwards || other.FailOnForwards
	return c
}

// categories validates the configured warning names and converts them.
func (c fileConfig) categories() ([]diff.Category, error) {
	known := diff.AllCategories()
	var out []diff.Category
	for _, name := range c.Warnings {
		cat := diff.Category(name)
		if !slices.Contains(known, cat) {
			return nil, fmt.Errorf("unknown warning category %q", name)
		}
		out = append(out, cat)
	}
	return out, nil
}
