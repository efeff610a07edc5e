package config

import (
	"errors"
	"fmt"
	"strings"

	"rulesummary/internal/output"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields, keep the CLI
	// flags in internal/cli/summary.go in sync.
	Input   Input
	Output  Output
	Runtime Runtime
}

type Input struct {
	// Files are the evaluation documents to summarize, in report order.
	Files []string

	// RulesLabel overrides the rules-source label of every document (see --rules-label).
	RulesLabel string

	// DataLabel overrides the data-source label of every document (see --data-label).
	// Only meaningful with a single input file.
	DataLabel string
}

type Output struct {
	// ShowSummary selects which status groups are printed (see --show-summary).
	// Allowed values: all, pass, fail, skip, none. Comma-separated accepted.
	ShowSummary []string

	// SummaryTypes is ShowSummary parsed by Validate.
	SummaryTypes output.SummaryTypes

	// Color controls ANSI coloring of statuses (see --color).
	// Allowed values: auto, always, never.
	Color string

	// Format selects the summary format (see --format).
	// Allowed values: text, json.
	Format string
}

type Runtime struct {
	// Concurrency bounds how many documents are loaded at once (see --concurrency).
	// Must be >= 1.
	Concurrency int

	// Verbose prints loading progress to stderr.
	Verbose bool
}

func New() *Config {
	return &Config{
		Output: Output{
			ShowSummary: []string{"fail"},
			Color:       "auto",
			Format:      "text",
		},
		Runtime: Runtime{
			Concurrency: 4,
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Output.ShowSummary = splitCommaList(c.Output.ShowSummary)
	c.Input.RulesLabel = strings.TrimSpace(c.Input.RulesLabel)
	c.Input.DataLabel = strings.TrimSpace(c.Input.DataLabel)

	// Input validation
	if len(c.Input.Files) == 0 {
		return errors.New("at least one evaluation result file must be provided")
	}
	for _, f := range c.Input.Files {
		if strings.TrimSpace(f) == "" {
			return errors.New("evaluation result file path must not be empty")
		}
	}
	if c.Input.DataLabel != "" && len(c.Input.Files) > 1 {
		return errors.New("--data-label can only be used with a single input file")
	}

	// Output validation
	if len(c.Output.ShowSummary) == 0 {
		return errors.New("--show-summary must be one of: all, pass, fail, skip, none")
	}
	for i, v := range c.Output.ShowSummary {
		c.Output.ShowSummary[i] = normalizeEnumValue(v)
	}
	summaryTypes, err := output.ParseSummaryTypes(c.Output.ShowSummary)
	if err != nil {
		return fmt.Errorf("invalid --show-summary: %w", err)
	}
	c.Output.SummaryTypes = summaryTypes

	c.Output.Color = normalizeEnumValue(c.Output.Color)
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Output.Color != "auto" && c.Output.Color != "always" && c.Output.Color != "never" {
		return fmt.Errorf("unsupported --color: %s (must be one of: auto, always, never)", c.Output.Color)
	}

	c.Output.Format = normalizeEnumValue(c.Output.Format)
	if c.Output.Format == "" {
		return errors.New("--format must be one of: text, json")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("unsupported --format: %s (must be one of: text, json)", c.Output.Format)
	}

	// Runtime validation
	if c.Runtime.Concurrency <= 0 {
		return errors.New("--concurrency must be >= 1")
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
