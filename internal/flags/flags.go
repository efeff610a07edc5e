package flags

// Package flags defines canonical CLI flag names shared across the CLI and engine.
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Output.Color, flags.FlagColor, "auto", "...")
//	arg := "--" + flags.FlagColor
const (
	// Input
	FlagRulesLabel = "rules-label"
	FlagDataLabel  = "data-label"

	// Output
	FlagShowSummary = "show-summary"
	FlagColor       = "color"
	FlagFormat      = "format"

	// Runtime
	FlagConcurrency = "concurrency"
	FlagVerbose     = "verbose"
)
