package cli

import (
	"fmt"
	"os"

	"rulesummary/internal/flags"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rulesummary",
	Short: "Summarize policy rule evaluation results by status",
	Long: `rulesummary renders finished rule evaluation results as a status report.

It does not evaluate rules: it reads evaluation result documents produced by
an evaluator and prints which rules passed, failed, or were skipped.

Examples:
	# Show available commands and global flags
	rulesummary --help

	# Summarize one evaluation run, showing every group
	rulesummary summary --show-summary all results.json

	# Print build info
	rulesummary version

Output:
	Summaries are written to stdout. Progress (--verbose) and errors go to stderr.`,
	// Errors are printed once by Execute, which owns the exit code.
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose logging (prints loading progress to stderr)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

// Execute runs the root command. Command-line errors (unknown flags, bad flag
// values) are fatal and exit 3, never 1, which is reserved for failed runs.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}
}
