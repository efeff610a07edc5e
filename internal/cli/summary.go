package cli

import (
	"context"
	"fmt"
	"os"

	"rulesummary/internal/config"
	"rulesummary/internal/engine"
	"rulesummary/internal/flags"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var summaryCmd = &cobra.Command{
	Use:   "summary [flags] FILE...",
	Short: "Print a status summary for evaluation result files",
	Long: `Print a status summary for one or more evaluation result files.

Each file describes one evaluation run, as JSON (.json) or YAML:

	data_file: data.json        # data-source label (default: file name)
	rules_file: rules.guard     # rules-source label (default: rules)
	status: FAIL                # overall status (required with trace)
	results:                    # flat rule outcomes
	  - {name: rule1, status: FAIL}
	  - {name: rule2, status: PASS}
	trace:                      # evaluation trace (used instead of results)
	  children:
	    - rule_check: {name: rule3, status: SKIP}

Only rule checks directly under the trace root are summarized. A rule that was
skipped and later passed or failed is reported only as passed or failed.

Groups are printed in a fixed order (SKIP, PASS, FAILED) and only when
selected by --show-summary and non-empty. Every summary ends with "---".

Exit codes:
	0 = every run passed or was skipped
	1 = at least one run failed
	2 = at least one run has no overall status
	3 = fatal error (bad flags, unreadable input, output failure)

Examples:
	rulesummary summary results.json
	rulesummary summary --show-summary pass,fail --color never run1.yaml run2.yaml
	rulesummary summary --format json results.json
`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		cfg.Input.Files = args
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(3)
		}

		eng := engine.NewEngine(cmd.OutOrStdout(), cmd.ErrOrStderr())
		os.Exit(eng.Run(context.Background(), cfg))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	// Input
	summaryCmd.Flags().StringVar(&cfg.Input.RulesLabel, flags.FlagRulesLabel, "", "Rules-source label printed before each rule name (default: the document's rules_file)")
	summaryCmd.Flags().StringVar(&cfg.Input.DataLabel, flags.FlagDataLabel, "", "Data-source label printed in the status line (default: the document's data_file; single file only)")

	// Output
	summaryCmd.Flags().StringSliceVar(&cfg.Output.ShowSummary, flags.FlagShowSummary, cfg.Output.ShowSummary, "Status groups to print: all|pass|fail|skip|none (repeatable; comma-separated accepted)")
	summaryCmd.Flags().StringVar(&cfg.Output.Color, flags.FlagColor, cfg.Output.Color, "Color statuses: auto|always|never (auto honors NO_COLOR)")
	summaryCmd.Flags().StringVar(&cfg.Output.Format, flags.FlagFormat, cfg.Output.Format, "Summary format: text|json")

	// Runtime
	summaryCmd.Flags().IntVar(&cfg.Runtime.Concurrency, flags.FlagConcurrency, cfg.Runtime.Concurrency, "Maximum number of files loaded concurrently")
}
