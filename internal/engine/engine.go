package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"rulesummary/internal/config"
	"rulesummary/internal/loader"
	"rulesummary/internal/output"
	"rulesummary/internal/rules"
)

func exitCodeForRun(fatal, unknown, failed bool) int {
	// Exit code contract:
	// 0 = every run passed or was skipped
	// 1 = at least one run failed
	// 2 = at least one run has no overall status (and none failed)
	// 3 = fatal error (bad input, unwritable output)
	if fatal {
		return 3
	}
	if failed {
		return 1
	}
	if unknown {
		return 2
	}
	return 0
}

type Engine struct {
	stdout io.Writer
	stderr io.Writer
}

func NewEngine(stdout, stderr io.Writer) *Engine {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Engine{stdout: stdout, stderr: stderr}
}

// Run loads every input document and writes one summary per document to
// stdout, in argument order. cfg must already be validated.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	summaryTypes := cfg.Output.SummaryTypes

	ld, err := loader.NewLoader(cfg.Runtime.Concurrency, loader.WithVerbose(cfg.Runtime.Verbose, e.stderr))
	if err != nil {
		fmt.Fprintf(e.stderr, "Error creating loader: %v\n", err)
		return exitCodeForRun(true, false, false)
	}

	if cfg.Runtime.Verbose {
		fmt.Fprintf(e.stderr, "Loading %d evaluation result file(s)...\n", len(cfg.Input.Files))
	}
	docs, err := ld.LoadAll(ctx, cfg.Input.Files)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error loading evaluation results: %v\n", err)
		return exitCodeForRun(true, false, false)
	}
	if cfg.Runtime.Verbose {
		fmt.Fprintf(e.stderr, "Showing summary groups: %s\n", summaryTypes)
	}

	painter := output.NewColorPainter(output.ColorEnabled(cfg.Output.Color, e.stdout))
	w := bufio.NewWriter(e.stdout)

	var unknown, failed bool
	for _, doc := range docs {
		reporter := newReporter(cfg, doc, summaryTypes, painter)
		if err := report(w, reporter, doc); err != nil {
			fmt.Fprintf(e.stderr, "Error writing summary for %s: %v\n", doc.Path, err)
			return exitCodeForRun(true, false, false)
		}
		switch {
		case doc.Status == nil:
			unknown = true
		case *doc.Status == rules.StatusFail:
			failed = true
		}
	}

	return exitCodeForRun(false, unknown, failed)
}

func newReporter(cfg *config.Config, doc *loader.Document, summaryTypes output.SummaryTypes, painter output.StatusPainter) output.Reporter {
	rulesLabel := doc.RulesFile
	if cfg.Input.RulesLabel != "" {
		rulesLabel = cfg.Input.RulesLabel
	}
	dataLabel := doc.DataFile
	if cfg.Input.DataLabel != "" {
		dataLabel = cfg.Input.DataLabel
	}

	if cfg.Output.Format == "json" {
		return output.NewJSONSummary(rulesLabel, dataLabel, summaryTypes)
	}
	return output.NewSummaryTable(rulesLabel, dataLabel, summaryTypes, painter)
}

func report(w io.Writer, reporter output.Reporter, doc *loader.Document) error {
	if doc.IsTrace() {
		return reporter.ReportEval(w, *doc.Status, doc.Trace)
	}
	failed, passedOrSkipped := rules.SplitResults(doc.Results)
	return reporter.Report(w, doc.Status, failed, passedOrSkipped, rules.LongestName(doc.Results))
}
