package output

import (
	"fmt"
	"io"

	"rulesummary/internal/rules"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Reporter renders the outcome of one evaluation run.
//
// Report is driven by results that were already split into failed and
// passed-or-skipped lists. ReportEval is driven by an evaluation trace.
type Reporter interface {
	Report(w io.Writer, status *rules.Status, failed, passedOrSkipped []rules.StatusContext, longest int) error
	ReportEval(w io.Writer, status rules.Status, root *rules.EventRecord) error
}

// Summary is one run's results grouped by status, ready to render.
type Summary struct {
	Status  *rules.Status
	Skipped []rules.StatusContext
	Passed  []rules.StatusContext
	Failed  []rules.StatusContext
	// Longest is the widest rule name across all groups.
	Longest int
}

type summaryGroup struct {
	kind    SummaryType
	title   string
	entries []rules.StatusContext
}

// groups returns the groups in display order.
func (s Summary) groups() []summaryGroup {
	return []summaryGroup{
		{kind: SummarySkip, title: "SKIP rules", entries: s.Skipped},
		{kind: SummaryPass, title: "PASS rules", entries: s.Passed},
		{kind: SummaryFail, title: "FAILED rules", entries: s.Failed},
	}
}

// FlatSummary groups pre-split results. Only an exact SKIP status in
// passedOrSkipped is treated as skipped; everything else there, including an
// unset status, is treated as passed.
func FlatSummary(status *rules.Status, failed, passedOrSkipped []rules.StatusContext, longest int) Summary {
	s := Summary{Status: status, Failed: failed, Longest: longest}
	for _, r := range passedOrSkipped {
		if r.Status != nil && *r.Status == rules.StatusSkip {
			s.Skipped = append(s.Skipped, r)
		} else {
			s.Passed = append(s.Passed, r)
		}
	}
	return s
}

// TraceSummary groups the rule checks recorded directly under root. Deeper
// records are not considered. A SKIP is dropped when the same rule name also
// passed or failed; a name recorded as both PASS and FAIL is kept in both.
func TraceSummary(status rules.Status, root *rules.EventRecord) Summary {
	passed := orderedmap.New[string, rules.Status]()
	failed := orderedmap.New[string, rules.Status]()
	skipped := orderedmap.New[string, rules.Status]()
	longest := 0

	if root != nil {
		for _, child := range root.Children {
			if child == nil || child.RuleCheck == nil {
				continue
			}
			check := child.RuleCheck
			switch check.Status {
			case rules.StatusPass:
				passed.Set(check.Name, check.Status)
			case rules.StatusFail:
				failed.Set(check.Name, check.Status)
			case rules.StatusSkip:
				skipped.Set(check.Name, check.Status)
			default:
				continue
			}
			if w := rules.NameWidth(check.Name); w > longest {
				longest = w
			}
		}
	}

	var superseded []string
	for pair := skipped.Oldest(); pair != nil; pair = pair.Next() {
		_, inPass := passed.Get(pair.Key)
		_, inFail := failed.Get(pair.Key)
		if inPass || inFail {
			superseded = append(superseded, pair.Key)
		}
	}
	for _, name := range superseded {
		skipped.Delete(name)
	}

	return Summary{
		Status:  rules.StatusOf(status),
		Skipped: groupEntries(skipped),
		Passed:  groupEntries(passed),
		Failed:  groupEntries(failed),
		Longest: longest,
	}
}

func groupEntries(m *orderedmap.OrderedMap[string, rules.Status]) []rules.StatusContext {
	if m.Len() == 0 {
		return nil
	}
	entries := make([]rules.StatusContext, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, rules.StatusContext{Name: pair.Key, Status: rules.StatusOf(pair.Value)})
	}
	return entries
}

// SummaryTable writes a status summary as aligned text:
//
//	data.json Status = FAIL
//	SKIP rules
//	rules.guard/rule3    SKIP
//	PASS rules
//	rules.guard/rule2    PASS
//	FAILED rules
//	rules.guard/rule1    FAIL
//	---
type SummaryTable struct {
	rulesFileName string
	dataFileName  string
	summaryTypes  SummaryTypes
	painter       StatusPainter
}

func NewSummaryTable(rulesFileName, dataFileName string, summaryTypes SummaryTypes, painter StatusPainter) *SummaryTable {
	if painter == nil {
		painter = PlainPainter{}
	}
	return &SummaryTable{
		rulesFileName: rulesFileName,
		dataFileName:  dataFileName,
		summaryTypes:  summaryTypes,
		painter:       painter,
	}
}

func (t *SummaryTable) Report(w io.Writer, status *rules.Status, failed, passedOrSkipped []rules.StatusContext, longest int) error {
	return t.Write(w, FlatSummary(status, failed, passedOrSkipped, longest))
}

func (t *SummaryTable) ReportEval(w io.Writer, status rules.Status, root *rules.EventRecord) error {
	return t.Write(w, TraceSummary(status, root))
}

// Write renders s. The first failed write aborts the summary.
func (t *SummaryTable) Write(w io.Writer, s Summary) error {
	printf := func(format string, args ...any) error {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		return nil
	}

	if err := printf("%s Status = %s\n", t.dataFileName, t.painter.Status(s.Status)); err != nil {
		return err
	}

	width := s.Longest + 4
	for _, g := range s.groups() {
		if !t.summaryTypes.Contains(g.kind) || len(g.entries) == 0 {
			continue
		}
		if err := printf("%s\n", t.painter.Header(g.title)); err != nil {
			return err
		}
		for _, e := range g.entries {
			if err := printf("%s/%-*s%s\n", t.rulesFileName, width, e.Name, t.painter.Status(e.Status)); err != nil {
				return err
			}
		}
	}

	if err := printf("---\n"); err != nil {
		return err
	}
	return flushIfPossible(w)
}
