package output

import (
	"encoding/json"
	"fmt"
	"io"

	"rulesummary/internal/rules"
)

// JSONSummary writes the same grouping as SummaryTable as one JSON object per
// run. Deselected and empty groups are omitted.
type JSONSummary struct {
	rulesFileName string
	dataFileName  string
	summaryTypes  SummaryTypes
}

type jsonEntry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type jsonDocument struct {
	DataFile  string      `json:"data_file"`
	RulesFile string      `json:"rules_file"`
	Status    string      `json:"status"`
	Skip      []jsonEntry `json:"skip,omitempty"`
	Pass      []jsonEntry `json:"pass,omitempty"`
	Fail      []jsonEntry `json:"fail,omitempty"`
}

func NewJSONSummary(rulesFileName, dataFileName string, summaryTypes SummaryTypes) *JSONSummary {
	return &JSONSummary{
		rulesFileName: rulesFileName,
		dataFileName:  dataFileName,
		summaryTypes:  summaryTypes,
	}
}

func (j *JSONSummary) Report(w io.Writer, status *rules.Status, failed, passedOrSkipped []rules.StatusContext, longest int) error {
	return j.Write(w, FlatSummary(status, failed, passedOrSkipped, longest))
}

func (j *JSONSummary) ReportEval(w io.Writer, status rules.Status, root *rules.EventRecord) error {
	return j.Write(w, TraceSummary(status, root))
}

func (j *JSONSummary) Write(w io.Writer, s Summary) error {
	doc := jsonDocument{
		DataFile:  j.dataFileName,
		RulesFile: j.rulesFileName,
		Status:    rules.StatusText(s.Status),
	}
	for _, g := range s.groups() {
		if !j.summaryTypes.Contains(g.kind) || len(g.entries) == 0 {
			continue
		}
		entries := make([]jsonEntry, 0, len(g.entries))
		for _, e := range g.entries {
			entries = append(entries, jsonEntry{Name: e.Name, Status: rules.StatusText(e.Status)})
		}
		switch g.kind {
		case SummarySkip:
			doc.Skip = entries
		case SummaryPass:
			doc.Pass = entries
		case SummaryFail:
			doc.Fail = entries
		}
	}

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return flushIfPossible(w)
}
