package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"rulesummary/internal/rules"

	"github.com/google/go-cmp/cmp"
)

func TestJSONSummary_Report(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONSummary("rules.guard", "data.json", NewSummaryTypes(SummaryPass, SummaryFail))
	failed := []rules.StatusContext{rules.FailResult("rule1")}
	rest := []rules.StatusContext{rules.PassResult("rule2"), rules.SkipResult("rule3")}

	if err := j.Report(&buf, rules.StatusOf(rules.StatusFail), failed, rest, 5); err != nil {
		t.Fatalf("Report error: %v", err)
	}

	want := `{"data_file":"data.json","rules_file":"rules.guard","status":"FAIL","pass":[{"name":"rule2","status":"PASS"}],"fail":[{"name":"rule1","status":"FAIL"}]}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSummary_ReportEval_Supersession(t *testing.T) {
	root := &rules.EventRecord{
		Children: []*rules.EventRecord{
			{RuleCheck: &rules.NamedStatus{Name: "ruleA", Status: rules.StatusSkip}},
			{RuleCheck: &rules.NamedStatus{Name: "ruleA", Status: rules.StatusPass}},
		},
	}

	var buf bytes.Buffer
	j := NewJSONSummary("r", "d", AllSummaryTypes())
	if err := j.ReportEval(&buf, rules.StatusPass, root); err != nil {
		t.Fatalf("ReportEval error: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if _, ok := got["skip"]; ok {
		t.Errorf("expected no skip group, got %s", got["skip"])
	}
	if string(got["pass"]) != `[{"name":"ruleA","status":"PASS"}]` {
		t.Errorf("unexpected pass group: %s", got["pass"])
	}
}

func TestJSONSummary_UnknownStatus(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONSummary("r", "d", NewSummaryTypes())
	if err := j.Report(&buf, nil, nil, []rules.StatusContext{{Name: "x"}}, 1); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	want := `{"data_file":"d","rules_file":"r","status":"unknown"}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestJSONSummary_WriteFailure(t *testing.T) {
	j := NewJSONSummary("r", "d", AllSummaryTypes())
	err := j.Report(&failingWriter{}, nil, nil, nil, 0)
	if !errors.Is(err, errBrokenPipe) {
		t.Fatalf("expected broken pipe error, got %v", err)
	}
}
