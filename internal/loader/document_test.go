package loader

import (
	"strings"
	"testing"

	"rulesummary/internal/rules"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    *Document
		wantErr string
	}{
		{
			name: "flat json",
			path: "./testdata/flat.json",
			want: &Document{
				Path:      "./testdata/flat.json",
				DataFile:  "data.json",
				RulesFile: "rules.guard",
				Status:    rules.StatusOf(rules.StatusFail),
				Results: []rules.StatusContext{
					rules.FailResult("rule1"),
					rules.PassResult("rule2"),
					rules.SkipResult("rule3"),
				},
			},
		},
		{
			name: "trace yaml",
			path: "./testdata/trace.yaml",
			want: &Document{
				Path:      "./testdata/trace.yaml",
				DataFile:  "data.yaml",
				RulesFile: "policies/s3.guard",
				Status:    rules.StatusOf(rules.StatusPass),
				Trace: &rules.EventRecord{
					Children: []*rules.EventRecord{
						{RuleCheck: &rules.NamedStatus{Name: "ruleA", Status: rules.StatusSkip}},
						{
							RuleCheck: &rules.NamedStatus{Name: "ruleA", Status: rules.StatusPass},
							Children: []*rules.EventRecord{
								{RuleCheck: &rules.NamedStatus{Name: "nested", Status: rules.StatusFail}},
							},
						},
						{},
					},
				},
			},
		},
		{
			name: "default labels",
			path: "./testdata/unlabeled.yml",
			want: &Document{
				Path:      "./testdata/unlabeled.yml",
				DataFile:  "unlabeled.yml",
				RulesFile: DefaultRulesLabel,
				Results:   []rules.StatusContext{{Name: "only_rule"}},
			},
		},
		{
			name:    "trace without status",
			path:    "./testdata/trace_without_status.yaml",
			wantErr: "trace requires an overall status",
		},
		{
			name:    "bad status",
			path:    "./testdata/bad_status.json",
			wantErr: `results[0]: unknown status "ERROR"`,
		},
		{
			name:    "missing file",
			path:    "./testdata/nonexistent.yaml",
			wantErr: "failed to read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFile(tt.path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
			}
			if got.IsTrace() != (tt.want.Trace != nil) {
				t.Errorf("IsTrace() = %v", got.IsTrace())
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		wantErr string
	}{
		{name: "malformed json", path: "x.json", data: "{", wantErr: "parsing x.json"},
		{name: "malformed yaml", path: "x.yaml", data: "results: [", wantErr: "parsing x.yaml"},
		{name: "empty rule name", path: "x.yaml", data: "results:\n  - status: PASS\n", wantErr: "rule name is required"},
		{name: "bad overall status", path: "x.yaml", data: "status: maybe\n", wantErr: "status: unknown status"},
		{
			name:    "rule check without status",
			path:    "x.yaml",
			data:    "status: PASS\ntrace:\n  children:\n    - rule_check: {name: a}\n",
			wantErr: "trace.children[0].rule_check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.path, []byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDecode_YAMLAcceptsJSONAndSkipped(t *testing.T) {
	doc, err := Decode("results.txt", []byte(`{"status": "skipped", "results": [{"name": "r", "status": "Skipped"}]}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if doc.Status == nil || *doc.Status != rules.StatusSkip {
		t.Fatalf("expected overall SKIP, got %v", rules.StatusText(doc.Status))
	}
	if len(doc.Results) != 1 || doc.Results[0].Status == nil || *doc.Results[0].Status != rules.StatusSkip {
		t.Fatalf("unexpected results: %+v", doc.Results)
	}
}
