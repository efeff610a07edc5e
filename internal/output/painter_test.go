package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"rulesummary/internal/rules"
)

func TestPlainPainter(t *testing.T) {
	p := PlainPainter{}
	if got := p.Status(rules.StatusOf(rules.StatusFail)); got != "FAIL" {
		t.Errorf("Status(FAIL) = %q", got)
	}
	if got := p.Status(nil); got != "unknown" {
		t.Errorf("Status(nil) = %q", got)
	}
	if got := p.Header("PASS rules"); got != "PASS rules" {
		t.Errorf("Header = %q", got)
	}
}

func TestColorPainter_Disabled(t *testing.T) {
	p := NewColorPainter(false)
	for _, s := range []rules.Status{rules.StatusPass, rules.StatusFail, rules.StatusSkip} {
		if got := p.Status(rules.StatusOf(s)); got != string(s) {
			t.Errorf("disabled painter Status(%s) = %q", s, got)
		}
	}
	if got := p.Status(nil); got != "unknown" {
		t.Errorf("disabled painter Status(nil) = %q", got)
	}
	if got := p.Header("SKIP rules"); got != "SKIP rules" {
		t.Errorf("disabled painter Header = %q", got)
	}
}

func TestColorPainter_Enabled(t *testing.T) {
	p := NewColorPainter(true)
	for _, s := range []rules.Status{rules.StatusPass, rules.StatusFail, rules.StatusSkip} {
		got := p.Status(rules.StatusOf(s))
		if !strings.Contains(got, "\x1b[") || !strings.Contains(got, string(s)) {
			t.Errorf("enabled painter Status(%s) = %q, want ANSI-wrapped text", s, got)
		}
	}
	if got := p.Header("FAILED rules"); !strings.HasPrefix(got, "\x1b[1m") {
		t.Errorf("enabled painter Header = %q, want bold", got)
	}
}

func TestColorPainter_InstancesAreIndependent(t *testing.T) {
	on := NewColorPainter(true)
	off := NewColorPainter(false)
	pass := rules.StatusOf(rules.StatusPass)
	if on.Status(pass) == off.Status(pass) {
		t.Fatal("expected colored and plain painters to render differently")
	}
	if got := off.Status(pass); got != "PASS" {
		t.Errorf("plain painter affected by colored painter: %q", got)
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if !ColorEnabled("always", &buf) {
		t.Error("always should enable color")
	}
	if ColorEnabled("never", os.Stdout) {
		t.Error("never should disable color")
	}
	if ColorEnabled("auto", &buf) {
		t.Error("auto should not color a non-terminal writer")
	}

	t.Setenv("NO_COLOR", "1")
	if ColorEnabled("auto", os.Stdout) {
		t.Error("auto should honor NO_COLOR")
	}
}

func TestSummaryTable_ColoredOutputKeepsAlignment(t *testing.T) {
	var buf bytes.Buffer
	table := NewSummaryTable("r", "d", AllSummaryTypes(), NewColorPainter(true))
	failed := []rules.StatusContext{rules.FailResult("abc")}
	if err := table.Report(&buf, rules.StatusOf(rules.StatusFail), failed, nil, 3); err != nil {
		t.Fatalf("Report error: %v", err)
	}
	out := lines(buf.String())
	if len(out) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(out), out)
	}
	if !strings.HasPrefix(out[2], "r/abc    \x1b[") {
		t.Errorf("expected padding before colored status, got %q", out[2])
	}
	if out[3] != "---" {
		t.Errorf("trailer must stay plain, got %q", out[3])
	}
}
