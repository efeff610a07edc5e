package rules

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// StatusUnknown is the display text for a status that was never computed.
const StatusUnknown = "unknown"

// ParseStatus accepts PASS, FAIL, SKIP (and SKIPPED) in any case.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PASS":
		return StatusPass, nil
	case "FAIL":
		return StatusFail, nil
	case "SKIP", "SKIPPED":
		return StatusSkip, nil
	}
	return "", fmt.Errorf("unknown status %q (must be one of: PASS, FAIL, SKIP)", raw)
}

// StatusOf returns a pointer to a copy of s, for optional status fields.
func StatusOf(s Status) *Status {
	return &s
}

// StatusText renders an optional status, "unknown" when unset.
func StatusText(s *Status) string {
	if s == nil {
		return StatusUnknown
	}
	return string(*s)
}

// StatusContext is the outcome of one rule check. A nil Status means the rule
// was not evaluated.
type StatusContext struct {
	Name   string  `json:"name"`
	Status *Status `json:"status,omitempty"`
}
