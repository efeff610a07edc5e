package output

import (
	"fmt"
	"strings"
)

// SummaryType is one of the status groups a summary can show.
type SummaryType string

const (
	SummaryPass SummaryType = "pass"
	SummaryFail SummaryType = "fail"
	SummarySkip SummaryType = "skip"
)

// SummaryTypes is the set of groups a summary shows. The zero value is the
// empty set, which suppresses every group.
type SummaryTypes struct {
	allowed map[SummaryType]bool
}

func NewSummaryTypes(types ...SummaryType) SummaryTypes {
	allowed := make(map[SummaryType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	return SummaryTypes{allowed: allowed}
}

func AllSummaryTypes() SummaryTypes {
	return NewSummaryTypes(SummaryPass, SummaryFail, SummarySkip)
}

func (s SummaryTypes) Contains(t SummaryType) bool {
	return s.allowed[t]
}

func (s SummaryTypes) IsEmpty() bool {
	return len(s.allowed) == 0
}

func (s SummaryTypes) String() string {
	var parts []string
	for _, t := range []SummaryType{SummaryPass, SummaryFail, SummarySkip} {
		if s.allowed[t] {
			parts = append(parts, string(t))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseSummaryTypes builds a set from --show-summary values.
// Accepted values (case-insensitive, comma lists allowed): all, pass, fail, skip, none.
// "none" cannot be combined with other values.
func ParseSummaryTypes(values []string) (SummaryTypes, error) {
	var types []SummaryType
	none := false
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			switch part {
			case "":
				continue
			case "all":
				types = append(types, SummaryPass, SummaryFail, SummarySkip)
			case "pass":
				types = append(types, SummaryPass)
			case "fail":
				types = append(types, SummaryFail)
			case "skip":
				types = append(types, SummarySkip)
			case "none":
				none = true
			default:
				return SummaryTypes{}, fmt.Errorf("unsupported summary type: %s (must be one of: all, pass, fail, skip, none)", part)
			}
		}
	}
	if none && len(types) > 0 {
		return SummaryTypes{}, fmt.Errorf("summary type none cannot be combined with other values")
	}
	return NewSummaryTypes(types...), nil
}
