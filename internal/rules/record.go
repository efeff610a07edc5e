package rules

// NamedStatus is a rule check recorded in an evaluation trace.
type NamedStatus struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// EventRecord is one node of an evaluation trace. RuleCheck is nil for nodes
// that do not record a rule outcome (blocks, clauses, queries).
type EventRecord struct {
	RuleCheck *NamedStatus   `json:"rule_check,omitempty"`
	Children  []*EventRecord `json:"children,omitempty"`
}
