package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"rulesummary/internal/rules"

	"gopkg.in/yaml.v3"
)

// DefaultRulesLabel is used when a document does not name its rules file.
const DefaultRulesLabel = "rules"

// Document is one evaluation run read from disk.
type Document struct {
	// Path is the file the document was read from.
	Path string

	// DataFile labels the data the rules were evaluated against.
	DataFile string

	// RulesFile labels the rules that were evaluated.
	RulesFile string

	// Status is the overall outcome. It is always set when Trace is set.
	Status *rules.Status

	// Results holds flat rule outcomes. Ignored when Trace is set.
	Results []rules.StatusContext

	// Trace is the evaluation record tree, if the document carries one.
	Trace *rules.EventRecord
}

// IsTrace reports whether the document should be summarized from its trace.
func (d *Document) IsTrace() bool {
	return d.Trace != nil
}

type rawDocument struct {
	DataFile  string      `json:"data_file" yaml:"data_file"`
	RulesFile string      `json:"rules_file" yaml:"rules_file"`
	Status    string      `json:"status" yaml:"status"`
	Results   []rawResult `json:"results" yaml:"results"`
	Trace     *rawRecord  `json:"trace" yaml:"trace"`
}

type rawResult struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
}

type rawRecord struct {
	RuleCheck *rawResult   `json:"rule_check" yaml:"rule_check"`
	Children  []*rawRecord `json:"children" yaml:"children"`
}

// Decode parses a document. Files ending in .json are read as JSON; anything
// else is read as YAML, which also accepts JSON.
func Decode(path string, data []byte) (*Document, error) {
	var raw rawDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	doc, err := raw.document(path)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return doc, nil
}

func (r *rawDocument) document(path string) (*Document, error) {
	doc := &Document{
		Path:      path,
		DataFile:  strings.TrimSpace(r.DataFile),
		RulesFile: strings.TrimSpace(r.RulesFile),
	}
	if doc.DataFile == "" {
		doc.DataFile = filepath.Base(path)
	}
	if doc.RulesFile == "" {
		doc.RulesFile = DefaultRulesLabel
	}

	if strings.TrimSpace(r.Status) != "" {
		st, err := rules.ParseStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("status: %w", err)
		}
		doc.Status = &st
	}

	for i, res := range r.Results {
		name := strings.TrimSpace(res.Name)
		if name == "" {
			return nil, fmt.Errorf("results[%d]: rule name is required", i)
		}
		entry := rules.StatusContext{Name: name}
		if strings.TrimSpace(res.Status) != "" {
			st, err := rules.ParseStatus(res.Status)
			if err != nil {
				return nil, fmt.Errorf("results[%d]: %w", i, err)
			}
			entry.Status = &st
		}
		doc.Results = append(doc.Results, entry)
	}

	if r.Trace != nil {
		if doc.Status == nil {
			return nil, errors.New("trace requires an overall status")
		}
		root, err := r.Trace.record("trace")
		if err != nil {
			return nil, err
		}
		doc.Trace = root
	}
	return doc, nil
}

func (r *rawRecord) record(at string) (*rules.EventRecord, error) {
	rec := &rules.EventRecord{}
	if r.RuleCheck != nil {
		name := strings.TrimSpace(r.RuleCheck.Name)
		if name == "" {
			return nil, fmt.Errorf("%s.rule_check: rule name is required", at)
		}
		st, err := rules.ParseStatus(r.RuleCheck.Status)
		if err != nil {
			return nil, fmt.Errorf("%s.rule_check: %w", at, err)
		}
		rec.RuleCheck = &rules.NamedStatus{Name: name, Status: st}
	}
	for i, child := range r.Children {
		if child == nil {
			continue
		}
		c, err := child.record(fmt.Sprintf("%s.children[%d]", at, i))
		if err != nil {
			return nil, err
		}
		rec.Children = append(rec.Children, c)
	}
	return rec, nil
}
