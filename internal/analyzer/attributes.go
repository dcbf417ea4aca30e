// Package analyzer classifies legal policy text against a fixed taxonomy of
// consumer-relevant attributes and turns the verdicts into a deterministic
// 0-100 trust score. The package is pure: no I/O, no shared mutable state,
// safe for concurrent use.
package analyzer

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity is the three-valued verdict for an attribute.
type Severity string

const (
	SeverityGood    Severity = "good"
	SeverityNeutral Severity = "neutral"
	SeverityBad     Severity = "bad"
)

// Attribute is one policy dimension being evaluated: its identity, score
// weight, ordered pattern lists, and the human-readable strings used when
// reporting verdicts.
type Attribute struct {
	ID     string
	Label  string
	Weight int

	// NegationDominant marks attributes whose favorable patterns are
	// explicit negations of the unfavorable ones (e.g. "do not sell"). When
	// both a favorable and an unfavorable pattern match, the favorable
	// verdict wins for these attributes; everywhere else the unfavorable
	// match dominates.
	NegationDominant bool

	// Pattern lists are ordered most-specific-first; the first match wins.
	Good    []*regexp.Regexp
	Bad     []*regexp.Regexp
	Context []*regexp.Regexp

	GoodValue string
	BadValue  string

	// Fallback is the attribute-specific explanation used when neither a
	// direct nor a contextual pattern matches.
	Fallback string
}

// Library is the immutable set of attribute definitions, in display order.
// Build one at startup and share it across all classification calls.
type Library struct {
	attrs []Attribute
	byID  map[string]*Attribute
}

// NewLibrary validates the attribute set and builds a library. Weights must
// sum to exactly 100 and ids must be unique and non-empty.
func NewLibrary(attrs []Attribute) (*Library, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("attribute library is empty")
	}

	byID := make(map[string]*Attribute, len(attrs))
	totalWeight := 0

	for i := range attrs {
		a := &attrs[i]
		if a.ID == "" {
			return nil, fmt.Errorf("attribute %d has empty id", i)
		}
		if _, dup := byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate attribute id %q", a.ID)
		}
		if a.Weight < 0 {
			return nil, fmt.Errorf("attribute %q has negative weight %d", a.ID, a.Weight)
		}
		byID[a.ID] = a
		totalWeight += a.Weight
	}

	if totalWeight != 100 {
		return nil, fmt.Errorf("attribute weights sum to %d, want 100", totalWeight)
	}

	return &Library{attrs: attrs, byID: byID}, nil
}

// Attributes returns the attribute definitions in display order.
func (l *Library) Attributes() []Attribute {
	return l.attrs
}

// Lookup returns the attribute definition for an id.
func (l *Library) Lookup(id string) (*Attribute, bool) {
	a, ok := l.byID[id]
	return a, ok
}

// Len returns the number of attributes in the library.
func (l *Library) Len() int {
	return len(l.attrs)
}

// attributeSpec is the serializable form of an Attribute: patterns as plain
// strings so the whole table can live in a YAML file.
type attributeSpec struct {
	ID               string   `yaml:"id"`
	Label            string   `yaml:"label"`
	Weight           int      `yaml:"weight"`
	NegationDominant bool     `yaml:"negation_dominant"`
	Good             []string `yaml:"good"`
	Bad              []string `yaml:"bad"`
	Context          []string `yaml:"context"`
	GoodValue        string   `yaml:"good_value"`
	BadValue         string   `yaml:"bad_value"`
	Fallback         string   `yaml:"fallback"`
}

type attributeFile struct {
	Attributes []attributeSpec `yaml:"attributes"`
}

// LoadLibrary reads an attribute table from a YAML file. The file replaces
// the built-in table wholesale and must pass the same validation.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attribute file: %w", err)
	}

	var file attributeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse attribute file: %w", err)
	}

	lib, err := buildLibrary(file.Attributes)
	if err != nil {
		return nil, fmt.Errorf("attribute file %s: %w", path, err)
	}
	return lib, nil
}

// buildLibrary compiles specs into a validated library.
func buildLibrary(specs []attributeSpec) (*Library, error) {
	attrs := make([]Attribute, 0, len(specs))

	for _, s := range specs {
		good, err := compilePatterns(s.Good)
		if err != nil {
			return nil, fmt.Errorf("attribute %q good patterns: %w", s.ID, err)
		}
		bad, err := compilePatterns(s.Bad)
		if err != nil {
			return nil, fmt.Errorf("attribute %q bad patterns: %w", s.ID, err)
		}
		contextual, err := compilePatterns(s.Context)
		if err != nil {
			return nil, fmt.Errorf("attribute %q context patterns: %w", s.ID, err)
		}

		attrs = append(attrs, Attribute{
			ID:               s.ID,
			Label:            s.Label,
			Weight:           s.Weight,
			NegationDominant: s.NegationDominant,
			Good:             good,
			Bad:              bad,
			Context:          contextual,
			GoodValue:        s.GoodValue,
			BadValue:         s.BadValue,
			Fallback:         s.Fallback,
		})
	}

	return NewLibrary(attrs)
}

// compilePatterns compiles a pattern list, forcing case-insensitive matching.
func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if !strings.HasPrefix(p, "(?i)") {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
