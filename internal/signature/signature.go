// Package signature evaluates named heuristic patterns against a parsed document.
package signature

import (
	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/document"
)

// Test is a predicate over a parsed document.
type Test func(doc *document.Document) bool

// Pattern is one named piece of evidence for a technology.
type Pattern struct {
	Name string
	// Signal overrides the default "Detected <Name>" evidence text.
	Signal string
	Test   Test
}

// SignalText returns the evidence text recorded when the pattern matches.
func (p Pattern) SignalText() string {
	if p.Signal != "" {
		return p.Signal
	}
	return "Detected " + p.Name
}

// Deriver computes additional signals (versions, ids, variants) once a
// technology is known to be present.
type Deriver func(doc *document.Document, res Result) []string

// Signature is the full set of patterns for one technology.
type Signature struct {
	ID       catalogue.TechnologyID
	Patterns []Pattern
	Derive   Deriver
}

// Outcome records whether a single pattern matched.
type Outcome struct {
	Name    string
	Matched bool
}

// Result is the evaluation of a Signature against a document.
type Result struct {
	ID       catalogue.TechnologyID
	Detected bool
	Outcomes []Outcome
	Signals  []string
}

// Matched reports whether the named pattern matched.
func (r Result) Matched(name string) bool {
	for _, o := range r.Outcomes {
		if o.Name == name {
			return o.Matched
		}
	}
	return false
}

// Evaluate runs every pattern of s against doc. All patterns are evaluated
// so that the full evidence set is known; a technology is detected when
// any pattern matches. Derived signals are appended only for detected
// technologies and never change detection.
func (s Signature) Evaluate(doc *document.Document) Result {
	res := Result{
		ID:       s.ID,
		Outcomes: make([]Outcome, 0, len(s.Patterns)),
	}
	if doc == nil {
		doc = document.Empty()
	}

	for _, p := range s.Patterns {
		matched := p.Test != nil && p.Test(doc)
		res.Outcomes = append(res.Outcomes, Outcome{Name: p.Name, Matched: matched})
		if matched {
			res.Detected = true
			res.Signals = append(res.Signals, p.SignalText())
		}
	}

	if res.Detected && s.Derive != nil {
		res.Signals = append(res.Signals, s.Derive(doc, res)...)
	}

	return res
}
