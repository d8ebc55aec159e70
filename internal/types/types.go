// Package types defines shared data structures (Problem, ScanResult, Report,
// Status) used across the registry, runner, session, and output packages to
// prevent import cycles.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ProblemType classifies a reported problem. Providers that leave the type
// unset get TypeWarning, which is why it is the zero value.
type ProblemType int

const (
	TypeWarning ProblemType = iota
	TypeError
	// TypeMeta marks informational rows that are rendered in the report but
	// excluded from the numeric problem count.
	TypeMeta
)

func (t ProblemType) String() string {
	switch t {
	case TypeError:
		return "ERROR"
	case TypeWarning:
		return "WARNING"
	case TypeMeta:
		return "META"
	default:
		return "UNKNOWN"
	}
}

// ParseProblemType converts a string to a ProblemType.
func ParseProblemType(s string) (ProblemType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return TypeError, nil
	case "WARNING":
		return TypeWarning, nil
	case "META":
		return TypeMeta, nil
	default:
		return TypeWarning, fmt.Errorf("unknown problem type: %q", s)
	}
}

// Position is a zero-based location in a document. Presentation layers add 1
// to Line for display; Ch is shown as-is.
type Position struct {
	Line int `json:"line"`
	Ch   int `json:"ch"`
}

// Problem is a single issue reported by a provider.
type Problem struct {
	Pos     Position    `json:"pos"`
	EndPos  *Position   `json:"endPos,omitempty"`
	Message string      `json:"message"`
	Type    ProblemType `json:"type"`
}

// ScanResult is what a provider returns for one file. A nil *ScanResult means
// "nothing to report" and contributes neither rows nor counts.
type ScanResult struct {
	Errors  []Problem `json:"errors"`
	Aborted bool      `json:"aborted"`
}

// Document is the file under inspection. Text is the full editor buffer,
// which may differ from what is on disk.
type Document struct {
	Path     string
	Language string
	Text     string
}

// ProviderReport is one section of the aggregated report: the problems one
// provider found, in the order the provider reported them.
type ProviderReport struct {
	ProviderName string    `json:"provider"`
	Problems     []Problem `json:"problems"`
	// ProblemCount counts non-META problems only.
	ProblemCount int  `json:"problem_count"`
	Aborted      bool `json:"aborted"`
}

// StatusKind enumerates the states the status indicator can be in.
type StatusKind int

const (
	StatusDisabled StatusKind = iota
	StatusNoDocument
	StatusNoProvider
	StatusClean
	StatusProblems
)

func (k StatusKind) String() string {
	switch k {
	case StatusDisabled:
		return "disabled"
	case StatusNoDocument:
		return "no_document"
	case StatusNoProvider:
		return "no_provider"
	case StatusClean:
		return "clean"
	case StatusProblems:
		return "problems"
	default:
		return "unknown"
	}
}

// Status is the single derived state of an inspection run. It is a pure
// function of the enabled flag, the providers registered for the document's
// language, and the scan results.
type Status struct {
	Kind         StatusKind `json:"kind"`
	ProblemCount int        `json:"problem_count"`
	Aborted      bool       `json:"aborted"`
	// Language carries the document's language id for no-provider messaging.
	Language string `json:"language,omitempty"`
}

// CountLabel renders the numeric count, with a trailing "+" when a provider
// aborted (the count is then a lower bound, not an exact total).
func (s Status) CountLabel() string {
	if s.Aborted {
		return fmt.Sprintf("%d+", s.ProblemCount)
	}
	return fmt.Sprintf("%d", s.ProblemCount)
}

// Summary returns the one-line status text shown in the status indicator.
func (s Status) Summary() string {
	switch s.Kind {
	case StatusDisabled:
		return "Inspection disabled"
	case StatusNoDocument:
		return "Nothing to inspect"
	case StatusNoProvider:
		if s.Language == "" {
			return "No inspector available for this file"
		}
		return fmt.Sprintf("No inspector available for %s files", s.Language)
	case StatusClean:
		return "No problems found"
	case StatusProblems:
		if s.ProblemCount == 1 && !s.Aborted {
			return "1 problem found"
		}
		return fmt.Sprintf("%s problems found", s.CountLabel())
	default:
		return "Unknown inspection state"
	}
}

// Report holds the complete aggregated results of one inspection run.
type Report struct {
	FilePath string           `json:"file_path,omitempty"`
	Language string           `json:"language,omitempty"`
	Sections []ProviderReport `json:"sections"`
	// ProblemCount is the sum of non-META problems across all sections.
	ProblemCount int           `json:"problem_count"`
	Aborted      bool          `json:"aborted"`
	Status       Status        `json:"status"`
	ProvidersRun int           `json:"providers_run"`
	Duration     time.Duration `json:"-"`
}

// MarshalJSON implements custom JSON marshaling so Duration serializes as milliseconds.
func (r Report) MarshalJSON() ([]byte, error) {
	type Alias Report
	return json.Marshal(struct {
		Alias
		DurationMS int64 `json:"duration_ms"`
	}{
		Alias:      Alias(r),
		DurationMS: r.Duration.Milliseconds(),
	})
}

// HasProblems reports whether the run found any countable problems.
func (r *Report) HasProblems() bool {
	return r.ProblemCount > 0
}

// FirstProblem returns the first problem in provider-registration order,
// for go-to-first-problem navigation.
func (r *Report) FirstProblem() (Problem, bool) {
	for _, sec := range r.Sections {
		if len(sec.Problems) > 0 {
			return sec.Problems[0], true
		}
	}
	return Problem{}, false
}

// CountNonMeta counts the problems that participate in the numeric total.
func CountNonMeta(problems []Problem) int {
	n := 0
	for _, p := range problems {
		if p.Type != TypeMeta {
			n++
		}
	}
	return n
}
