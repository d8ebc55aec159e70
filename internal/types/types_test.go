package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemTypeString(t *testing.T) {
	assert.Equal(t, "ERROR", TypeError.String())
	assert.Equal(t, "WARNING", TypeWarning.String())
	assert.Equal(t, "META", TypeMeta.String())
}

func TestProblemTypeZeroValueIsWarning(t *testing.T) {
	// Providers that never set Type must end up with WARNING.
	var p Problem
	assert.Equal(t, TypeWarning, p.Type)
}

func TestParseProblemType(t *testing.T) {
	pt, err := ParseProblemType("error")
	require.NoError(t, err)
	assert.Equal(t, TypeError, pt)

	pt, err = ParseProblemType("  META ")
	require.NoError(t, err)
	assert.Equal(t, TypeMeta, pt)

	_, err = ParseProblemType("fatal")
	assert.Error(t, err)
}

func TestStatusSummary(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"disabled", Status{Kind: StatusDisabled}, "Inspection disabled"},
		{"no document", Status{Kind: StatusNoDocument}, "Nothing to inspect"},
		{"no provider with language", Status{Kind: StatusNoProvider, Language: "css"}, "No inspector available for css files"},
		{"no provider unknown language", Status{Kind: StatusNoProvider}, "No inspector available for this file"},
		{"clean", Status{Kind: StatusClean}, "No problems found"},
		{"single problem", Status{Kind: StatusProblems, ProblemCount: 1}, "1 problem found"},
		{"many problems", Status{Kind: StatusProblems, ProblemCount: 12}, "12 problems found"},
		{"aborted count is a lower bound", Status{Kind: StatusProblems, ProblemCount: 2, Aborted: true}, "2+ problems found"},
		{"aborted single loses singular phrasing", Status{Kind: StatusProblems, ProblemCount: 1, Aborted: true}, "1+ problems found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Summary())
		})
	}
}

func TestStatusCountLabel(t *testing.T) {
	assert.Equal(t, "3", Status{ProblemCount: 3}.CountLabel())
	assert.Equal(t, "3+", Status{ProblemCount: 3, Aborted: true}.CountLabel())
	assert.Equal(t, "0+", Status{Aborted: true}.CountLabel())
}

func TestReportFirstProblem(t *testing.T) {
	rep := &Report{
		Sections: []ProviderReport{
			{ProviderName: "A", Problems: []Problem{
				{Pos: Position{Line: 4, Ch: 2}, Message: "first"},
				{Pos: Position{Line: 9}, Message: "second"},
			}},
			{ProviderName: "B", Problems: []Problem{
				{Pos: Position{Line: 1}, Message: "third"},
			}},
		},
	}
	p, ok := rep.FirstProblem()
	require.True(t, ok)
	assert.Equal(t, "first", p.Message)
	assert.Equal(t, Position{Line: 4, Ch: 2}, p.Pos)

	empty := &Report{}
	_, ok = empty.FirstProblem()
	assert.False(t, ok)
}

func TestCountNonMeta(t *testing.T) {
	problems := []Problem{
		{Type: TypeError},
		{Type: TypeWarning},
		{Type: TypeMeta},
		{}, // unset defaults to WARNING
	}
	assert.Equal(t, 3, CountNonMeta(problems))
	assert.Equal(t, 0, CountNonMeta(nil))
}

func TestReportMarshalDurationMS(t *testing.T) {
	rep := Report{Duration: 1500 * time.Millisecond}
	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 1500, decoded["duration_ms"])
	assert.NotContains(t, decoded, "Duration")
}
