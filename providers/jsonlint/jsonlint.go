// Package jsonlint is a bundled inspection provider that syntax-checks JSON
// documents with the standard decoder and maps decode errors back to
// positions in the buffer.
package jsonlint

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/ToineBo/brackets/internal/types"
)

// Name is the provider name shown in report sections.
const Name = "JSONLint"

// Provider implements registry.Provider for JSON files.
type Provider struct{}

// New creates the JSON provider.
func New() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string { return Name }

// ScanFile decodes text and reports the first syntax problem found. JSON
// decoding stops at the first error, so a failed parse is reported as
// aborted: the rest of the file was never checked.
func (p *Provider) ScanFile(ctx context.Context, content, path string) (*types.ScanResult, error) {
	if strings.TrimSpace(content) == "" {
		return &types.ScanResult{
			Errors: []types.Problem{{
				Pos:     types.Position{},
				Message: "Unexpected end of input: empty JSON document",
				Type:    types.TypeError,
			}},
			Aborted: true,
		}, nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(content)))
	var v any
	if err := dec.Decode(&v); err != nil {
		return &types.ScanResult{
			Errors:  []types.Problem{problemFromError(content, err, dec.InputOffset())},
			Aborted: true,
		}, nil
	}

	// Anything after the first value is trailing garbage.
	if dec.More() {
		return &types.ScanResult{
			Errors: []types.Problem{{
				Pos:     offsetToPos(content, dec.InputOffset()),
				Message: "Unexpected trailing content after JSON value",
				Type:    types.TypeError,
			}},
		}, nil
	}

	return nil, nil
}

func problemFromError(content string, err error, fallbackOffset int64) types.Problem {
	offset := fallbackOffset
	if syn, ok := err.(*json.SyntaxError); ok {
		offset = syn.Offset
	}
	return types.Problem{
		Pos:     offsetToPos(content, offset),
		Message: err.Error(),
		Type:    types.TypeError,
	}
}

// offsetToPos converts a byte offset into a zero-based line/ch position.
func offsetToPos(content string, offset int64) types.Position {
	if offset < 0 {
		return types.Position{}
	}
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	line, lineStart := 0, 0
	for i := 0; i < int(offset); i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return types.Position{Line: line, Ch: int(offset) - lineStart}
}
