// Package yamllint is a bundled inspection provider that syntax-checks YAML
// documents and maps parser errors back to buffer lines.
package yamllint

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ToineBo/brackets/internal/types"
)

// Name is the provider name shown in report sections.
const Name = "YAMLLint"

// Provider implements registry.Provider for YAML files.
type Provider struct{}

// New creates the YAML provider.
func New() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string { return Name }

// yaml error strings carry 1-based line numbers: "yaml: line 3: ..." or
// "line 3: ..." inside a TypeError.
var lineRe = regexp.MustCompile(`line (\d+):\s*(.*)`)

// ScanFile parses text as YAML and reports every parser error the decoder
// surfaces. Parsing stops at hard syntax errors, so those are reported as
// aborted.
func (p *Provider) ScanFile(ctx context.Context, content, path string) (*types.ScanResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	var v any
	err := yaml.Unmarshal([]byte(content), &v)
	if err == nil {
		return nil, nil
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		problems := make([]types.Problem, 0, len(typeErr.Errors))
		for _, msg := range typeErr.Errors {
			problems = append(problems, problemFromMessage(msg))
		}
		return &types.ScanResult{Errors: problems}, nil
	}

	return &types.ScanResult{
		Errors:  []types.Problem{problemFromMessage(err.Error())},
		Aborted: true,
	}, nil
}

func problemFromMessage(msg string) types.Problem {
	pos := types.Position{}
	text := strings.TrimPrefix(msg, "yaml: ")
	if m := lineRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			pos.Line = n - 1
		}
		text = m[2]
	}
	return types.Problem{
		Pos:     pos,
		Message: "YAML parse error: " + text,
		Type:    types.TypeError,
	}
}
