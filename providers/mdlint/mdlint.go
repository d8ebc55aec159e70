// Package mdlint is a bundled inspection provider for markdown documents.
// It parses the buffer with goldmark and reports structural problems:
// heading level jumps, duplicate headings, empty link destinations, and
// fenced code blocks without a language.
package mdlint

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ToineBo/brackets/internal/types"
)

// Name is the provider name shown in report sections and used as the
// persisted-preference key.
const Name = "MarkdownLint"

// Provider implements registry.Provider for markdown files.
type Provider struct{}

// New creates the markdown provider.
func New() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string { return Name }

// ScanFile parses text and reports structural markdown problems. It never
// aborts: a file goldmark cannot make sense of still parses into some tree.
func (p *Provider) ScanFile(ctx context.Context, content, path string) (*types.ScanResult, error) {
	source := []byte(content)
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	idx := newLineIndex(source)
	var problems []types.Problem

	prevLevel := 0
	seenHeadings := map[string]bool{}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if ctx.Err() != nil {
			return ast.WalkStop, ctx.Err()
		}

		switch node := n.(type) {
		case *ast.Heading:
			pos := blockPos(node, idx)
			if prevLevel > 0 && node.Level > prevLevel+1 {
				problems = append(problems, types.Problem{
					Pos:     pos,
					Message: fmt.Sprintf("Heading level jumps from H%d to H%d", prevLevel, node.Level),
					Type:    types.TypeWarning,
				})
			}
			prevLevel = node.Level

			title := strings.TrimSpace(string(extractText(node, source)))
			if title != "" {
				key := strings.ToLower(title)
				if seenHeadings[key] {
					problems = append(problems, types.Problem{
						Pos:     pos,
						Message: fmt.Sprintf("Duplicate heading %q", title),
						Type:    types.TypeWarning,
					})
				}
				seenHeadings[key] = true
			}

		case *ast.Link:
			if len(node.Destination) == 0 {
				problems = append(problems, types.Problem{
					Pos:     nearestBlockPos(node, idx),
					Message: "Link has an empty destination",
					Type:    types.TypeError,
				})
			}

		case *ast.FencedCodeBlock:
			if node.Language(source) == nil {
				problems = append(problems, types.Problem{
					Pos:     blockPos(node, idx),
					Message: "Fenced code block has no language",
					Type:    types.TypeWarning,
				})
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if len(problems) == 0 {
		return nil, nil
	}
	return &types.ScanResult{Errors: problems}, nil
}

// blockPos returns the position of a block node's first source segment.
func blockPos(n ast.Node, idx *lineIndex) types.Position {
	if n.Lines().Len() > 0 {
		return idx.posAt(n.Lines().At(0).Start)
	}
	return types.Position{}
}

// nearestBlockPos walks up from an inline node to the closest ancestor that
// carries source segments. Inline nodes have no positions of their own, so
// the enclosing block's start is the best location available.
func nearestBlockPos(n ast.Node, idx *lineIndex) types.Position {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Type() == ast.TypeBlock && cur.Lines().Len() > 0 {
			return idx.posAt(cur.Lines().At(0).Start)
		}
	}
	return types.Position{}
}

func extractText(n ast.Node, source []byte) []byte {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		} else {
			sb.Write(extractText(child, source))
		}
	}
	return []byte(sb.String())
}

// lineIndex converts byte offsets into zero-based line/ch positions.
type lineIndex struct {
	starts []int
}

func newLineIndex(source []byte) *lineIndex {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) posAt(offset int) types.Position {
	// Binary search over line starts.
	lo, hi := 0, len(li.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return types.Position{Line: lo, Ch: offset - li.starts[lo]}
}
