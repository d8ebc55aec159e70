package yamllint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToineBo/brackets/internal/types"
)

func scan(t *testing.T, content string) *types.ScanResult {
	t.Helper()
	res, err := New().ScanFile(context.Background(), content, "deploy.yml")
	require.NoError(t, err)
	return res
}

func TestValidYAML(t *testing.T) {
	assert.Nil(t, scan(t, "name: test\nitems:\n  - one\n  - two\n"))
	assert.Nil(t, scan(t, "42\n"))
}

func TestEmptyDocument(t *testing.T) {
	assert.Nil(t, scan(t, ""))
	assert.Nil(t, scan(t, "  \n\n"))
}

func TestSyntaxError(t *testing.T) {
	res := scan(t, "a: 1\nb: [unclosed\n")
	require.NotNil(t, res)
	require.NotEmpty(t, res.Errors)
	p := res.Errors[0]
	assert.True(t, strings.HasPrefix(p.Message, "YAML parse error: "), "got %q", p.Message)
	assert.Equal(t, types.TypeError, p.Type)
	assert.True(t, res.Aborted)
}

func TestErrorLineIsZeroBased(t *testing.T) {
	// The decoder reports 1-based lines; problems carry them zero-based, so a
	// failure past the first line must land on a line greater than zero.
	res := scan(t, "a: 1\nb:\n\t- x\n")
	require.NotNil(t, res)
	require.NotEmpty(t, res.Errors)
	assert.Greater(t, res.Errors[0].Pos.Line, 0)
}

func TestProblemFromMessage(t *testing.T) {
	p := problemFromMessage("yaml: line 7: did not find expected key")
	assert.Equal(t, 6, p.Pos.Line)
	assert.Equal(t, "YAML parse error: did not find expected key", p.Message)

	// Messages without a line number keep position zero.
	p = problemFromMessage("yaml: unknown anchor 'x' referenced")
	assert.Equal(t, types.Position{}, p.Pos)
	assert.Equal(t, "YAML parse error: unknown anchor 'x' referenced", p.Message)
}
