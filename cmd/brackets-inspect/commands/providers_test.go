package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ToineBo/brackets"
)

func TestProvidersTable(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.json")

	out := runCommand(t, "providers", "--prefs", prefs)

	require.Contains(t, out, "LANGUAGE")
	require.Contains(t, out, "PROVIDER")
	require.Contains(t, out, "MarkdownLint")
	require.Contains(t, out, "JSONLint")
	require.Contains(t, out, "YAMLLint")
	require.Contains(t, out, "3 providers registered")
}

func TestProvidersJSON(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.json")

	out := runCommand(t, "providers", "--format", "json", "--prefs", prefs)

	var infos []brackets.ProviderInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	for _, info := range infos {
		require.NotEmpty(t, info.Language)
		require.NotEmpty(t, info.Name)
		require.True(t, info.Enabled)
	}
}

func TestDisablePersistsAcrossCommands(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.json")

	out := runCommand(t, "disable", "MarkdownLint", "--prefs", prefs)
	require.Contains(t, out, "Provider MarkdownLint disabled")

	out = runCommand(t, "providers", "--format", "json", "--prefs", prefs)
	var infos []brackets.ProviderInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	for _, info := range infos {
		if info.Name == "MarkdownLint" {
			require.False(t, info.Enabled)
		} else {
			require.True(t, info.Enabled)
		}
	}

	out = runCommand(t, "enable", "MarkdownLint", "--prefs", prefs)
	require.Contains(t, out, "Provider MarkdownLint enabled")
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	require.Contains(t, out, "brackets-inspect")
}
