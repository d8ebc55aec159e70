package brackets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ToineBo/brackets"
)

type fakeLinter struct {
	name   string
	result *brackets.ScanResult
}

func (f *fakeLinter) Name() string { return f.name }

func (f *fakeLinter) ScanFile(_ context.Context, _, _ string) (*brackets.ScanResult, error) {
	return f.result, nil
}

func TestCheck(t *testing.T) {
	// Create a temp directory with a broken JSON file.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{\n  \"a\": 1,\n"), 0644); err != nil {
		t.Fatal(err)
	}

	report, err := brackets.Check(context.Background(), path)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if report.Status.Kind != brackets.StatusProblems {
		t.Errorf("Status.Kind = %v, want problems", report.Status.Kind)
	}
	if report.ProblemCount == 0 {
		t.Error("expected problems for broken JSON, got 0")
	}
	if report.Language != "json" {
		t.Errorf("Language = %q, want json", report.Language)
	}
	if len(report.Sections) != 1 {
		t.Fatalf("len(Sections) = %d, want 1", len(report.Sections))
	}
	if report.Sections[0].ProviderName != "JSONLint" {
		t.Errorf("ProviderName = %q, want JSONLint", report.Sections[0].ProviderName)
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, err := brackets.Check(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCheckContent(t *testing.T) {
	report, err := brackets.CheckContent(context.Background(), `{"valid": true}`, "config.json")
	if err != nil {
		t.Fatalf("CheckContent failed: %v", err)
	}
	if report.Status.Kind != brackets.StatusClean {
		t.Errorf("Status.Kind = %v, want clean", report.Status.Kind)
	}
	if report.Status.Summary() != "No problems found" {
		t.Errorf("Summary = %q", report.Status.Summary())
	}
}

func TestCheckContentDefaultFilename(t *testing.T) {
	// Empty filename defaults to an unknown-language placeholder, so no
	// provider is available.
	report, err := brackets.CheckContent(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("CheckContent failed: %v", err)
	}
	if report.Status.Kind != brackets.StatusNoProvider {
		t.Errorf("Status.Kind = %v, want no_provider", report.Status.Kind)
	}
}

func TestCheckContentCustomProvider(t *testing.T) {
	linter := &fakeLinter{
		name: "JSHint",
		result: &brackets.ScanResult{
			Errors: []brackets.Problem{{
				Pos:     brackets.Position{Line: 2, Ch: 0},
				Message: "Missing semicolon",
				Type:    brackets.TypeError,
			}},
		},
	}

	report, err := brackets.CheckContent(
		context.Background(),
		"var a = 1\n\nconsole.log(a)\n",
		"app.js",
		brackets.WithProvider("javascript", linter),
	)
	if err != nil {
		t.Fatalf("CheckContent failed: %v", err)
	}
	if report.ProblemCount != 1 {
		t.Errorf("ProblemCount = %d, want 1", report.ProblemCount)
	}
	if report.Status.Summary() != "1 problem found" {
		t.Errorf("Summary = %q, want \"1 problem found\"", report.Status.Summary())
	}
	p, ok := report.FirstProblem()
	if !ok {
		t.Fatal("expected a first problem")
	}
	if p.Pos.Line != 2 || p.Pos.Ch != 0 {
		t.Errorf("first problem at %+v, want line 2 ch 0", p.Pos)
	}
}

func TestCheckContentDisabled(t *testing.T) {
	report, err := brackets.CheckContent(
		context.Background(),
		"{broken",
		"config.json",
		brackets.WithEnabled(false),
	)
	if err != nil {
		t.Fatalf("CheckContent failed: %v", err)
	}
	if report.Status.Kind != brackets.StatusDisabled {
		t.Errorf("Status.Kind = %v, want disabled", report.Status.Kind)
	}
	if len(report.Sections) != 0 {
		t.Errorf("disabled run produced %d sections", len(report.Sections))
	}
}

func TestCheckContentLanguageOverride(t *testing.T) {
	// A .txt file forced to json still gets the JSON provider.
	report, err := brackets.CheckContent(
		context.Background(),
		"{broken",
		"notes.txt",
		brackets.WithLanguage("json"),
	)
	if err != nil {
		t.Fatalf("CheckContent failed: %v", err)
	}
	if report.Status.Kind != brackets.StatusProblems {
		t.Errorf("Status.Kind = %v, want problems", report.Status.Kind)
	}
}

func TestCheckContentDisabledProvider(t *testing.T) {
	report, err := brackets.CheckContent(
		context.Background(),
		"{broken",
		"config.json",
		brackets.WithDisabledProviders("JSONLint"),
	)
	if err != nil {
		t.Fatalf("CheckContent failed: %v", err)
	}
	// The provider exists but is skipped, so the run comes back clean.
	if report.Status.Kind != brackets.StatusClean {
		t.Errorf("Status.Kind = %v, want clean", report.Status.Kind)
	}
	if report.ProvidersRun != 0 {
		t.Errorf("ProvidersRun = %d, want 0", report.ProvidersRun)
	}
}

func TestListProviders(t *testing.T) {
	infos, err := brackets.ListProviders()
	if err != nil {
		t.Fatalf("ListProviders failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("len(infos) = %d, want 3 builtins", len(infos))
	}
	byLang := map[string]string{}
	for _, info := range infos {
		byLang[info.Language] = info.Name
		if !info.Enabled {
			t.Errorf("provider %s disabled by default", info.Name)
		}
	}
	if byLang["markdown"] != "MarkdownLint" {
		t.Errorf("markdown provider = %q", byLang["markdown"])
	}
	if byLang["json"] != "JSONLint" {
		t.Errorf("json provider = %q", byLang["json"])
	}
	if byLang["yaml"] != "YAMLLint" {
		t.Errorf("yaml provider = %q", byLang["yaml"])
	}
}

func TestListProvidersWithoutBuiltins(t *testing.T) {
	linter := &fakeLinter{name: "JSHint"}
	infos, err := brackets.ListProviders(
		brackets.WithoutBuiltinProviders(),
		brackets.WithProvider("javascript", linter),
	)
	if err != nil {
		t.Fatalf("ListProviders failed: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("len(infos) = %d, want 1", len(infos))
	}
	if infos[0].Name != "JSHint" || infos[0].Language != "javascript" {
		t.Errorf("unexpected registration: %+v", infos[0])
	}
}

func TestNewSession(t *testing.T) {
	dir := t.TempDir()
	s, err := brackets.NewSession(
		brackets.WithPrefsPath(filepath.Join(dir, "prefs.json")),
	)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if !s.Enabled() {
		t.Error("session should start enabled by default")
	}

	doc := &brackets.Document{Path: "config.json", Language: "json", Text: "{broken"}
	report := s.SetDocument(context.Background(), doc)
	if report == nil {
		t.Fatal("SetDocument returned nil report")
	}
	if !report.HasProblems() {
		t.Error("expected problems for broken JSON")
	}
	if !s.CanGoToFirstProblem() {
		t.Error("expected go-to-first-problem to be available")
	}
}
