// Package brackets coordinates pluggable code-inspection providers: it maps
// a document's language to the registered providers, runs them, merges their
// findings into one ordered report, and derives a single status.
//
// This is the library entry point. For the CLI tool, see cmd/brackets-inspect/.
package brackets

import (
	"context"
	"fmt"
	"os"

	"github.com/ToineBo/brackets/internal/inspect"
	"github.com/ToineBo/brackets/internal/language"
	"github.com/ToineBo/brackets/internal/prefs"
	"github.com/ToineBo/brackets/internal/registry"
	"github.com/ToineBo/brackets/internal/session"
	"github.com/ToineBo/brackets/internal/types"
)

// Re-export core types from internal packages so consumers don't need to
// import internal paths.
type (
	ProblemType    = types.ProblemType
	Position       = types.Position
	Problem        = types.Problem
	ScanResult     = types.ScanResult
	Document       = types.Document
	ProviderReport = types.ProviderReport
	Report         = types.Report
	Status         = types.Status
	StatusKind     = types.StatusKind

	Provider = registry.Provider
	Registry = registry.Registry

	Session     = session.Session
	EventSource = session.EventSource
	StatusView  = session.StatusView
	PanelView   = session.PanelView
)

const (
	TypeError   = types.TypeError
	TypeWarning = types.TypeWarning
	TypeMeta    = types.TypeMeta

	StatusDisabled   = types.StatusDisabled
	StatusNoDocument = types.StatusNoDocument
	StatusNoProvider = types.StatusNoProvider
	StatusClean      = types.StatusClean
	StatusProblems   = types.StatusProblems
)

// ProviderInfo summarizes one provider registration.
type ProviderInfo struct {
	Language string `json:"language"`
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
}

// Check inspects a file on disk: it reads the file, detects its language,
// runs every enabled provider registered for that language, and returns the
// aggregated report.
func Check(ctx context.Context, path string, opts ...Option) (*Report, error) {
	cfg := applyOpts(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return checkDocument(ctx, cfg, &Document{
		Path:     path,
		Language: detectLanguage(cfg, path),
		Text:     string(data),
	})
}

// CheckContent inspects inline content without touching disk. filename is a
// hint for language detection (e.g. "readme.md", "config.json").
func CheckContent(ctx context.Context, content, filename string, opts ...Option) (*Report, error) {
	cfg := applyOpts(opts)
	if filename == "" {
		filename = "untitled.txt"
	}
	return checkDocument(ctx, cfg, &Document{
		Path:     filename,
		Language: detectLanguage(cfg, filename),
		Text:     content,
	})
}

// NewSession builds the editor-integration layer: a Session wired to a fully
// populated registry and preference store. Hosts subscribe it to their event
// source with Start and point views at it via WithStatusView / WithPanelView.
func NewSession(opts ...Option) (*Session, error) {
	cfg := applyOpts(opts)
	reg, store, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	runner := inspect.New(reg)
	return session.New(runner, store, session.Options{
		DefaultEnabled:   cfg.enabled,
		DefaultCollapsed: cfg.collapsed,
		Status:           cfg.statusView,
		Panel:            cfg.panelView,
	}), nil
}

// ListProviders returns every registered provider with its language and
// current enabled state, languages sorted, providers in registration order.
func ListProviders(opts ...Option) ([]ProviderInfo, error) {
	cfg := applyOpts(opts)
	reg, _, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	regs := reg.All()
	infos := make([]ProviderInfo, len(regs))
	for i, r := range regs {
		infos[i] = ProviderInfo{
			Language: r.Language,
			Name:     r.Provider.Name(),
			Enabled:  reg.IsEnabled(r.Provider),
		}
	}
	return infos, nil
}

// --- internal helpers ---

func checkDocument(ctx context.Context, cfg *checkConfig, doc *Document) (*Report, error) {
	if !cfg.enabled {
		return inspect.DisabledReport(doc), nil
	}

	reg, _, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	return inspect.New(reg).Run(ctx, doc)
}

func detectLanguage(cfg *checkConfig, path string) string {
	if cfg.language != "" {
		return cfg.language
	}
	return language.Detect(path)
}

// buildRegistry creates a registry populated with the bundled providers plus
// any extras, backed by the configured preference store.
func buildRegistry(cfg *checkConfig) (*registry.Registry, *prefs.Store, error) {
	store := prefs.New(cfg.prefsPath)
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "brackets-inspect: warning: loading preferences: %v\n", err)
	}

	reg := registry.New(store)

	if !cfg.noBuiltins {
		for _, b := range builtinProviders() {
			if err := reg.Register(b.language, b.provider); err != nil {
				return nil, nil, err
			}
		}
	}
	for _, e := range cfg.providers {
		if err := reg.Register(e.language, e.provider); err != nil {
			return nil, nil, fmt.Errorf("registering provider %s: %w", providerName(e.provider), err)
		}
	}

	for _, name := range cfg.disabledProviders {
		reg.SetEnabledByName(name, false)
	}

	return reg, store, nil
}

func providerName(p Provider) string {
	if p == nil {
		return "(nil)"
	}
	return p.Name()
}
