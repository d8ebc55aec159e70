// Package registry maps language identifiers to ordered lists of inspection
// providers and tracks per-provider enabled state.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ToineBo/brackets/internal/prefs"
	"github.com/ToineBo/brackets/internal/types"
)

// Provider is a pluggable analyzer for one language. ScanFile receives the
// full editor buffer and the file path; it must not assume disk contents
// match text. A nil result means the provider has nothing to report.
type Provider interface {
	Name() string
	ScanFile(ctx context.Context, text, path string) (*types.ScanResult, error)
}

// PrefStore persists per-provider enabled flags. *prefs.Store satisfies it.
type PrefStore interface {
	GetBool(key string, def bool) bool
	SetBool(key string, v bool)
}

// Registration pairs a provider with the language it was registered under.
type Registration struct {
	Language string
	Provider Provider
}

// Registry holds non-owning references to providers, keyed by language id.
// Insertion order per language is registration order and is also display
// order in the aggregated report.
type Registry struct {
	mu         sync.RWMutex
	byLanguage map[string][]Provider
	store      PrefStore
}

// New creates an empty Registry. Enabled flags are read from and written to
// store; a nil store means every provider is always enabled.
func New(store PrefStore) *Registry {
	return &Registry{
		byLanguage: make(map[string][]Provider),
		store:      store,
	}
}

// Register appends p to the provider list for languageID, creating the list
// if absent. Registering the same provider twice produces two entries and two
// invocations per run; that is the caller's problem, not validated here.
func (r *Registry) Register(languageID string, p Provider) error {
	if languageID == "" {
		return fmt.Errorf("registering provider: empty language id")
	}
	if p == nil {
		return fmt.Errorf("registering provider for %q: nil provider", languageID)
	}
	if p.Name() == "" {
		return fmt.Errorf("registering provider for %q: provider has no name", languageID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byLanguage[languageID] = append(r.byLanguage[languageID], p)
	return nil
}

// ProvidersFor returns the providers registered for languageID, in
// registration order. The returned slice is a copy; an empty language id or
// an unknown language yields an empty slice.
func (r *Registry) ProvidersFor(languageID string) []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.byLanguage[languageID]
	out := make([]Provider, len(list))
	copy(out, list)
	return out
}

// Languages returns all language ids with at least one registered provider,
// sorted for stable listings.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// All returns every registration, languages sorted, providers in
// registration order within each language.
func (r *Registry) All() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	var regs []Registration
	for _, lang := range langs {
		for _, p := range r.byLanguage[lang] {
			regs = append(regs, Registration{Language: lang, Provider: p})
		}
	}
	return regs
}

// IsEnabled reports whether p is individually enabled. Providers default to
// enabled until a preference is persisted for their name.
func (r *Registry) IsEnabled(p Provider) bool {
	if r.store == nil {
		return true
	}
	return r.store.GetBool(prefs.ProviderKey(p.Name()), true)
}

// SetEnabled persists the enabled flag for p, keyed by provider name.
func (r *Registry) SetEnabled(p Provider, enabled bool) {
	if r.store == nil {
		return
	}
	r.store.SetBool(prefs.ProviderKey(p.Name()), enabled)
}

// SetEnabledByName persists the enabled flag for a provider name without
// needing the provider instance (used by the CLI enable/disable commands).
func (r *Registry) SetEnabledByName(name string, enabled bool) {
	if r.store == nil {
		return
	}
	r.store.SetBool(prefs.ProviderKey(name), enabled)
}
