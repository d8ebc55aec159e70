package brackets

import (
	"github.com/ToineBo/brackets/internal/session"
	"github.com/ToineBo/brackets/providers/jsonlint"
	"github.com/ToineBo/brackets/providers/mdlint"
	"github.com/ToineBo/brackets/providers/yamllint"
)

// registration pairs a provider with the language it should be registered
// under.
type registration struct {
	language string
	provider Provider
}

// builtinProviders returns the providers bundled with this module, registered
// by default unless WithoutBuiltinProviders is given.
func builtinProviders() []registration {
	return []registration{
		{"markdown", mdlint.New()},
		{"json", jsonlint.New()},
		{"yaml", yamllint.New()},
	}
}

// checkConfig holds the resolved configuration for an inspection run.
type checkConfig struct {
	enabled           bool
	collapsed         bool
	prefsPath         string
	language          string
	noBuiltins        bool
	providers         []registration
	disabledProviders []string
	statusView        session.StatusView
	panelView         session.PanelView
}

// Option configures an inspection operation.
type Option func(*checkConfig)

func applyOpts(opts []Option) *checkConfig {
	cfg := &checkConfig{enabled: true}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithEnabled sets the global inspection toggle. Disabled runs short-circuit
// before any provider is consulted.
func WithEnabled(enabled bool) Option {
	return func(c *checkConfig) {
		c.enabled = enabled
	}
}

// WithCollapsed sets the panel collapse default for sessions.
func WithCollapsed(collapsed bool) Option {
	return func(c *checkConfig) {
		c.collapsed = collapsed
	}
}

// WithPrefsPath persists preferences (toggles, per-provider enabled flags) to
// the given file. Without it, preferences live in memory only.
func WithPrefsPath(path string) Option {
	return func(c *checkConfig) {
		c.prefsPath = path
	}
}

// WithLanguage overrides extension-based language detection.
func WithLanguage(languageID string) Option {
	return func(c *checkConfig) {
		c.language = languageID
	}
}

// WithProvider registers an additional provider for a language. The same
// provider may be registered under multiple languages by repeating the
// option.
func WithProvider(languageID string, p Provider) Option {
	return func(c *checkConfig) {
		c.providers = append(c.providers, registration{language: languageID, provider: p})
	}
}

// WithoutBuiltinProviders skips registration of the bundled providers.
func WithoutBuiltinProviders() Option {
	return func(c *checkConfig) {
		c.noBuiltins = true
	}
}

// WithDisabledProviders marks providers (by name) as individually disabled.
func WithDisabledProviders(names ...string) Option {
	return func(c *checkConfig) {
		c.disabledProviders = append(c.disabledProviders, names...)
	}
}

// WithStatusView points a session at the host's status indicator.
func WithStatusView(v StatusView) Option {
	return func(c *checkConfig) {
		c.statusView = v
	}
}

// WithPanelView points a session at the host's problems panel.
func WithPanelView(v PanelView) Option {
	return func(c *checkConfig) {
		c.panelView = v
	}
}
