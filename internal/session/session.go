// Package session owns the editor-facing integration state: the global
// enabled and collapsed toggles, the current document, the cached last
// report, and the event subscriptions that trigger inspection runs. It is an
// explicit context object created by the host integration layer; there is no
// process-wide singleton.
package session

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/ToineBo/brackets/internal/inspect"
	"github.com/ToineBo/brackets/internal/prefs"
	"github.com/ToineBo/brackets/internal/types"
)

// StatusView receives the derived status after every run.
type StatusView interface {
	ShowStatus(types.Status)
}

// PanelView receives the aggregated report when the problems panel should be
// shown, and HidePanel when it should not.
type PanelView interface {
	ShowPanel(*types.Report)
	HidePanel()
}

// EventSource is the host editor's event surface. Each On* call binds a
// handler and returns a cancel function that detaches it again.
type EventSource interface {
	OnDocumentChanged(fn func(*types.Document)) (cancel func())
	OnDocumentSaved(fn func(*types.Document)) (cancel func())
	OnDocumentRefreshed(fn func(*types.Document)) (cancel func())
}

// Session coordinates inspection runs for one editor window.
type Session struct {
	mu      sync.Mutex
	runner  *inspect.Runner
	store   *prefs.Store
	status  StatusView
	panel   PanelView
	current *types.Document
	last    *types.Report

	enabled   bool
	collapsed bool

	// gen guards against a run that was superseded while providers were
	// executing outside the lock: stale results are discarded, never
	// published or cached.
	gen uint64

	cancels []func()
	started bool
}

// Options configures a new Session.
type Options struct {
	// DefaultEnabled is the host configuration default for the global
	// toggle, used when no preference has been persisted yet.
	DefaultEnabled bool
	// DefaultCollapsed mirrors DefaultEnabled for the panel collapse flag.
	DefaultCollapsed bool
	Status           StatusView
	Panel            PanelView
}

// New creates a Session. The enabled and collapsed flags are restored from
// the preference store, falling back to the host defaults.
func New(runner *inspect.Runner, store *prefs.Store, opts Options) *Session {
	s := &Session{
		runner:    runner,
		store:     store,
		status:    opts.Status,
		panel:     opts.Panel,
		enabled:   opts.DefaultEnabled,
		collapsed: opts.DefaultCollapsed,
	}
	if store != nil {
		s.enabled = store.GetBool(prefs.KeyEnabled, opts.DefaultEnabled)
		s.collapsed = store.GetBool(prefs.KeyCollapsed, opts.DefaultCollapsed)
	}
	return s
}

// Start subscribes to src. The subscriptions stay live until Stop is called.
func (s *Session) Start(src EventSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("session already started")
	}
	s.started = true
	s.cancels = append(s.cancels,
		src.OnDocumentChanged(s.handleDocumentChanged),
		src.OnDocumentSaved(s.handleDocumentSaved),
		src.OnDocumentRefreshed(s.handleDocumentSaved),
	)
	return nil
}

// Stop cancels every subscription taken out by Start.
func (s *Session) Stop() {
	s.mu.Lock()
	cancels := s.cancels
	s.cancels = nil
	s.started = false
	s.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

func (s *Session) handleDocumentChanged(doc *types.Document) {
	s.SetDocument(context.Background(), doc)
}

// handleDocumentSaved re-runs inspection only when the saved (or refreshed)
// document is the one currently active.
func (s *Session) handleDocumentSaved(doc *types.Document) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if doc == nil || current == nil || doc.Path != current.Path {
		return
	}
	s.SetDocument(context.Background(), doc)
}

// SetDocument makes doc the current document and runs inspection on it.
// A nil doc clears the current document (no file open).
func (s *Session) SetDocument(ctx context.Context, doc *types.Document) *types.Report {
	s.mu.Lock()
	s.current = doc
	s.mu.Unlock()
	return s.Run(ctx)
}

// Run executes the full inspection pipeline against the current document and
// publishes the result to the status and panel views. The returned report is
// also cached for toggle-driven re-publication.
func (s *Session) Run(ctx context.Context) *types.Report {
	s.mu.Lock()
	myGen := s.gen + 1
	s.gen = myGen
	doc := s.current
	enabled := s.enabled
	s.mu.Unlock()

	var report *types.Report
	if !enabled {
		report = inspect.DisabledReport(doc)
	} else {
		var err error
		report, err = s.runner.Run(ctx, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "brackets-inspect: warning: inspection run failed: %v\n", err)
			return nil
		}
	}

	s.mu.Lock()
	if s.gen != myGen {
		// A newer run was started while providers were executing.
		s.mu.Unlock()
		return report
	}
	s.last = report
	collapsed := s.collapsed
	s.mu.Unlock()

	s.publish(report, collapsed)
	return report
}

// publish pushes the report to the views. The panel auto-shows only when
// there are countable problems and the user has not collapsed it; collapsed
// suppresses auto-show, not manual reopen.
func (s *Session) publish(report *types.Report, collapsed bool) {
	if s.status != nil {
		s.status.ShowStatus(report.Status)
	}
	if s.panel == nil {
		return
	}
	if report.HasProblems() && !collapsed {
		s.panel.ShowPanel(report)
	} else {
		s.panel.HidePanel()
	}
}

// ToggleEnabled sets the global enabled flag, or flips it when v is nil, and
// returns the new value. Disabling hides the panel immediately; enabling
// re-derives status via a fresh run.
func (s *Session) ToggleEnabled(ctx context.Context, v *bool) bool {
	s.mu.Lock()
	next := !s.enabled
	if v != nil {
		next = *v
	}
	changed := next != s.enabled
	s.enabled = next
	s.mu.Unlock()

	if changed {
		s.persist(prefs.KeyEnabled, next)
		s.Run(ctx)
	}
	return next
}

// ToggleCollapsed sets the panel collapse flag, or flips it when v is nil,
// and returns the new value. The flag only matters while there are problems
// to show: it suppresses the panel's auto-show.
func (s *Session) ToggleCollapsed(v *bool) bool {
	s.mu.Lock()
	next := !s.collapsed
	if v != nil {
		next = *v
	}
	changed := next != s.collapsed
	s.collapsed = next
	last := s.last
	s.mu.Unlock()

	if changed {
		s.persist(prefs.KeyCollapsed, next)
		if last != nil {
			s.publish(last, next)
		}
	}
	return next
}

func (s *Session) persist(key string, v bool) {
	if s.store == nil {
		return
	}
	s.store.SetBool(key, v)
	if err := s.store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "brackets-inspect: warning: saving preferences: %v\n", err)
	}
}

// Enabled reports the global toggle state.
func (s *Session) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Collapsed reports the panel collapse state.
func (s *Session) Collapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collapsed
}

// Last returns the cached report from the most recent completed run.
func (s *Session) Last() *types.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// CanGoToFirstProblem reports whether go-to-first-problem navigation is
// available: inspection enabled and at least one countable problem.
func (s *Session) CanGoToFirstProblem() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled && s.last != nil && s.last.HasProblems()
}

// GoToFirstProblem returns the position the host editor's cursor should jump
// to. ok is false when navigation is unavailable.
func (s *Session) GoToFirstProblem() (types.Position, bool) {
	s.mu.Lock()
	last := s.last
	enabled := s.enabled
	s.mu.Unlock()
	if !enabled || last == nil || !last.HasProblems() {
		return types.Position{}, false
	}
	p, ok := last.FirstProblem()
	if !ok {
		return types.Position{}, false
	}
	return p.Pos, true
}
