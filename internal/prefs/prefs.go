// Package prefs provides a persistent JSON store for inspection preferences:
// the global enabled and collapsed toggles plus one enabled flag per provider.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known preference keys.
const (
	KeyEnabled   = "enabled"
	KeyCollapsed = "collapsed"
)

// ProviderKey returns the persisted-state key for a provider's enabled flag.
// The key is derived from the provider's name: two providers registered with
// the same name share one key, and the last writer wins for both. That
// collision is deliberate, not fixed here.
func ProviderKey(name string) string {
	return "provider." + name + ".enabled"
}

// Store persists boolean preferences to a JSON file on disk. A Store created
// with an empty path is memory-only: Load and Save become no-ops.
type Store struct {
	mu     sync.RWMutex
	Values map[string]bool `json:"values"`
	path   string
}

// New creates a new Store backed by the given file path.
func New(path string) *Store {
	return &Store{
		Values: make(map[string]bool),
		path:   path,
	}
}

// DefaultPath returns the default preferences file path (~/.brackets-inspect/prefs.json).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".brackets-inspect/prefs.json"
	}
	return filepath.Join(home, ".brackets-inspect", "prefs.json")
}

// Load reads the preferences file from disk. If the file doesn't exist,
// the store starts empty (no error). Symlinks are rejected.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}

	info, err := os.Lstat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("preferences file is a symlink (rejected for security): %s", s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(data, s)
}

// Save writes the current preferences to disk, creating parent directories if
// needed. Directories are created with 0o700, files with 0o600 (owner-only).
// Symlinks are rejected.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.path == "" {
		return nil
	}

	if info, err := os.Lstat(s.path); err == nil {
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("preferences file is a symlink (rejected for security): %s", s.path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}

// GetBool returns the value for key, or def if the key has never been set.
func (s *Store) GetBool(key string, def bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.Values[key]
	if !ok {
		return def
	}
	return v
}

// SetBool stores a value for the given key.
func (s *Store) SetBool(key string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Values[key] = v
}

// Path returns the file path of this store ("" for memory-only stores).
func (s *Store) Path() string {
	return s.path
}
