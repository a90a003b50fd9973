// Package collections implements the on-device named collections: saved
// palettes, saved designs and liked designs. Persistence is best-effort; a
// failed write degrades to session-only behaviour and never fails the
// operation itself.
package collections

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Record is an entry in a collection, identified by a stable key.
type Record interface {
	Key() string
}

// Collection is an ordered, key-addressed collection persisted to a single
// JSON file. Adds are idempotent by key, removes of missing keys are no-ops.
type Collection[T Record] struct {
	mu     sync.Mutex
	path   string
	items  []T
	logger hclog.Logger
}

// New creates a collection backed by the JSON file at path. Existing contents
// are loaded; a missing or unreadable file starts the collection empty. An
// empty path keeps the collection memory-only.
func New[T Record](path string, logger hclog.Logger) *Collection[T] {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	c := &Collection[T]{
		path:   path,
		logger: logger,
	}
	c.load()
	return c
}

// load reads the backing file. Failures are logged and leave the collection
// empty: a corrupt store must not take the application down.
func (c *Collection[T]) load() {
	if c.path == "" {
		return
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("failed to read collection, starting empty", "path", c.path, "error", err)
		}
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("failed to parse collection, starting empty", "path", c.path, "error", err)
		return
	}
	c.items = items
}

// persist writes the collection to disk atomically (temp file + rename).
// Callers must hold c.mu. Write failures are logged and swallowed: in-memory
// state already reflects the operation.
func (c *Collection[T]) persist() {
	if c.path == "" {
		return
	}

	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		c.logger.Warn("failed to encode collection", "path", c.path, "error", err)
		return
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.logger.Warn("failed to create collection directory", "dir", dir, "error", err)
		return
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		c.logger.Warn("failed to create temp file", "path", c.path, "error", err)
		return
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		c.logger.Warn("failed to write collection", "path", c.path, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		c.logger.Warn("failed to close temp file", "path", c.path, "error", err)
		return
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		c.logger.Warn("failed to replace collection file", "path", c.path, "error", err)
	}
}

// Add inserts a record, or updates an existing record with the same key in
// place. The collection length only grows when the key is new.
func (c *Collection[T]) Add(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.Key() == rec.Key() {
			c.items[i] = rec
			c.persist()
			return
		}
	}

	c.items = append(c.items, rec)
	c.persist()
}

// Remove deletes the record with the given key. Removing a missing key is a
// no-op. Returns true when a record was removed.
func (c *Collection[T]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// Clear removes all records. Irreversible.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Contains reports whether a record with the given key exists.
func (c *Collection[T]) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if existing.Key() == key {
			return true
		}
	}
	return false
}

// Get returns the record with the given key.
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if existing.Key() == key {
			return existing, true
		}
	}
	var zero T
	return zero, false
}

// Toggle adds the record when absent and removes it when present. Returns
// true when the record ended up in the collection. This is the "like" and
// "save" button semantic: toggling is idempotent per state.
func (c *Collection[T]) Toggle(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.Key() == rec.Key() {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return false
		}
	}

	c.items = append(c.items, rec)
	c.persist()
	return true
}

// All returns a copy of the records in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// DefaultDir returns the directory collections are stored under.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine config directory: %w", err)
		}
		return filepath.Join(home, ".config", "palettedex"), nil
	}
	return filepath.Join(configDir, "palettedex"), nil
}
