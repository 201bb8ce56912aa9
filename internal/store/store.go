// Package store implements the JSON-file-backed record store. Each entity
// type is persisted as one independent collection file holding a JSON array;
// the whole collection is loaded into memory on open and written back in
// full after every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/warit/schoolregis/internal/pkg/logger"
)

// Collection is a file-backed set of records of one entity type. A single
// long-lived Collection per entity is opened at startup and shared by
// reference across the domain services; the mutex serializes all access to
// the working set, making each collection a single-writer resource.
type Collection[T any] struct {
	path string
	mu   sync.RWMutex
	recs []T
}

// Open loads the collection at path, creating the file (and any missing
// parent directories) with an empty array when it does not exist. A corrupt
// or unreadable file degrades to an empty collection: the failure is logged
// and not returned to the caller.
func Open[T any](path string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to initialize collection file: %w", err)
		}
	}

	c := &Collection[T]{path: path}
	c.load()
	return c, nil
}

// load reads the whole backing file into memory. Read failures substitute an
// empty working set.
func (c *Collection[T]) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		logger.Error().Err(err).Str("path", c.path).Msg("Failed to read collection file, starting empty")
		c.recs = nil
		return
	}

	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		logger.Error().Err(err).Str("path", c.path).Msg("Failed to parse collection file, starting empty")
		c.recs = nil
		return
	}
	c.recs = recs
}

// persist writes the whole working set back to disk. A write failure is
// logged and the in-memory state is kept, so memory and disk can diverge
// until the next successful write.
func (c *Collection[T]) persist() {
	recs := c.recs
	if recs == nil {
		// a nil slice marshals to the literal null; the file always holds
		// a JSON array
		recs = []T{}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		logger.Error().Err(err).Str("path", c.path).Msg("Failed to encode collection")
		return
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", c.path).Msg("Failed to write collection file")
	}
}

// All returns a copy of every record in collection order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.recs))
	copy(out, c.recs)
	return out
}

// Find returns all records matching the predicate, in collection order.
func (c *Collection[T]) Find(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, r := range c.recs {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// FindOne returns the first record matching the predicate.
func (c *Collection[T]) FindOne(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.recs {
		if pred(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Exists reports whether any record matches the predicate.
func (c *Collection[T]) Exists(pred func(T) bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.recs {
		if pred(r) {
			return true
		}
	}
	return false
}

// Count returns the number of records matching the predicate; a nil
// predicate counts every record.
func (c *Collection[T]) Count(pred func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if pred == nil {
		return len(c.recs)
	}
	n := 0
	for _, r := range c.recs {
		if pred(r) {
			n++
		}
	}
	return n
}

// Len returns the total number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recs)
}

// Add appends a record and persists the collection. Uniqueness is the
// caller's responsibility.
func (c *Collection[T]) Add(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, rec)
	c.persist()
}

// AddMany appends several records and persists the collection once.
func (c *Collection[T]) AddMany(recs []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, recs...)
	c.persist()
}

// Update replaces the first record matching the predicate with rec in its
// entirety; no field merge takes place. It reports whether a record matched.
func (c *Collection[T]) Update(pred func(T) bool, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.recs {
		if pred(r) {
			c.recs[i] = rec
			c.persist()
			return true
		}
	}
	return false
}

// UpdateMany applies fn to every record matching the predicate and returns
// the number of records updated. The collection is persisted once when
// anything changed.
func (c *Collection[T]) UpdateMany(pred func(T) bool, fn func(T) T) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i, r := range c.recs {
		if pred(r) {
			c.recs[i] = fn(r)
			n++
		}
	}
	if n > 0 {
		c.persist()
	}
	return n
}

// Delete removes every record matching the predicate and reports whether
// any removal occurred.
func (c *Collection[T]) Delete(pred func(T) bool) bool {
	return c.deleteMatching(pred) > 0
}

// DeleteMany removes every record matching the predicate and returns the
// number removed.
func (c *Collection[T]) DeleteMany(pred func(T) bool) int {
	return c.deleteMatching(pred)
}

func (c *Collection[T]) deleteMatching(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.recs[:0]
	removed := 0
	for _, r := range c.recs {
		if pred(r) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	c.recs = kept
	if removed > 0 {
		c.persist()
	}
	return removed
}

// Replace swaps the entire working set for recs and persists it.
func (c *Collection[T]) Replace(recs []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = recs
	c.persist()
}

// Clear removes every record and persists the empty collection.
func (c *Collection[T]) Clear() {
	c.Replace(nil)
}

// Refresh discards the in-memory working set and reloads it from disk,
// reconciling after out-of-band changes to the backing file.
func (c *Collection[T]) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
}

// Path returns the backing file location.
func (c *Collection[T]) Path() string {
	return c.path
}
