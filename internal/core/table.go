// Package core implements the physical keyed table shared by every logical
// container view. A Table is the single storage shape: a mapping from
// normalized keys to non-absent values. The public bridge package layers
// sequence, map, and set interpretations on top of it; this package only
// knows about entries and the two invariants those interpretations require.
package core

import (
	"fmt"
	"iter"

	"github.com/comalice/tablex/internal/primitives"
)

// Table is the sole physical container entity. The zero value is not usable;
// construct with New. Tables are caller-owned and never retained by the
// bridge beyond a single call.
type Table struct {
	entries map[any]any
}

// New creates an empty table.
func New() *Table {
	return &Table{
		entries: make(map[any]any),
	}
}

// NewSized creates an empty table with capacity for n entries.
func NewSized(n int) *Table {
	return &Table{
		entries: make(map[any]any, n),
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Get returns the value stored for key. The second result is false when the
// key is not present; an absent value is never stored, so a nil value and a
// missing key are the same observation.
func (t *Table) Get(key any) (any, bool) {
	k, err := primitives.Normalize(key)
	if err != nil {
		return nil, false
	}
	v, ok := t.entries[k]
	return v, ok
}

// Set stores value under key. Storing nil deletes the entry, keeping the
// "absent value == absent key" invariant. The key is normalized first and
// rejected if it cannot serve as a table key.
func (t *Table) Set(key, value any) error {
	k, err := primitives.Normalize(key)
	if err != nil {
		return fmt.Errorf("set %v: %w", key, err)
	}
	if value == nil {
		delete(t.entries, k)
		return nil
	}
	t.entries[k] = value
	return nil
}

// Delete removes the entry for key, if any.
func (t *Table) Delete(key any) {
	k, err := primitives.Normalize(key)
	if err != nil {
		return
	}
	delete(t.entries, k)
}

// All iterates every entry in unspecified order.
func (t *Table) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range t.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

// First returns an arbitrary entry, or ok == false for an empty table.
// Callers that need the canonical first sequence element must ask for key 1
// explicitly; map iteration order carries no guarantee.
func (t *Table) First() (key, value any, ok bool) {
	for k, v := range t.entries {
		return k, v, true
	}
	return nil, nil, false
}

// Clone returns an independent shallow copy: new table, same entry values.
func (t *Table) Clone() *Table {
	c := NewSized(len(t.entries))
	for k, v := range t.entries {
		c.entries[k] = v
	}
	return c
}
