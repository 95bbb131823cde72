package tablex

import (
	"fmt"

	"github.com/comalice/tablex/internal/core"
)

// The builders are the allocating half of the lifecycle contract: unlike the
// As* conversions they always produce a fresh, unaliased table.

// SequenceOf builds a new sequence view holding values in order. A nil value
// is rejected: storing it would leave a gap in the 1..N key range.
func SequenceOf(values ...any) (SequenceView, error) {
	t := core.NewSized(len(values))
	for i, v := range values {
		if v == nil {
			return SequenceView{}, newPrecondition("SequenceOf", "absent values cannot be stored", int64(i+1), nil)
		}
		if err := t.Set(int64(i+1), v); err != nil {
			return SequenceView{}, fmt.Errorf("sequence element %d: %w", i+1, err)
		}
	}
	return SequenceView{t: t}, nil
}

// SetOf builds a new set view over members. Duplicate members collapse to a
// single entry.
func SetOf(members ...any) (SetView, error) {
	t := core.NewSized(len(members))
	for _, m := range members {
		if err := t.Set(m, Present); err != nil {
			return SetView{}, fmt.Errorf("set member %v: %w", m, err)
		}
	}
	return SetView{t: t}, nil
}

// MapOf builds a new map view from entries. Entries with nil values are
// skipped, matching the storage rule that an absent value never exists.
func MapOf(entries map[any]any) (MapView, error) {
	t := core.NewSized(len(entries))
	for k, v := range entries {
		if err := t.Set(k, v); err != nil {
			return MapView{}, fmt.Errorf("map entry %v: %w", k, err)
		}
	}
	return MapView{t: t}, nil
}

// TableBuilder provides a fluent API for constructing a raw table, mixing
// positional, keyed, and membership entries. Errors are collected and
// surfaced once by Build, so call chains stay unbroken.
type TableBuilder struct {
	t    *core.Table
	next int64
	err  error
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{t: core.New(), next: 1}
}

// Put stores value under key.
func (b *TableBuilder) Put(key, value any) *TableBuilder {
	if b.err == nil {
		if err := b.t.Set(key, value); err != nil {
			b.err = err
		}
	}
	return b
}

// Append stores value at the next free sequence position.
func (b *TableBuilder) Append(value any) *TableBuilder {
	if b.err == nil {
		if value == nil {
			b.err = newPrecondition("Append", "absent values cannot be stored", b.next, nil)
			return b
		}
		if err := b.t.Set(b.next, value); err != nil {
			b.err = err
			return b
		}
		b.next++
	}
	return b
}

// Mark stores the Present sentinel under key, set style.
func (b *TableBuilder) Mark(key any) *TableBuilder {
	return b.Put(key, Present)
}

// Build returns the constructed table, or the first error hit by the chain.
func (b *TableBuilder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Table{t: b.t}, nil
}
