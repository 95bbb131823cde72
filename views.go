package tablex

import (
	"iter"

	"github.com/comalice/tablex/internal/core"
)

// The three view types borrow the table they were derived from. They are
// cheap handles: copying a view copies the reference, not the entries, and
// mutation through any handle is visible through every other handle over the
// same table.

// SequenceView interprets a table whose keys are exactly {1, …, N} as an
// ordered list. Position i holds table[i].
type SequenceView struct {
	t *core.Table
}

// Len returns N, the number of elements.
func (s SequenceView) Len() int {
	return s.t.Len()
}

// At returns the element at 1-based position i.
func (s SequenceView) At(i int) (any, bool) {
	return s.t.Get(int64(i))
}

// SetAt replaces the element at position i, which must already exist; the
// view refuses writes that would break the gapless key invariant. Setting a
// nil value is only legal at the final position, where it shortens the
// sequence by one.
func (s SequenceView) SetAt(i int, value any) error {
	n := s.t.Len()
	if i < 1 || i > n {
		return newPrecondition("SetAt", "position outside sequence", int64(i), value)
	}
	if value == nil && i != n {
		return newPrecondition("SetAt", "removing a non-final element would leave a gap", int64(i), nil)
	}
	return s.t.Set(int64(i), value)
}

// Append adds value at position N+1. A nil value is a contract violation
// here, not a delete.
func (s SequenceView) Append(value any) error {
	if value == nil {
		return newPrecondition("Append", "absent values cannot be stored", nil, nil)
	}
	return s.t.Set(int64(s.t.Len()+1), value)
}

// Values iterates elements in position order, 1 first.
func (s SequenceView) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := int64(1); ; i++ {
			v, ok := s.t.Get(i)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (s SequenceView) table() *core.Table {
	return s.t
}

// MapView interprets a table as an arbitrary-key associative mapping.
// Iteration order is unspecified.
type MapView struct {
	t *core.Table
}

// Len returns the number of entries.
func (m MapView) Len() int {
	return m.t.Len()
}

// Get returns the value for key.
func (m MapView) Get(key any) (any, bool) {
	return m.t.Get(key)
}

// Set stores value under key; nil deletes, matching the underlying table.
func (m MapView) Set(key, value any) error {
	return m.t.Set(key, value)
}

// Delete removes the entry for key.
func (m MapView) Delete(key any) {
	m.t.Delete(key)
}

// All iterates entries in unspecified order.
func (m MapView) All() iter.Seq2[any, any] {
	return m.t.All()
}

func (m MapView) table() *core.Table {
	return m.t
}

// SetView interprets a table as a membership set: the members are the keys,
// every value is the Present sentinel.
type SetView struct {
	t *core.Table
}

// Len returns the number of members.
func (s SetView) Len() int {
	return s.t.Len()
}

// Has reports membership of key.
func (s SetView) Has(key any) bool {
	_, ok := s.t.Get(key)
	return ok
}

// Add inserts key as a member. The stored value is always Present.
func (s SetView) Add(key any) error {
	return s.t.Set(key, Present)
}

// Remove drops key from the set.
func (s SetView) Remove(key any) {
	s.t.Delete(key)
}

// Members iterates the members in unspecified order.
func (s SetView) Members() iter.Seq[any] {
	return func(yield func(any) bool) {
		for k := range s.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (s SetView) table() *core.Table {
	return s.t
}
