package tablex

import (
	"iter"

	"github.com/comalice/tablex/internal/core"
	"github.com/comalice/tablex/internal/primitives"
)

// Marker is the sentinel type marking set membership. Its single instance is
// Present; every value in a set shaped table equals it.
type Marker = primitives.Marker

// Present is the sentinel "present" value. It is distinct from every legal
// caller value and from the absent value nil.
var Present = primitives.Present

// Key normalization errors, surfaced from Table.Set and the builders.
var (
	ErrNilKey        = primitives.ErrNilKey
	ErrNaNKey        = primitives.ErrNaNKey
	ErrUnhashableKey = primitives.ErrUnhashableKey
)

// Table is the raw keyed table: the single physical storage shared by all
// three logical views. Tables are caller-owned; the bridge never retains one
// beyond the duration of a call.
type Table struct {
	t *core.Table
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{t: core.New()}
}

// Set stores value under key. Storing nil removes the entry: an absent value
// is indistinguishable from an absent key. Keys are normalized (all integer
// widths and integral floats collapse together) and invalid keys are
// rejected.
func (t *Table) Set(key, value any) error {
	return t.t.Set(key, value)
}

// Get returns the value for key, with ok reporting presence.
func (t *Table) Get(key any) (value any, ok bool) {
	return t.t.Get(key)
}

// Delete removes the entry for key, if any.
func (t *Table) Delete(key any) {
	t.t.Delete(key)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.t.Len()
}

// All iterates every entry. Order is unspecified; only the Sequence view
// carries an ordering guarantee.
func (t *Table) All() iter.Seq2[any, any] {
	return t.t.All()
}

// Clone returns an independent shallow copy of the table.
func (t *Table) Clone() *Table {
	return &Table{t: t.t.Clone()}
}

func (t *Table) table() *core.Table {
	return t.t
}
