package tablex

import "github.com/comalice/tablex/internal/core"

// Container is any of the three logical views or the raw table itself. The
// interface is sealed: all five implementations share one physical
// representation, which is what makes relabeling conversions free.
type Container interface {
	table() *core.Table
}

// AsObject reinterprets any container as its raw keyed table. This is a
// relabeling, never a copy: the result aliases the input, no entries are
// added, removed, or reordered, and mutation through either side is visible
// to both. It always succeeds for well-formed input.
func AsObject(c Container) *Table {
	return &Table{t: c.table()}
}

// AsMap produces the map view of any container, sharing the input's table.
// Sequence input keeps its integer position keys; set input keeps its members
// as keys with the Present sentinel as every value. The result has exactly
// one entry per distinct key of the input, and no value is ever absent.
func AsMap(c Container) MapView {
	return MapView{t: c.table()}
}

// AsSet produces the set view of a container whose values are already
// uniformly the Present sentinel. The conversion is a reinterpretation, not a
// re-keying: it never synthesizes a set from arbitrary values. A non-sentinel
// value is a PreconditionViolation, reported fast rather than coerced.
func AsSet(c Container) (SetView, error) {
	t := c.table()
	if chk := t.CheckUniform(Present); !chk.OK {
		return SetView{}, newPrecondition("AsSet", "value is not the presence sentinel", chk.Key, chk.Value)
	}
	return SetView{t: t}, nil
}

// AsArray produces the sequence view of a container whose key set is exactly
// {1, …, N}. On success the view shares the input's table and element N is
// table[N] for every position. A missing, fractional, non-positive, or
// non-integer key is an InvalidSequenceKeys error; the bridge never guesses
// an order for malformed keys.
func AsArray(c Container) (SequenceView, error) {
	t := c.table()
	if chk := t.CheckSequence(); !chk.OK {
		return SequenceView{}, newInvalidSequence("AsArray", chk.BadKey, chk.Missing, chk.N)
	}
	return SequenceView{t: t}, nil
}

// FirstValue returns some entry's value. For a sequence view the canonical
// first element is position 1; for every other container any entry may be
// returned and callers must not depend on which. An empty container reports
// ok == false, never an error.
func FirstValue(c Container) (value any, ok bool) {
	if s, isSeq := c.(SequenceView); isSeq {
		return s.At(1)
	}
	_, v, ok := c.table().First()
	return v, ok
}

// FirstKey returns some entry's key, under the same ordering contract as
// FirstValue.
func FirstKey(c Container) (key any, ok bool) {
	if s, isSeq := c.(SequenceView); isSeq {
		if _, present := s.At(1); present {
			return int64(1), true
		}
		return nil, false
	}
	k, _, ok := c.table().First()
	return k, ok
}
