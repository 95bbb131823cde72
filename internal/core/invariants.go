package core

import "github.com/comalice/tablex/internal/primitives"

// SequenceCheck is the result of testing the gapless 1..N key invariant.
// When OK is false exactly one of BadKey or Missing is meaningful: BadKey is
// a key that is not a positive integer position, Missing is the smallest
// position in 1..N with no entry.
type SequenceCheck struct {
	N       int
	OK      bool
	BadKey  any
	Missing int64
}

// CheckSequence verifies that the key set is exactly {1, …, N}. With N
// distinct keys, "every key is an integer in [1, N]" already implies the
// range is gapless; a key beyond N therefore proves a gap below it.
func (t *Table) CheckSequence() SequenceCheck {
	n := len(t.entries)
	for k := range t.entries {
		i, ok := primitives.SequenceIndex(k)
		if !ok {
			return SequenceCheck{N: n, BadKey: k}
		}
		if i > int64(n) {
			return SequenceCheck{N: n, Missing: t.smallestGap()}
		}
	}
	return SequenceCheck{N: n, OK: true}
}

func (t *Table) smallestGap() int64 {
	for i := int64(1); i <= int64(len(t.entries)); i++ {
		if _, ok := t.entries[i]; !ok {
			return i
		}
	}
	return int64(len(t.entries)) + 1
}

// UniformCheck is the result of testing the set invariant. When OK is false,
// Key/Value identify the first offending entry encountered.
type UniformCheck struct {
	OK    bool
	Key   any
	Value any
}

// CheckUniform verifies that every stored value equals marker. The set view
// is a reinterpretation, not a re-keying: this check never rewrites values.
func (t *Table) CheckUniform(marker any) UniformCheck {
	for k, v := range t.entries {
		if v != marker {
			return UniformCheck{Key: k, Value: v}
		}
	}
	return UniformCheck{OK: true}
}
