package host

import "github.com/comalice/tablex"

// Multi is a bundle of values standing in for a multi-value return at a
// transpiled call site. Unlike a sequence table it may hold absent values;
// they simply unpack as nil.
type Multi []any

// Values bundles vs into a Multi.
func Values(vs ...any) Multi {
	return Multi(vs)
}

// At returns the 1-based element i, or nil past the end. Absent-padding is
// the contract: callers destructure a fixed number of results regardless of
// how many were produced.
func (m Multi) At(i int) any {
	if i < 1 || i > len(m) {
		return nil
	}
	return m[i-1]
}

// Unpack2 destructures the first two results.
func (m Multi) Unpack2() (any, any) {
	return m.At(1), m.At(2)
}

// Unpack3 destructures the first three results.
func (m Multi) Unpack3() (any, any, any) {
	return m.At(1), m.At(2), m.At(3)
}

// Spread packs the non-absent prefix of the bundle into a new sequence
// table. Packing stops at the first absent value, keeping the gapless key
// invariant.
func (m Multi) Spread() (tablex.SequenceView, error) {
	end := len(m)
	for i, v := range m {
		if v == nil {
			end = i
			break
		}
	}
	return tablex.SequenceOf(m[:end]...)
}
