// Package primitives provides the foundational, zero-dependency key and value
// handling for the keyed-table engine.
//
// This package uses ONLY the Go standard library. The engine stores every
// container shape in one physical table, so the rules here decide when two Go
// values denote the same table key:
// - All integer widths collapse to int64
// - Floats with an integral value collapse to int64
// - nil, NaN, and non-comparable values are rejected outright
//
// Core invariants:
// - Normalization is idempotent: Normalize(Normalize(k)) == Normalize(k)
// - A sequence index is an int64 in [1, N]; nothing else qualifies
// - The sentinel marker compares equal only to itself
package primitives
