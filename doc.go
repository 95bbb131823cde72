// Package tablex bridges the three logical container shapes of a keyed-table
// runtime: ordered sequences, associative maps, and membership sets. All three
// are interpretations of one physical entity, the keyed Table; a conversion
// between views that already share a physical layout relabels the same table
// instead of copying it.
//
// The bridge is pure, synchronous, and single-threaded by contract. A view
// returned by AsObject, AsMap, AsSet, or AsArray aliases the table it was
// derived from: mutation through either side is visible to both. The fluent
// builders (SequenceOf, SetOf, MapOf, TableBuilder) are the allocating
// counterpart and always produce independent tables.
//
// Conversions fail fast. Asking for a view whose invariant the table does not
// satisfy yields a typed error (PreconditionViolation, InvalidSequenceKeys)
// rather than a silently coerced result.
package tablex
