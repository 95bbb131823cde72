package tablex_test

import (
	"testing"

	. "github.com/comalice/tablex"
)

// Round-trip: asArray(asObject(S)) yields the same elements in the same order.
func TestRoundTripSequenceThroughObject(t *testing.T) {
	s, err := SequenceOf(10, 20, 30)
	if err != nil {
		t.Fatal(err)
	}

	obj := AsObject(s)
	back, err := AsArray(obj)
	if err != nil {
		t.Fatal(err)
	}

	if back.Len() != 3 {
		t.Fatalf("Len = %d, want 3", back.Len())
	}
	want := []any{10, 20, 30}
	i := 0
	for v := range back.Values() {
		if v != want[i] {
			t.Errorf("element %d = %v, want %v", i+1, v, want[i])
		}
		i++
	}
	if i != 3 {
		t.Errorf("iterated %d elements, want 3", i)
	}
}

// Round-trip: asSet(asObject(T)) yields identical membership.
func TestRoundTripSetThroughObject(t *testing.T) {
	set, err := SetOf("a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}

	back, err := AsSet(AsObject(set))
	if err != nil {
		t.Fatal(err)
	}

	if back.Len() != 3 {
		t.Fatalf("Len = %d, want 3", back.Len())
	}
	for _, m := range []any{"a", "b", "c"} {
		if !back.Has(m) {
			t.Errorf("member %v lost in round trip", m)
		}
	}
}

// Aliasing: after r = asObject(S), mutating r[1] is observable through S[1].
func TestAsObjectAliasesInput(t *testing.T) {
	s, err := SequenceOf(10, 20, 30)
	if err != nil {
		t.Fatal(err)
	}

	r := AsObject(s)
	if err := r.Set(1, 99); err != nil {
		t.Fatal(err)
	}

	v, ok := s.At(1)
	if !ok || v != 99 {
		t.Errorf("S[1] = %v after mutating r[1]; want 99 (views must alias)", v)
	}
}

// Idempotence: asMap(asMap(M)) has the same key->value pairs as M.
func TestAsMapIdempotent(t *testing.T) {
	m, err := MapOf(map[any]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}

	mm := AsMap(AsMap(m))
	if mm.Len() != 2 {
		t.Fatalf("Len = %d, want 2", mm.Len())
	}
	for k, v := range m.All() {
		got, ok := mm.Get(k)
		if !ok || got != v {
			t.Errorf("entry %v = %v, want %v", k, got, v)
		}
	}
}

// Empty input: firstValue({}) and firstKey({}) report no value, never error.
func TestFirstOnEmptyContainer(t *testing.T) {
	empty := NewTable()

	if _, ok := FirstValue(empty); ok {
		t.Error("FirstValue on empty table must report no value")
	}
	if _, ok := FirstKey(empty); ok {
		t.Error("FirstKey on empty table must report no value")
	}

	seq, err := SequenceOf()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := FirstValue(seq); ok {
		t.Error("FirstValue on empty sequence must report no value")
	}
	if _, ok := FirstKey(seq); ok {
		t.Error("FirstKey on empty sequence must report no value")
	}
}

func TestFirstOnSequenceIsPositionOne(t *testing.T) {
	s, err := SequenceOf("x", "y")
	if err != nil {
		t.Fatal(err)
	}

	v, ok := FirstValue(s)
	if !ok || v != "x" {
		t.Errorf("FirstValue = %v, %v; want x at position 1", v, ok)
	}
	k, ok := FirstKey(s)
	if !ok || k != int64(1) {
		t.Errorf("FirstKey = %v, %v; want 1", k, ok)
	}
}

func TestFirstOnMapReturnsSomeEntry(t *testing.T) {
	m, err := MapOf(map[any]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}

	k, ok := FirstKey(m)
	if !ok {
		t.Fatal("FirstKey on non-empty map must return a key")
	}
	v, ok := FirstValue(m)
	if !ok {
		t.Fatal("FirstValue on non-empty map must return a value")
	}
	// No ordering guarantee: only require the pair to exist somewhere.
	if k != "a" && k != "b" {
		t.Errorf("FirstKey returned foreign key %v", k)
	}
	if v != 1 && v != 2 {
		t.Errorf("FirstValue returned foreign value %v", v)
	}
}

// Boundary: keys {1, 3} (gap at 2) raise InvalidSequenceKeys.
func TestAsArrayRejectsGap(t *testing.T) {
	tab, err := NewTableBuilder().Put(1, "a").Put(3, "b").Build()
	if err != nil {
		t.Fatal(err)
	}

	_, err = AsArray(tab)
	if err == nil {
		t.Fatal("gapped keys must fail")
	}
	if !IsInvalidSequenceKeys(err) {
		t.Errorf("want InvalidSequenceKeys, got %v", err)
	}
}

func TestAsArrayRejectsBadKeys(t *testing.T) {
	for _, bad := range []any{"name", 0, -2, 1.5} {
		tab, err := NewTableBuilder().Put(bad, "v").Build()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := AsArray(tab); !IsInvalidSequenceKeys(err) {
			t.Errorf("key %v: want InvalidSequenceKeys, got %v", bad, err)
		}
	}
}

func TestAsArrayEmptyTable(t *testing.T) {
	s, err := AsArray(NewTable())
	if err != nil {
		t.Fatalf("empty table is a sequence of length zero: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

// Boundary: {a: 1, b: 2} passed to asSet raises PreconditionViolation.
func TestAsSetRejectsNonSentinelValues(t *testing.T) {
	m, err := MapOf(map[any]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}

	_, err = AsSet(m)
	if err == nil {
		t.Fatal("non-sentinel values must fail")
	}
	if !IsPreconditionViolation(err) {
		t.Errorf("want PreconditionViolation, got %v", err)
	}
}

func TestAsSetAcceptsUniformSentinel(t *testing.T) {
	tab, err := NewTableBuilder().Mark("x").Mark("y").Build()
	if err != nil {
		t.Fatal(err)
	}

	set, err := AsSet(tab)
	if err != nil {
		t.Fatal(err)
	}
	if !set.Has("x") || !set.Has("y") || set.Len() != 2 {
		t.Error("set view must expose the table keys as members")
	}
}

// Scenario from the bridge contract: [10, 20, 30] -> asMap -> {1:10, 2:20, 3:30},
// and the key set of that map recovers [1, 2, 3] as a sequence.
func TestSequenceToMapToKeySequence(t *testing.T) {
	s, err := SequenceOf(10, 20, 30)
	if err != nil {
		t.Fatal(err)
	}

	m := AsMap(s)
	for i := 1; i <= 3; i++ {
		v, ok := m.Get(i)
		if !ok || v != i*10 {
			t.Errorf("map[%d] = %v, want %d", i, v, i*10)
		}
	}

	keys, err := SetOf()
	if err != nil {
		t.Fatal(err)
	}
	for k := range m.All() {
		if err := keys.Add(k); err != nil {
			t.Fatal(err)
		}
	}

	seq, err := AsArray(AsObject(keys))
	if err != nil {
		t.Fatalf("integer key set must form a sequence: %v", err)
	}
	for i := 1; i <= 3; i++ {
		v, ok := seq.At(i)
		if !ok || v != Present {
			t.Errorf("recovered sequence position %d = %v, want the sentinel", i, v)
		}
	}
}

// AsObject over every view keeps entries untouched.
func TestAsObjectPreservesEntries(t *testing.T) {
	m, err := MapOf(map[any]any{"k": "v", int64(2): 20})
	if err != nil {
		t.Fatal(err)
	}

	obj := AsObject(m)
	if obj.Len() != 2 {
		t.Fatalf("Len = %d, want 2", obj.Len())
	}
	if v, _ := obj.Get("k"); v != "v" {
		t.Errorf("obj[k] = %v, want v", v)
	}
	if v, _ := obj.Get(2); v != 20 {
		t.Errorf("obj[2] = %v, want 20", v)
	}
}

// Conversions over a shared table stay aliased in both directions.
func TestConversionChainSharesOneTable(t *testing.T) {
	s, err := SequenceOf(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	m := AsMap(s)
	if err := m.Set(2, 99); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.At(2); v != 99 {
		t.Errorf("sequence did not observe map mutation: %v", v)
	}

	arr, err := AsArray(m)
	if err != nil {
		t.Fatal(err)
	}
	if err := arr.SetAt(3, 42); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get(3); v != 42 {
		t.Errorf("map did not observe sequence mutation: %v", v)
	}
}

// A failed conversion never returns a partially remapped table.
func TestFailedConversionLeavesInputUntouched(t *testing.T) {
	m, err := MapOf(map[any]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := AsSet(m); err == nil {
		t.Fatal("expected precondition violation")
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Errorf("value coerced by failed conversion: %v", v)
	}
	if v, _ := m.Get("b"); v != 2 {
		t.Errorf("value coerced by failed conversion: %v", v)
	}
}
