// Package benchmarks provides shared generators for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/tablex"
)

// GenSequence creates a sequence view with n integer elements.
func GenSequence(n int) tablex.SequenceView {
	values := make([]any, n)
	for i := range values {
		values[i] = i * 10
	}
	s, err := tablex.SequenceOf(values...)
	if err != nil {
		panic(err)
	}
	return s
}

// GenSet creates a set view with n string members.
func GenSet(n int) tablex.SetView {
	members := make([]any, n)
	for i := range members {
		members[i] = fmt.Sprintf("m%d", i)
	}
	s, err := tablex.SetOf(members...)
	if err != nil {
		panic(err)
	}
	return s
}

// GenMap creates a map view with n string-keyed entries.
func GenMap(n int) tablex.MapView {
	entries := make(map[any]any, n)
	for i := 0; i < n; i++ {
		entries[fmt.Sprintf("k%d", i)] = i
	}
	m, err := tablex.MapOf(entries)
	if err != nil {
		panic(err)
	}
	return m
}
