// Package testutil provides a common way to materialize containers from two
// sources, so the same conversion suite runs against directly-built tables
// and against tables decoded from fixture documents.
package testutil

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/comalice/tablex"
	"github.com/comalice/tablex/internal/fixture"
)

// Source builds containers for a conversion suite.
type Source interface {
	Name() string
	Sequence(values ...any) (tablex.SequenceView, error)
	Set(members ...any) (tablex.SetView, error)
	Table(entries []fixture.Entry) (*tablex.Table, error)
}

// Sources returns every available container source.
func Sources() []Source {
	return []Source{BuilderSource{}, FixtureSource{}}
}

// BuilderSource builds containers through the public fluent API.
type BuilderSource struct{}

func (BuilderSource) Name() string { return "builder" }

func (BuilderSource) Sequence(values ...any) (tablex.SequenceView, error) {
	return tablex.SequenceOf(values...)
}

func (BuilderSource) Set(members ...any) (tablex.SetView, error) {
	return tablex.SetOf(members...)
}

func (BuilderSource) Table(entries []fixture.Entry) (*tablex.Table, error) {
	b := tablex.NewTableBuilder()
	for _, e := range entries {
		if e.Present {
			b.Mark(e.Key)
		} else {
			b.Put(e.Key, e.Value)
		}
	}
	return b.Build()
}

// FixtureSource builds containers by round-tripping a fixture document, so
// the suite also exercises the document codec.
type FixtureSource struct{}

func (FixtureSource) Name() string { return "fixture" }

func (FixtureSource) Sequence(values ...any) (tablex.SequenceView, error) {
	doc := fixture.Document{Kind: "sequence", Values: values}
	c, err := buildDoc(&doc)
	if err != nil {
		return tablex.SequenceView{}, err
	}
	return tablex.AsArray(c)
}

func (FixtureSource) Set(members ...any) (tablex.SetView, error) {
	doc := fixture.Document{Kind: "set", Members: members}
	c, err := buildDoc(&doc)
	if err != nil {
		return tablex.SetView{}, err
	}
	return tablex.AsSet(c)
}

func (FixtureSource) Table(entries []fixture.Entry) (*tablex.Table, error) {
	doc := fixture.Document{Kind: "table", Entries: entries}
	c, err := buildDoc(&doc)
	if err != nil {
		return nil, err
	}
	return tablex.AsObject(c), nil
}

func buildDoc(doc *fixture.Document) (tablex.Container, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("fixture document: %w", err)
	}
	return doc.Build()
}

// EntriesOf snapshots a container's entries for comparison. The snapshot is
// independent of the container.
func EntriesOf(c tablex.Container) map[any]any {
	out := map[any]any{}
	for k, v := range tablex.AsMap(c).All() {
		out[k] = v
	}
	return out
}

// DiffEntries returns a human-readable diff of two entry snapshots, empty
// when they match.
func DiffEntries(want, got map[any]any) string {
	return cmp.Diff(want, got)
}

// Dump renders a container for failure messages.
func Dump(c tablex.Container) string {
	return spew.Sdump(EntriesOf(c))
}
