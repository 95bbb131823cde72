// Package fixture defines the YAML document model for container conversion
// cases: an input container, one bridge operation, and the expected outcome.
// The conformance tests, the testutil adapters, and the tablectl CLI all
// consume this model.
package fixture

import (
	"errors"
	"fmt"

	"github.com/comalice/tablex"
)

// Operation names accepted in a case file.
const (
	OpAsObject   = "asObject"
	OpAsMap      = "asMap"
	OpAsSet      = "asSet"
	OpAsArray    = "asArray"
	OpFirstKey   = "firstKey"
	OpFirstValue = "firstValue"
)

// Expected error classes.
const (
	ErrClassPrecondition    = "precondition"
	ErrClassInvalidSequence = "invalidSequence"
)

// Case is one conversion scenario.
type Case struct {
	Name     string    `yaml:"name"`
	Input    Document  `yaml:"input"`
	Op       string    `yaml:"op"`
	Want     *Document `yaml:"want,omitempty"`
	WantErr  string    `yaml:"wantErr,omitempty"`
	WantNone bool      `yaml:"wantNone,omitempty"` // firstKey/firstValue on empty input
}

// Document describes a container literal. Exactly one shape is used per kind:
// Values for sequences, Members for sets, Entries for maps and raw tables.
type Document struct {
	Kind    string  `yaml:"kind"` // sequence | set | map | table
	Values  []any   `yaml:"values,omitempty"`
	Members []any   `yaml:"members,omitempty"`
	Entries []Entry `yaml:"entries,omitempty"`
}

// Entry is one keyed entry. Present marks the sentinel value, so set shaped
// tables can be written without inventing a YAML spelling for the marker.
type Entry struct {
	Key     any  `yaml:"key"`
	Value   any  `yaml:"value,omitempty"`
	Present bool `yaml:"present,omitempty"`
}

var ops = map[string]struct{}{
	OpAsObject:   {},
	OpAsMap:      {},
	OpAsSet:      {},
	OpAsArray:    {},
	OpFirstKey:   {},
	OpFirstValue: {},
}

// Validate checks the case shape before any table is built.
func (c *Case) Validate() error {
	if c.Name == "" {
		return errors.New("case name is required")
	}
	if _, ok := ops[c.Op]; !ok {
		return fmt.Errorf("case %s: unknown op %q", c.Name, c.Op)
	}
	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("case %s: input: %w", c.Name, err)
	}
	if c.Want != nil {
		if err := c.Want.Validate(); err != nil {
			return fmt.Errorf("case %s: want: %w", c.Name, err)
		}
	}
	if c.WantErr != "" && c.WantErr != ErrClassPrecondition && c.WantErr != ErrClassInvalidSequence {
		return fmt.Errorf("case %s: unknown error class %q", c.Name, c.WantErr)
	}
	if c.Want != nil && c.WantErr != "" {
		return fmt.Errorf("case %s: want and wantErr are mutually exclusive", c.Name)
	}
	return nil
}

// Validate checks internal consistency of a document.
func (d *Document) Validate() error {
	switch d.Kind {
	case "sequence":
		if d.Members != nil || d.Entries != nil {
			return errors.New("sequence documents use values only")
		}
	case "set":
		if d.Values != nil || d.Entries != nil {
			return errors.New("set documents use members only")
		}
	case "map", "table":
		if d.Values != nil || d.Members != nil {
			return fmt.Errorf("%s documents use entries only", d.Kind)
		}
		for i, e := range d.Entries {
			if e.Key == nil {
				return fmt.Errorf("entry %d has no key", i)
			}
			if e.Present && e.Value != nil {
				return fmt.Errorf("entry %d sets both value and present", i)
			}
		}
	default:
		return fmt.Errorf("unknown container kind %q", d.Kind)
	}
	return nil
}

// Build materializes the document as a live container.
func (d *Document) Build() (tablex.Container, error) {
	switch d.Kind {
	case "sequence":
		return tablex.SequenceOf(d.Values...)
	case "set":
		return tablex.SetOf(d.Members...)
	case "map", "table":
		b := tablex.NewTableBuilder()
		for _, e := range d.Entries {
			if e.Present {
				b.Mark(e.Key)
			} else {
				b.Put(e.Key, e.Value)
			}
		}
		tab, err := b.Build()
		if err != nil {
			return nil, err
		}
		if d.Kind == "map" {
			return tablex.AsMap(tab), nil
		}
		return tab, nil
	}
	return nil, fmt.Errorf("unknown container kind %q", d.Kind)
}

// FromContainer encodes a live container back into a document. Sequences are
// written as ordered values when the sequence invariant holds; everything
// else falls back to entry form, with sentinel values written as present.
func FromContainer(c tablex.Container) *Document {
	if seq, err := tablex.AsArray(c); err == nil {
		values := make([]any, 0, seq.Len())
		for v := range seq.Values() {
			if v == tablex.Present {
				values = append(values, nil)
			} else {
				values = append(values, v)
			}
		}
		if !containsNil(values) {
			return &Document{Kind: "sequence", Values: values}
		}
	}

	doc := &Document{Kind: "table"}
	for k, v := range tablex.AsMap(c).All() {
		e := Entry{Key: k}
		if v == tablex.Present {
			e.Present = true
		} else {
			e.Value = v
		}
		doc.Entries = append(doc.Entries, e)
	}
	return doc
}

func containsNil(values []any) bool {
	for _, v := range values {
		if v == nil {
			return true
		}
	}
	return false
}
