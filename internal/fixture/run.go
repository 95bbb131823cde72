package fixture

import (
	"fmt"

	"github.com/comalice/tablex"
)

// Run executes the case against the bridge and reports the first deviation
// from the expected outcome. A nil return means the case passed.
func (c *Case) Run() error {
	in, err := c.Input.Build()
	if err != nil {
		return fmt.Errorf("build input: %w", err)
	}

	switch c.Op {
	case OpFirstKey, OpFirstValue:
		return c.runFirst(in)
	}

	out, err := c.runConversion(in)
	if c.WantErr != "" {
		if err == nil {
			return fmt.Errorf("want %s error, conversion succeeded", c.WantErr)
		}
		return c.checkErrClass(err)
	}
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}
	if c.Want == nil {
		return nil
	}

	want, err := c.Want.Build()
	if err != nil {
		return fmt.Errorf("build want: %w", err)
	}
	return compareEntries(want, out)
}

func (c *Case) runConversion(in tablex.Container) (tablex.Container, error) {
	switch c.Op {
	case OpAsObject:
		return tablex.AsObject(in), nil
	case OpAsMap:
		return tablex.AsMap(in), nil
	case OpAsSet:
		return tablex.AsSet(in)
	case OpAsArray:
		return tablex.AsArray(in)
	}
	return nil, fmt.Errorf("unknown op %q", c.Op)
}

func (c *Case) runFirst(in tablex.Container) error {
	var got any
	var ok bool
	if c.Op == OpFirstKey {
		got, ok = tablex.FirstKey(in)
	} else {
		got, ok = tablex.FirstValue(in)
	}

	if c.WantNone {
		if ok {
			return fmt.Errorf("want no value, got %v", got)
		}
		return nil
	}
	if !ok {
		return fmt.Errorf("want a value, got none")
	}
	// No ordering guarantee: the result only has to belong to the input.
	for k, v := range tablex.AsMap(in).All() {
		if c.Op == OpFirstKey && got == k {
			return nil
		}
		if c.Op == OpFirstValue && got == v {
			return nil
		}
	}
	return fmt.Errorf("%s returned %v, which the input does not contain", c.Op, got)
}

func (c *Case) checkErrClass(err error) error {
	switch c.WantErr {
	case ErrClassPrecondition:
		if !tablex.IsPreconditionViolation(err) {
			return fmt.Errorf("want PreconditionViolation, got %v", err)
		}
	case ErrClassInvalidSequence:
		if !tablex.IsInvalidSequenceKeys(err) {
			return fmt.Errorf("want InvalidSequenceKeys, got %v", err)
		}
	}
	return nil
}

func compareEntries(want, got tablex.Container) error {
	wm := tablex.AsMap(want)
	gm := tablex.AsMap(got)
	if wm.Len() != gm.Len() {
		return fmt.Errorf("entry count: want %d, got %d", wm.Len(), gm.Len())
	}
	for k, v := range wm.All() {
		gv, ok := gm.Get(k)
		if !ok {
			return fmt.Errorf("missing key %v", k)
		}
		if gv != v {
			return fmt.Errorf("key %v: want %v, got %v", k, v, gv)
		}
	}
	return nil
}
