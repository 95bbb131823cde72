package tablex

import (
	"fmt"

	"github.com/pkg/errors"
)

// PreconditionViolation reports a container that does not satisfy the
// invariant required by the requested view, such as a set conversion over
// non-sentinel values. It signals a programming bug upstream of the bridge,
// not a recoverable condition.
type PreconditionViolation struct {
	Op     string
	Key    any
	Value  any
	Reason string
}

func (e *PreconditionViolation) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s: precondition violation: %s (key %v, value %v)", e.Op, e.Reason, e.Key, e.Value)
	}
	return fmt.Sprintf("%s: precondition violation: %s", e.Op, e.Reason)
}

// InvalidSequenceKeys reports a key set that is not the gapless range
// {1, …, N} required for a sequence view. Exactly one of BadKey or Missing
// is set: BadKey is a key that is not a positive integer position, Missing
// is the smallest absent position.
type InvalidSequenceKeys struct {
	Op      string
	BadKey  any
	Missing int64
	Len     int
}

func (e *InvalidSequenceKeys) Error() string {
	if e.BadKey != nil {
		return fmt.Sprintf("%s: invalid sequence keys: key %v is not a sequence position", e.Op, e.BadKey)
	}
	return fmt.Sprintf("%s: invalid sequence keys: missing position %d of %d", e.Op, e.Missing, e.Len)
}

// Constructors attach a stack trace at the offending conversion call, since
// these errors mark malformed data reaching the bridge and the useful context
// is the caller, not the check.

func newPrecondition(op, reason string, key, value any) error {
	return errors.WithStack(&PreconditionViolation{Op: op, Key: key, Value: value, Reason: reason})
}

func newInvalidSequence(op string, badKey any, missing int64, n int) error {
	return errors.WithStack(&InvalidSequenceKeys{Op: op, BadKey: badKey, Missing: missing, Len: n})
}

// IsPreconditionViolation reports whether err carries a PreconditionViolation
// anywhere in its chain.
func IsPreconditionViolation(err error) bool {
	var pv *PreconditionViolation
	return errors.As(err, &pv)
}

// IsInvalidSequenceKeys reports whether err carries an InvalidSequenceKeys
// anywhere in its chain.
func IsInvalidSequenceKeys(err error) bool {
	var is *InvalidSequenceKeys
	return errors.As(err, &is)
}
