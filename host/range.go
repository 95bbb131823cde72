package host

import (
	"fmt"
	"iter"
)

// Range iterates the inclusive numeric range from..to, advancing by step.
// A negative step counts down; from beyond to (in the step's direction)
// yields an empty range. A zero step is a contract violation.
func Range(from, to, step int64) (iter.Seq[int64], error) {
	if step == 0 {
		return nil, fmt.Errorf("range %d..%d: step must not be zero", from, to)
	}
	return func(yield func(int64) bool) {
		if step > 0 {
			for i := from; i <= to; i += step {
				if !yield(i) {
					return
				}
			}
			return
		}
		for i := from; i >= to; i += step {
			if !yield(i) {
				return
			}
		}
	}, nil
}
