package host

import "fmt"

// Narrow asserts that v holds a T and returns it. The ok flag is false on a
// mismatch; Narrow never panics, matching the type-narrowing predicate
// contract rather than a cast.
func Narrow[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// Check turns a failed precondition into an error carrying the caller's
// message. It exists so transpiled assertion sites have one spelling.
func Check(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("check failed: "+format, args...)
}
