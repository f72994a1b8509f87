// File: result.go
// Title: Result Container
// Description: A two-variant container holding either a success value or an
//              error value. Every pipeline stage emits a sequence of Results
//              instead of stopping at the first failure.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Drop unused Match and Map

package result

// Result holds either a value of type T or an error of type E, never both.
// The zero Result is an Err carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a failed Result
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether r holds a value
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value. The second return is false for an Err,
// in which case the first is the zero T.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the error value. The second return is false for an Ok.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Values returns the values of all Ok results in order
func Values[T, E any](rs []Result[T, E]) []T {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.ok {
			out = append(out, r.value)
		}
	}
	return out
}

// Errors returns the errors of all Err results in order
func Errors[T, E any](rs []Result[T, E]) []E {
	var out []E
	for _, r := range rs {
		if !r.ok {
			out = append(out, r.err)
		}
	}
	return out
}

// AllOk reports whether no result in rs is an Err
func AllOk[T, E any](rs []Result[T, E]) bool {
	for _, r := range rs {
		if !r.ok {
			return false
		}
	}
	return true
}
