// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

// ValueOr returns the contained value or fallback if r holds an error.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.hasValue {
		return r.value
	}
	return fallback
}

// ErrorOr returns the contained error payload or fallback if r holds a value.
func (r Result[T, E]) ErrorOr(fallback E) E {
	if r.hasValue {
		return fallback
	}
	return r.err
}

// Map applies fn to the value of r. Errors are passed on unchanged.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.hasValue {
		return Ok[E](fn(r.value))
	}
	return failure[U](r.err)
}

// MapError applies fn to the error payload of r. Values are passed on
// unchanged.
func MapError[T, E, G any](r Result[T, E], fn func(E) G) Result[T, G] {
	if r.hasValue {
		return Ok[G](r.value)
	}
	return failure[T](fn(r.err))
}

// AndThen continues with fn if r holds a value and passes on the error
// otherwise.
func AndThen[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.hasValue {
		return fn(r.value)
	}
	return failure[U](r.err)
}

// OrElse recovers from an error through fn. Values are passed on unchanged.
func OrElse[T, E, G any](r Result[T, E], fn func(E) Result[T, G]) Result[T, G] {
	if r.hasValue {
		return Ok[G](r.value)
	}
	return fn(r.err)
}
