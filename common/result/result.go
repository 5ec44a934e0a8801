// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package result provides Result, a value holding exactly one of a
// successfully computed value of type T or an error payload of type E, and
// Unexpected, the tag marking a payload as the error alternative.
//
// A producer returns either outcome through a single declared type:
//
//	func parse(s string) result.Result[int, ParseError] {
//	   if s == "" {
//	      return result.Err[int](ParseError{Reason: "empty"})
//	   }
//	   return result.Ok[ParseError](len(s))
//	}
//
// and a consumer checks the discriminant before reading the active
// alternative:
//
//	if r := parse(in); r.HasValue() {
//	   use(r.MustGet())
//	} else {
//	   report(r.Err())
//	}
//
// Two kinds of failure are kept apart. The error payload E is ordinary data
// and is never raised automatically. Misuse of the accessors is not: reading
// the value of an error-holding Result yields a *BadAccessError carrying the
// error payload, while reading the error of a value-holding Result is a
// contract violation that panics, or terminates the process in builds using
// the resultabort tag.
//
// The zero Result holds the error alternative with the zero value of E.
// A Result is a value type; concurrent mutation of a single instance must be
// synchronized by the caller.
package result

import "fmt"

// Result holds either a value of type T or an error payload of type E. The
// slot of the inactive alternative is always kept at its zero value, such that
// no payload of the inactive alternative is retained.
type Result[T, E any] struct {
	value    T
	err      E
	hasValue bool
}

// Ok creates a Result holding the given value. The error type is listed first
// such that it is the only type parameter to be provided explicitly:
//
//	result.Ok[ErrorCode](true)
func Ok[E, T any](value T) Result[T, E] {
	var res Result[T, E]
	res.setValue(value)
	return res
}

// Err creates a Result holding the given error payload. It is equivalent to
// FromUnexpected(NewUnexpected(err)).
func Err[T, E any](err E) Result[T, E] {
	return FromUnexpected[T](NewUnexpected(err))
}

// FromUnexpected creates a Result holding the error wrapped by the given tag.
func FromUnexpected[T, E any](u Unexpected[E]) Result[T, E] {
	return failure[T](u.value)
}

// Of converts the conventional (value, error) pair into a Result. A non-nil
// error takes precedence over the value.
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

// setValue and setError are the only state transitions of a Result. Each of
// them releases the alternative that is no longer active.
func (r *Result[T, E]) setValue(value T) {
	var zero E
	r.err = zero
	r.value = value
	r.hasValue = true
}

func (r *Result[T, E]) setError(err E) {
	var zero T
	r.value = zero
	r.err = err
	r.hasValue = false
}

// HasValue reports whether the Result holds a value.
func (r Result[T, E]) HasValue() bool {
	return r.hasValue
}

// Get returns a copy of the contained value. If the Result holds an error, a
// *BadAccessError carrying that error is returned instead.
func (r Result[T, E]) Get() (T, error) {
	if !r.hasValue {
		var zero T
		return zero, &BadAccessError[E]{Err: r.err}
	}
	return r.value, nil
}

// Ref returns a reference to the contained value, which may be used to
// modify the value in place. If the Result holds an error, a *BadAccessError
// carrying that error is returned instead.
func (r *Result[T, E]) Ref() (*T, error) {
	if !r.hasValue {
		return nil, &BadAccessError[E]{Err: r.err}
	}
	return &r.value, nil
}

// MustGet returns the contained value. If the Result holds an error, it
// panics with a *BadAccessError carrying that error.
func (r Result[T, E]) MustGet() T {
	if !r.hasValue {
		panic(&BadAccessError[E]{Err: r.err})
	}
	return r.value
}

// Err returns a copy of the contained error payload. Calling it on a Result
// holding a value is a contract violation.
func (r Result[T, E]) Err() E {
	if r.hasValue {
		violate("Err", "result must not hold a value when taking an error")
	}
	return r.err
}

// ErrRef returns a reference to the contained error payload. Calling it on a
// Result holding a value is a contract violation.
func (r *Result[T, E]) ErrRef() *E {
	if r.hasValue {
		violate("ErrRef", "result must not hold a value when taking an error")
	}
	return &r.err
}

// Unexpected returns the contained error payload wrapped in its tag. Calling
// it on a Result holding a value is a contract violation.
func (r Result[T, E]) Unexpected() Unexpected[E] {
	if r.hasValue {
		violate("Unexpected", "result must not hold a value when taking an error")
	}
	return Unexpected[E]{value: r.err}
}

// Take moves the content out of r. The returned Result has the content r had
// before, while r keeps its discriminant but has its payload reset to the
// zero value.
func (r *Result[T, E]) Take() Result[T, E] {
	res := *r
	if r.hasValue {
		r.setValue(*new(T))
	} else {
		r.setError(*new(E))
	}
	return res
}

func (r Result[T, E]) String() string {
	if r.hasValue {
		return fmt.Sprintf("ok(%v)", r.value)
	}
	return fmt.Sprintf("unexpected(%v)", r.err)
}

// alternative marks Result as one of the types that must never be taken as a
// plain payload by the converting constructors.
func (Result[T, E]) alternative() {}

// Equal reports whether a and b hold the same alternative with equal
// payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.hasValue != b.hasValue {
		return false
	}
	if a.hasValue {
		return a.value == b.value
	}
	return a.err == b.err
}
