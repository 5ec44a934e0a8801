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

import (
	"fmt"
	"unsafe"
)

// Unexpected marks a payload of type E as the error alternative of a Result.
// It is used when constructing a Result that should hold an error, such that
// the intent is explicit at the call site even if T and E are the same type:
//
//	return result.FromUnexpected[bool](result.NewUnexpected(errUndefined))
//
// An Unexpected is immutable through its value-receiver methods. E must carry
// information; zero-sized payload types are rejected by NewUnexpected.
type Unexpected[E any] struct {
	value E
}

// NewUnexpected wraps the given error payload. It reports a contract
// violation if E is a zero-sized type like struct{}.
func NewUnexpected[E any](e E) Unexpected[E] {
	if unsafe.Sizeof(e) == 0 {
		violate("NewUnexpected", fmt.Sprintf("zero-sized error type %T is not supported", e))
	}
	return Unexpected[E]{value: e}
}

// Value returns a copy of the wrapped error payload.
func (u Unexpected[E]) Value() E {
	return u.value
}

// Ref returns a reference to the wrapped error payload.
func (u *Unexpected[E]) Ref() *E {
	return &u.value
}

// EqualFunc compares the wrapped payloads of u and other using eq. It is the
// comparison to use for payload types that are not comparable with ==.
func (u Unexpected[E]) EqualFunc(other Unexpected[E], eq func(a, b E) bool) bool {
	return eq(u.value, other.value)
}

func (u Unexpected[E]) String() string {
	return fmt.Sprintf("unexpected(%v)", u.value)
}

// alternative marks Unexpected as one of the types that must never be taken
// as a plain payload by the converting constructors.
func (Unexpected[E]) alternative() {}

// EqualUnexpected reports whether a and b wrap equal payloads.
func EqualUnexpected[E comparable](a, b Unexpected[E]) bool {
	return a.value == b.value
}
