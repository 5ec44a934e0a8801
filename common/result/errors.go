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
	"errors"
	"fmt"
)

var (
	// ErrBadAccess is matched by every *BadAccessError, independent of the
	// error payload type.
	ErrBadAccess = errors.New("bad result access")

	// ErrNotConvertible is returned by the implicit conversions if a payload
	// is not assignable to the target payload type.
	ErrNotConvertible = errors.New("payload is not implicitly convertible")

	// ErrAmbiguousConversion is returned if a conversion could either unwrap
	// a Result or Unexpected or take it as a payload as a whole.
	ErrAmbiguousConversion = errors.New("ambiguous result conversion")

	// ErrNarrowing is returned by numeric conversions that would lose
	// information.
	ErrNarrowing = errors.New("narrowing numeric conversion")
)

// BadAccessError is produced when the value of a Result holding an error is
// accessed. It carries a copy of the error payload such that callers taking
// the unchecked path can still recover the domain error.
type BadAccessError[E any] struct {
	Err E
}

func (e *BadAccessError[E]) Error() string {
	return fmt.Sprintf("%v: result holds error %v", ErrBadAccess, e.Err)
}

func (e *BadAccessError[E]) Is(target error) bool {
	return target == ErrBadAccess
}

// Unwrap exposes the error payload to errors.Is and errors.As if the payload
// is itself an error.
func (e *BadAccessError[E]) Unwrap() error {
	if err, ok := any(e.Err).(error); ok {
		return err
	}
	return nil
}

// ContractViolation describes a programming error in the use of a Result or
// Unexpected, for instance reading the error of a Result holding a value.
// It is not a domain error and should not be handled as one.
type ContractViolation struct {
	Op      string
	Message string
}

func (v *ContractViolation) Error() string {
	return fmt.Sprintf("result contract violation in %s: %s", v.Op, v.Message)
}

// violate reports a contract violation through the handler selected by the
// build configuration. It does not return.
func violate(op, message string) {
	onViolation(&ContractViolation{Op: op, Message: message})
	// not reached with the handlers of this package
	panic(&ContractViolation{Op: op, Message: message})
}
