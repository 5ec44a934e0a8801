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

// Assign replaces the content of r by a copy of the content of src. Depending
// on the alternatives held by r and src, either the active payload is
// overwritten or the alternative of r is switched; in the latter case the
// payload previously held by r is released. Copying payloads cannot fail, so
// no intermediate copy is needed.
func (r *Result[T, E]) Assign(src Result[T, E]) {
	switch {
	case r.hasValue && src.hasValue:
		r.value = src.value
	case !r.hasValue && !src.hasValue:
		r.err = src.err
	case r.hasValue:
		r.setError(src.err)
	default:
		r.setValue(src.value)
	}
}

// MoveFrom moves the content of src into r. Afterwards src keeps its
// alternative with the payload reset to its zero value. Moving a Result into
// itself has no effect.
func (r *Result[T, E]) MoveFrom(src *Result[T, E]) {
	if r == src {
		return
	}
	r.Assign(src.Take())
}

// AssignFrom replaces the content of dst by the content of src converted
// through the given converters. The new content is built before dst is
// touched: if the conversion fails, the error is returned and dst is left
// unchanged.
func AssignFrom[T, E, U, G any](
	dst *Result[T, E],
	src Result[U, G],
	valueConv Converter[U, T],
	errConv Converter[G, E],
) error {
	next, err := Convert(src, valueConv, errConv)
	if err != nil {
		return err
	}
	dst.Assign(next)
	return nil
}
