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
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number covers all types numeric converters operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric returns a checked conversion between numeric types. It only
// succeeds if the converted value represents the source value exactly, so
// it can be used wherever a conversion must not silently narrow. Converting
// NaN succeeds only if the target is a floating point type.
func Numeric[From, To Number]() Converter[From, To] {
	return ConverterFunc[From, To](func(value From) (To, error) {
		if value != value {
			if isFloat[To]() {
				return To(value), nil
			}
			return 0, fmt.Errorf("%w: NaN does not fit into %s", ErrNarrowing, typeName[To]())
		}
		// out-of-range float to integer conversions are implementation-specific
		if isFloat[From]() && !isFloat[To]() && !fitsInteger[To](float64(value)) {
			return 0, fmt.Errorf("%w: %v does not fit into %s", ErrNarrowing, value, typeName[To]())
		}
		res := To(value)
		if From(res) != value || (value < 0) != (res < 0) {
			return 0, fmt.Errorf("%w: %v does not fit into %s", ErrNarrowing, value, typeName[To]())
		}
		return res, nil
	})
}

func isFloat[N Number]() bool {
	half := 0.5
	return N(half) != 0
}

// fitsInteger reports whether the integer part of value is within the range
// of the integer type N.
func fitsInteger[N Number](value float64) bool {
	var zero N
	bits := int(8 * unsafe.Sizeof(zero))
	if zero-1 < zero {
		limit := math.Ldexp(1, bits-1)
		return value >= -limit && value < limit
	}
	return value > -1 && value < math.Ldexp(1, bits)
}

// Cast returns the unchecked conversion between numeric types, following
// Go's conversion rules including truncation and wrap-around.
func Cast[From, To Number]() Converter[From, To] {
	return ConverterFunc[From, To](func(value From) (To, error) {
		return To(value), nil
	})
}
