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
	"reflect"
	"strings"
)

//go:generate mockgen -source convert.go -destination convert_mocks.go -package result

// Converter converts payloads of one type into another. Conversions between
// Results of different payload types are performed by converters; implicit
// conversions use Assignable, explicit ones are provided by the caller.
type Converter[From, To any] interface {
	// Convert produces a To from the given value or fails. A failing
	// conversion must not have side effects on the source value.
	Convert(From) (To, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc[From, To any] func(From) (To, error)

func (f ConverterFunc[From, To]) Convert(value From) (To, error) {
	return f(value)
}

// Assignable returns the implicit conversion from From to To. It is offered
// for exactly the type pairs where Go allows assigning a From to a To, like a
// type implementing the interface To. All other conversions, including
// numeric ones, have to be explicit.
func Assignable[From, To any]() Converter[From, To] {
	return ConverterFunc[From, To](assign[From, To])
}

// assignable reports whether values of type From may be assigned to
// variables of type To. Only the types are inspected, never a payload.
func assignable[From, To any]() bool {
	return reflect.TypeOf((*From)(nil)).Elem().AssignableTo(reflect.TypeOf((*To)(nil)).Elem())
}

func assign[From, To any](value From) (To, error) {
	var zero To
	if !assignable[From, To]() {
		return zero, notConvertible[From, To]()
	}
	if res, ok := any(value).(To); ok {
		return res, nil
	}
	// a nil From interface becomes the nil To interface
	if any(value) == nil {
		return zero, nil
	}
	// unnamed types are assignable to named types of the same underlying type
	return reflect.ValueOf(value).Convert(reflect.TypeOf((*To)(nil)).Elem()).Interface().(To), nil
}

func notConvertible[From, To any]() error {
	return fmt.Errorf("%w: %s to %s", ErrNotConvertible, typeName[From](), typeName[To]())
}

// From creates a Result holding value implicitly converted to T. Values that
// are a Result or an Unexpected themselves are rejected with
// ErrAmbiguousConversion; use Rebind or FromUnexpectedOf for those.
func From[E, T, U any](value U) (Result[T, E], error) {
	return FromWith[E](value, Assignable[U, T]())
}

// FromWith creates a Result holding value converted to T by conv. The same
// restrictions as for From apply.
func FromWith[E, T, U any](value U, conv Converter[U, T]) (Result[T, E], error) {
	if isWrapper(value) {
		return Result[T, E]{}, fmt.Errorf("%w: %s used as value of %s", ErrAmbiguousConversion, typeName[U](), typeName[T]())
	}
	res, err := conv.Convert(value)
	if err != nil {
		return Result[T, E]{}, fmt.Errorf("failed to convert value: %w", err)
	}
	return Ok[E](res), nil
}

// FromUnexpectedOf creates a Result holding the error payload of u
// implicitly converted to E.
func FromUnexpectedOf[T, E, G any](u Unexpected[G]) (Result[T, E], error) {
	return FromUnexpectedWith[T](u, Assignable[G, E]())
}

// FromUnexpectedWith creates a Result holding the error payload of u
// converted to E by conv.
func FromUnexpectedWith[T, E, G any](u Unexpected[G], conv Converter[G, E]) (Result[T, E], error) {
	res, err := conv.Convert(u.value)
	if err != nil {
		return Result[T, E]{}, fmt.Errorf("failed to convert error: %w", err)
	}
	return failure[T](res), nil
}

// Rebind converts src into a Result of different payload types using
// implicit conversions for both alternatives. The conversion is only offered
// if both U is assignable to T and G is assignable to E, independent of the
// alternative held by src.
func Rebind[T, E, U, G any](src Result[U, G]) (Result[T, E], error) {
	if err := checkUnambiguous[T](src); err != nil {
		return Result[T, E]{}, err
	}
	if !assignable[U, T]() {
		return Result[T, E]{}, notConvertible[U, T]()
	}
	if !assignable[G, E]() {
		return Result[T, E]{}, notConvertible[G, E]()
	}
	return Convert(src, Assignable[U, T](), Assignable[G, E]())
}

// Convert converts src into a Result of different payload types. The active
// alternative of src is converted by the matching converter; the other one
// is not invoked.
//
// If src is itself a valid value of type T, it is unclear whether src should
// be unwrapped or become the new value as a whole. Such conversions, for
// instance to a Result[any, E], are rejected with ErrAmbiguousConversion.
func Convert[T, E, U, G any](src Result[U, G], valueConv Converter[U, T], errConv Converter[G, E]) (Result[T, E], error) {
	if err := checkUnambiguous[T](src); err != nil {
		return Result[T, E]{}, err
	}
	if src.hasValue {
		value, err := valueConv.Convert(src.value)
		if err != nil {
			return Result[T, E]{}, fmt.Errorf("failed to convert value: %w", err)
		}
		return Ok[E](value), nil
	}
	res, err := errConv.Convert(src.err)
	if err != nil {
		return Result[T, E]{}, fmt.Errorf("failed to convert error: %w", err)
	}
	return failure[T](res), nil
}

// checkUnambiguous rejects sources that are themselves a valid T.
func checkUnambiguous[T, U, G any](src Result[U, G]) error {
	if _, ok := any(src).(T); ok {
		return fmt.Errorf("%w: %s is a valid %s", ErrAmbiguousConversion, typeName[Result[U, G]](), typeName[T]())
	}
	return nil
}

func failure[T, E any](err E) Result[T, E] {
	var res Result[T, E]
	res.setError(err)
	return res
}

type wrapper interface {
	alternative()
}

func isWrapper(value any) bool {
	_, ok := value.(wrapper)
	return ok
}

func typeName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}
