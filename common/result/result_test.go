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
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type errorCode int

const undefined errorCode = 0

func f(b bool) Result[bool, errorCode] {
	if b {
		return Ok[errorCode](true)
	}
	return FromUnexpected[bool](NewUnexpected(undefined))
}

type testData struct {
	first  int64
	second int64
}

func g(b bool, first, second int64) Result[testData, errorCode] {
	if b {
		return Err[testData](undefined)
	}
	return Ok[errorCode](testData{first, second})
}

// requireViolation runs op and checks that it reports a contract violation
// for the given operation.
func requireViolation(t *testing.T, op string, action func()) {
	t.Helper()
	defer func() {
		t.Helper()
		violation, ok := recover().(*ContractViolation)
		require.True(t, ok, "expected a contract violation")
		require.Equal(t, op, violation.Op)
	}()
	action()
}

// requireBadAccess runs action and checks that it panics with a bad access
// carrying the given error payload.
func requireBadAccess[E any](t *testing.T, want E, action func()) {
	t.Helper()
	defer func() {
		t.Helper()
		issue, ok := recover().(error)
		require.True(t, ok, "expected a bad access panic")
		var access *BadAccessError[E]
		require.ErrorAs(t, issue, &access)
		require.Equal(t, want, access.Err)
	}()
	action()
}

func TestResult_ZeroValue_HoldsZeroError(t *testing.T) {
	var r Result[bool, errorCode]
	require.False(t, r.HasValue())
	require.Equal(t, undefined, r.Err())
}

func TestResult_Ok_ProducesResultWithValue(t *testing.T) {
	r := Ok[errorCode](42)
	require.True(t, r.HasValue())
	value, err := r.Get()
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.Equal(t, 42, r.MustGet())
}

func TestResult_Err_ProducesResultWithError(t *testing.T) {
	r := Err[int](errorCode(7))
	require.False(t, r.HasValue())
	require.Equal(t, errorCode(7), r.Err())
	require.True(t, EqualUnexpected(NewUnexpected(errorCode(7)), r.Unexpected()))
}

func TestResult_ValueFunction_ProducesValue(t *testing.T) {
	r := f(true)
	require.True(t, r.HasValue())
	require.True(t, r.MustGet())
}

func TestResult_ErrorFunction_ProducesUndefined(t *testing.T) {
	r := f(false)
	require.False(t, r.HasValue())
	require.Equal(t, undefined, r.Err())

	_, err := r.Get()
	require.ErrorIs(t, err, ErrBadAccess)
	var access *BadAccessError[errorCode]
	require.ErrorAs(t, err, &access)
	require.Equal(t, undefined, access.Err)
	requireBadAccess(t, undefined, func() { r.MustGet() })
}

func TestResult_LargerPayload_CanBeStoredAndReplaced(t *testing.T) {
	r := g(true, 1, 2)
	require.False(t, r.HasValue())
	require.Equal(t, undefined, r.Err())
	require.PanicsWithError(t, "bad result access: result holds error 0", func() { r.MustGet() })
	requireBadAccess(t, undefined, func() { r.MustGet() })

	r = g(false, 2, 3)
	require.True(t, r.HasValue())
	require.Equal(t, int64(2), r.MustGet().first)
	require.Equal(t, int64(3), r.MustGet().second)
}

func TestResult_Of_ConvertsValueErrorPairs(t *testing.T) {
	r := Of(12, nil)
	require.True(t, r.HasValue())
	require.Equal(t, 12, r.MustGet())

	r = Of(12, io.EOF)
	require.False(t, r.HasValue())
	require.ErrorIs(t, r.Err(), io.EOF)
}

func TestResult_Get_BadAccessUnwrapsErrorPayloads(t *testing.T) {
	issue := fmt.Errorf("test error")
	_, err := Err[int](issue).Get()
	require.ErrorIs(t, err, ErrBadAccess)
	require.ErrorIs(t, err, issue)
	require.Contains(t, err.Error(), "test error")
}

func TestResult_Get_BadAccessOfNonErrorPayloadHasNoCause(t *testing.T) {
	_, err := Err[int]("broken").Get()
	require.Nil(t, errors.Unwrap(err))
	require.Equal(t, "bad result access: result holds error broken", err.Error())
}

func TestResult_Ref_ProvidesMutableAccessToValue(t *testing.T) {
	r := Ok[errorCode](testData{1, 2})
	ref, err := r.Ref()
	require.NoError(t, err)
	ref.first = 5
	require.Equal(t, testData{5, 2}, r.MustGet())
}

func TestResult_Ref_FailsOnError(t *testing.T) {
	r := Err[testData](errorCode(3))
	ref, err := r.Ref()
	require.Nil(t, ref)
	require.ErrorIs(t, err, ErrBadAccess)
}

func TestResult_ErrRef_ProvidesMutableAccessToError(t *testing.T) {
	r := Err[bool](errorCode(1))
	*r.ErrRef() = 2
	require.Equal(t, errorCode(2), r.Err())
}

func TestResult_ErrorAccessors_ReportViolationOnValue(t *testing.T) {
	r := Ok[errorCode](true)
	requireViolation(t, "Err", func() { r.Err() })
	requireViolation(t, "ErrRef", func() { r.ErrRef() })
	requireViolation(t, "Unexpected", func() { r.Unexpected() })
}

func TestResult_Copy_PreservesAlternativeAndPayload(t *testing.T) {
	tests := map[string]Result[int, string]{
		"value": Ok[string](1),
		"error": Err[int]("failed"),
	}
	for name, original := range tests {
		t.Run(name, func(t *testing.T) {
			duplicate := original
			require.Equal(t, original.HasValue(), duplicate.HasValue())
			require.True(t, Equal(original, duplicate))
			require.Equal(t, original.String(), duplicate.String())
		})
	}
}

func TestResult_Take_LeavesSourceWithZeroPayload(t *testing.T) {
	src := Ok[string]([]int{1, 2, 3})
	dst := src.Take()
	require.Equal(t, []int{1, 2, 3}, dst.MustGet())
	require.True(t, src.HasValue())
	require.Nil(t, src.MustGet())

	errSrc := Err[int]("failed")
	errDst := errSrc.Take()
	require.Equal(t, "failed", errDst.Err())
	require.False(t, errSrc.HasValue())
	require.Empty(t, errSrc.Err())
}

func TestResult_Transitions_ReleaseInactiveAlternative(t *testing.T) {
	r := Ok[*testData](&testData{})
	r.Assign(Err[*testData, *testData](&testData{1, 1}))
	require.Nil(t, r.value)

	r.Assign(Ok[*testData](&testData{2, 2}))
	require.Nil(t, r.err)
}

func TestResult_Equal_ComparesAlternativeAndPayload(t *testing.T) {
	require.True(t, Equal(Ok[int](1), Ok[int](1)))
	require.False(t, Equal(Ok[int](1), Ok[int](2)))
	require.True(t, Equal(Err[int](1), Err[int](1)))
	require.False(t, Equal(Err[int](1), Err[int](2)))
	// same payload in different alternatives
	require.False(t, Equal(Ok[int](1), Err[int](1)))
}

func TestResult_String_NamesAlternative(t *testing.T) {
	require.Equal(t, "ok(12)", Ok[string](12).String())
	require.Equal(t, "unexpected(boom)", Err[int]("boom").String())
}
