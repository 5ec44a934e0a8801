// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package result is a generated GoMock package.
package result

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockConverter is a mock of Converter interface.
type MockConverter[From any, To any] struct {
	ctrl     *gomock.Controller
	recorder *MockConverterMockRecorder[From, To]
	isgomock struct{}
}

// MockConverterMockRecorder is the mock recorder for MockConverter.
type MockConverterMockRecorder[From any, To any] struct {
	mock *MockConverter[From, To]
}

// NewMockConverter creates a new mock instance.
func NewMockConverter[From any, To any](ctrl *gomock.Controller) *MockConverter[From, To] {
	mock := &MockConverter[From, To]{ctrl: ctrl}
	mock.recorder = &MockConverterMockRecorder[From, To]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConverter[From, To]) EXPECT() *MockConverterMockRecorder[From, To] {
	return m.recorder
}

// Convert mocks base method.
func (m *MockConverter[From, To]) Convert(arg0 From) (To, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Convert", arg0)
	ret0, _ := ret[0].(To)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Convert indicates an expected call of Convert.
func (mr *MockConverterMockRecorder[From, To]) Convert(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Convert", reflect.TypeOf((*MockConverter[From, To])(nil).Convert), arg0)
}
