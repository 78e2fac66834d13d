// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock test doubles for the bst package
//
// This file is maintained by hand, not generated: the mockgen release
// pinned in go.mod cannot generate mocks for generic interfaces.  Keep
// it in step with bst.Visitor when that interface changes.
package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/bstree/bst"
)

// MockVisitor is a mock of bst.Visitor[int]
type MockVisitor struct {
	ctrl     *gomock.Controller
	recorder *MockVisitorMockRecorder
}

// MockVisitorMockRecorder is the mock recorder for MockVisitor
type MockVisitorMockRecorder struct {
	mock *MockVisitor
}

// NewMockVisitor creates a new mock instance
func NewMockVisitor(ctrl *gomock.Controller) *MockVisitor {
	mock := &MockVisitor{ctrl: ctrl}
	mock.recorder = &MockVisitorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockVisitor) EXPECT() *MockVisitorMockRecorder {
	return m.recorder
}

// Enter mocks base method
func (m *MockVisitor) Enter(node *bst.Node[int]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Enter", node)
}

// Enter indicates an expected call of Enter
func (mr *MockVisitorMockRecorder) Enter(node interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enter", reflect.TypeOf((*MockVisitor)(nil).Enter), node)
}

// Exit mocks base method
func (m *MockVisitor) Exit(node *bst.Node[int]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Exit", node)
}

// Exit indicates an expected call of Exit
func (mr *MockVisitorMockRecorder) Exit(node interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exit", reflect.TypeOf((*MockVisitor)(nil).Exit), node)
}
