// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// ContainsVisitor - records whether any visited node holds key
type ContainsVisitor[T any] struct {
	NoOp[T]
	key   T
	order Comparator[T]
	found bool
}

// NewContainsVisitor - create a visitor looking for key, equality is
// decided by order
func NewContainsVisitor[T any](key T, order Comparator[T]) *ContainsVisitor[T] {
	return &ContainsVisitor[T]{
		key:   key,
		order: order,
	}
}

// Exit - once found stays found
func (v *ContainsVisitor[T]) Exit(node *Node[T]) {
	if 0 == v.order(v.key, node.data) {
		v.found = true
	}
}

// Found - true if the key was seen
func (v *ContainsVisitor[T]) Found() bool {
	return v.found
}

// Contains - true if e is in the tree
//
// visits every node rather than descending by key
func (tree *Tree[T]) Contains(e T) bool {
	v := NewContainsVisitor(e, tree.order)
	tree.Accept(v)
	return v.Found()
}
