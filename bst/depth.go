// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// MaxDepthVisitor - tracks the greatest number of edges from the root
// to any visited node
type MaxDepthVisitor[T any] struct {
	maxDepth int
	scratch  int
}

// Enter - record the depth of this node then move one level down
func (v *MaxDepthVisitor[T]) Enter(*Node[T]) {
	if v.scratch > v.maxDepth {
		v.maxDepth = v.scratch
	}
	v.scratch += 1
}

// Exit - back up one level
func (v *MaxDepthVisitor[T]) Exit(*Node[T]) {
	v.scratch -= 1
}

// MaxDepth - a single node tree has depth zero
func (v *MaxDepthVisitor[T]) MaxDepth() int {
	return v.maxDepth
}

// MaxDepth - the depth of the deepest node in the tree
func (tree *Tree[T]) MaxDepth() int {
	v := &MaxDepthVisitor[T]{}
	tree.Accept(v)
	return v.MaxDepth()
}
