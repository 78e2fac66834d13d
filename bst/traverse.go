// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Visitor - receives each node of a depth-first traversal twice: Enter
// before its sub-trees are visited and Exit after
type Visitor[T any] interface {
	Enter(node *Node[T])
	Exit(node *Node[T])
}

// NoOp - embed to get empty Enter and Exit hooks so that a visitor
// only needs to implement the hook it uses
type NoOp[T any] struct{}

// Enter - does nothing
func (NoOp[T]) Enter(*Node[T]) {}

// Exit - does nothing
func (NoOp[T]) Exit(*Node[T]) {}

// Hooks - adapt a pair of optional functions to a Visitor, a nil
// function is not called
type Hooks[T any] struct {
	OnEnter func(node *Node[T])
	OnExit  func(node *Node[T])
}

// Enter - call OnEnter if set
func (h Hooks[T]) Enter(node *Node[T]) {
	if nil != h.OnEnter {
		h.OnEnter(node)
	}
}

// Exit - call OnExit if set
func (h Hooks[T]) Exit(node *Node[T]) {
	if nil != h.OnExit {
		h.OnExit(node)
	}
}

// Accept - walk the whole tree depth first, left before right
func (tree *Tree[T]) Accept(v Visitor[T]) {
	tree.root.Accept(v)
}

// Accept - walk the sub-tree rooted at this node
func (p *Node[T]) Accept(v Visitor[T]) {
	v.Enter(p)
	if nil != p.left {
		p.left.Accept(v)
	}
	if nil != p.right {
		p.right.Accept(v)
	}
	v.Exit(p)
}
