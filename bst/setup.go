// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Comparator - three way comparison returning negative, zero or
// positive as a is less than, equal to or greater than b
type Comparator[T any] func(a T, b T) int

// Node - a node in the tree, also the root of its own sub-tree
type Node[T any] struct {
	left  *Node[T] // left sub-tree
	right *Node[T] // right sub-tree
	data  T        // key, never overwritten
}

// Tree - type to hold the root node of a tree and its ordering
type Tree[T any] struct {
	root  *Node[T]
	order Comparator[T]
	count int
}

// NewLeaf - create a single node tree
//
// there is no empty tree, so the first key must be supplied here
func NewLeaf[T any](data T, order Comparator[T]) *Tree[T] {
	if nil == order {
		fault.Panic(fault.ErrNilComparator.Error())
	}
	return &Tree[T]{
		root:  newNode(data),
		order: order,
		count: 1,
	}
}

// allocate a new leaf node
func newNode[T any](data T) *Node[T] {
	return &Node[T]{
		data: data,
	}
}

// Data - the key held at the root
func (tree *Tree[T]) Data() T {
	return tree.root.data
}

// Order - the comparator supplied when the tree was created
func (tree *Tree[T]) Order() Comparator[T] {
	return tree.order
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Data - read the key from a node
func (p *Node[T]) Data() T {
	return p.data
}

// Left - the left sub-tree, ok is false if there is none
func (p *Node[T]) Left() (*Node[T], bool) {
	return p.left, nil != p.left
}

// Right - the right sub-tree, ok is false if there is none
func (p *Node[T]) Right() (*Node[T], bool) {
	return p.right, nil != p.right
}

// IsLeaf - true if the node has no sub-trees
func (p *Node[T]) IsLeaf() bool {
	return nil == p.left && nil == p.right
}
