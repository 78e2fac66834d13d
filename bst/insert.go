// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Insert - add a key by recursive descent
//
// returns the same tree so that calls can be chained, or
// fault.ErrDuplicateKey if the key is already present
func (tree *Tree[T]) Insert(e T) (*Tree[T], error) {
	err := insert(tree.order, e, tree.root)
	if nil != err {
		return tree, err
	}
	tree.count += 1
	return tree, nil
}

// internal routine for insert
//
// p is never nil, an absent child is replaced by a new leaf
func insert[T any](order Comparator[T], e T, p *Node[T]) error {
	c := order(e, p.data)
	switch {
	case c < 0: // e < p.data
		if nil != p.left {
			return insert(order, e, p.left)
		}
		p.left = newNode(e)
	case c > 0: // e > p.data
		if nil != p.right {
			return insert(order, e, p.right)
		}
		p.right = newNode(e)
	default:
		return fault.ErrDuplicateKey
	}
	return nil
}

// InsertIterative - add a key by first locating the attachment node
// with a loop and then linking a new leaf to it
//
// same contract as Insert
func (tree *Tree[T]) InsertIterative(e T) (*Tree[T], error) {
	p := search(tree.order, e, tree.root)

	c := tree.order(e, p.data)
	switch {
	case c < 0:
		p.left = newNode(e)
	case c > 0:
		p.right = newNode(e)
	default:
		return tree, fault.ErrDuplicateKey
	}
	tree.count += 1
	return tree, nil
}

// MustInsert - Insert that panics on a duplicate key, for building
// trees with chained calls
func (tree *Tree[T]) MustInsert(e T) *Tree[T] {
	_, err := tree.Insert(e)
	fault.PanicIfError("insert", err)
	return tree
}

// MustInsertIterative - InsertIterative that panics on a duplicate key
func (tree *Tree[T]) MustInsertIterative(e T) *Tree[T] {
	_, err := tree.InsertIterative(e)
	fault.PanicIfError("iterative insert", err)
	return tree
}
