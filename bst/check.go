// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckOrder - verify every key in a left sub-tree is less than its
// ancestor and every key in a right sub-tree is greater
func (tree *Tree[T]) CheckOrder() bool {
	return checkOrder(tree.order, tree.root, nil, nil)
}

// internal: consistency checker, lo and hi are the nearest ancestors
// the sub-tree must lie strictly between (nil if unbounded)
func checkOrder[T any](order Comparator[T], p *Node[T], lo *Node[T], hi *Node[T]) bool {
	if nil == p {
		return true
	}
	if nil != lo && order(p.data, lo.data) <= 0 {
		return false
	}
	if nil != hi && order(p.data, hi.data) >= 0 {
		return false
	}
	return checkOrder(order, p.left, lo, p) && checkOrder(order, p.right, p, hi)
}
