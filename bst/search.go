// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// search - find the node where key either already is or would be
// attached
//
// stops at a node whose data equals key, or at the first node that has
// no child on the side the key belongs to
func search[T any](order Comparator[T], key T, p *Node[T]) *Node[T] {
	for {
		c := order(key, p.data)
		switch {
		case c < 0 && nil != p.left: // key < p.data
			p = p.left
		case c > 0 && nil != p.right: // key > p.data
			p = p.right
		default:
			return p
		}
	}
}
