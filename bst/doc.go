// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree over any type with
// a caller supplied total order
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Keys are unique, inserting a key that compares equal to an existing
// key fails with fault.ErrDuplicateKey and leaves the tree unchanged.
// There is no delete and no rebalancing, so the shape of a tree is
// fixed entirely by its insertion order.
//
// Derived values (membership, average, maximum depth) are computed by
// visitors driven from a single depth-first traversal that calls
// Enter on the way down and Exit on the way back up.
package bst
