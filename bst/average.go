// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/bstree/fault"
)

// Number - key types that can be averaged
type Number interface {
	constraints.Integer | constraints.Float
}

// AverageVisitor - accumulates a running sum and count of keys
type AverageVisitor[T Number] struct {
	NoOp[T]
	count int
	sum   float64
}

// Enter - add the node's key
func (v *AverageVisitor[T]) Enter(node *Node[T]) {
	v.count += 1
	v.sum += float64(node.data)
}

// Count - number of keys seen
func (v *AverageVisitor[T]) Count() int {
	return v.count
}

// Sum - total of keys seen
func (v *AverageVisitor[T]) Sum() float64 {
	return v.sum
}

// Average - mean of the keys truncated (not rounded) to two decimal
// places, fault.ErrEmptyTree if nothing was visited
func (v *AverageVisitor[T]) Average() (float64, error) {
	if 0 == v.count {
		return 0, fault.ErrEmptyTree
	}
	avg := v.sum / float64(v.count)
	return math.Floor(avg*100) / 100, nil
}

// Average - average key of a numeric tree
func Average[T Number](tree *Tree[T]) (float64, error) {
	v := &AverageVisitor[T]{}
	tree.Accept(v)
	return v.Average()
}
