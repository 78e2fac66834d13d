// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

func intCompare(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// 10 with 12, 5, 3 added recursively
func smallTree() *bst.Tree[int] {
	return bst.NewLeaf(10, intCompare).
		MustInsert(12).MustInsert(5).MustInsert(3)
}

func TestNewLeaf(t *testing.T) {
	tree := bst.NewLeaf(42, intCompare)

	assert.Equal(t, 42, tree.Data(), "root data")
	assert.Equal(t, 1, tree.Count(), "count")
	assert.True(t, tree.Root().IsLeaf(), "single node is not a leaf")

	_, ok := tree.Root().Left()
	assert.False(t, ok, "leaf has a left sub-tree")
	_, ok = tree.Root().Right()
	assert.False(t, ok, "leaf has a right sub-tree")

	assert.Equal(t, "42", tree.String(), "string")
	assert.Equal(t, 0, tree.Order()(7, 7), "order not retained")
}

func TestNewLeafNilComparator(t *testing.T) {
	assert.Panics(t, func() {
		bst.NewLeaf[int](1, nil)
	}, "nil comparator accepted")
}

func TestInsertReturnsSameTree(t *testing.T) {
	tree := bst.NewLeaf(10, intCompare)

	r, err := tree.Insert(5)
	assert.Nil(t, err, "insert error")
	assert.Same(t, tree, r, "recursive insert returned a different tree")

	r, err = tree.InsertIterative(15)
	assert.Nil(t, err, "iterative insert error")
	assert.Same(t, tree, r, "iterative insert returned a different tree")

	assert.Equal(t, 3, tree.Count(), "count")
}

func TestInsertShape(t *testing.T) {
	tree := smallTree()

	root := tree.Root()
	l, ok := root.Left()
	assert.True(t, ok, "missing left")
	assert.Equal(t, 5, l.Data(), "left data")

	r, ok := root.Right()
	assert.True(t, ok, "missing right")
	assert.Equal(t, 12, r.Data(), "right data")
	assert.True(t, r.IsLeaf(), "12 has children")

	ll, ok := l.Left()
	assert.True(t, ok, "missing left of left")
	assert.Equal(t, 3, ll.Data(), "left of left data")
}

func TestDumpPreorder(t *testing.T) {
	tree := smallTree()
	assert.Equal(t, "10, 5, 3, 12", tree.DumpPreorder(), "preorder")
	assert.Equal(t, "10, 5, 3, 12", tree.String(), "string")

	tree.MustInsert(4)
	assert.Equal(t, "10, 5, 3, 4, 12", tree.String(), "preorder after adding 4")
}

func TestDumpPostorder(t *testing.T) {
	tree := smallTree()
	assert.Equal(t, "3, 5, 12, 10", tree.DumpPostorder(), "postorder")

	leaf := bst.NewLeaf(7, intCompare)
	assert.Equal(t, "7", leaf.DumpPostorder(), "single node postorder")
}

func TestInsertIterative(t *testing.T) {
	tree := smallTree()

	_, err := tree.InsertIterative(9)
	assert.Nil(t, err, "iterative insert of 9")
	_, err = tree.Insert(6)
	assert.Nil(t, err, "insert of 6")

	assert.Equal(t, "10, 5, 3, 9, 6, 12", tree.String(), "mixed insertion")
}

func TestInsertDuplicate(t *testing.T) {
	insertions := []struct {
		name   string
		insert func(*bst.Tree[int], int) (*bst.Tree[int], error)
	}{
		{"recursive", (*bst.Tree[int]).Insert},
		{"iterative", (*bst.Tree[int]).InsertIterative},
	}

	for _, ins := range insertions {
		for _, key := range []int{10, 12, 5, 3} {
			tree := smallTree()
			before := tree.DumpPreorder()

			_, err := ins.insert(tree, key)
			assert.Equal(t, fault.ErrDuplicateKey, err, "%s: duplicate %d", ins.name, key)
			assert.True(t, fault.IsErrExists(err), "%s: error class for %d", ins.name, key)
			assert.Equal(t, before, tree.DumpPreorder(), "%s: tree modified by %d", ins.name, key)
			assert.Equal(t, 4, tree.Count(), "%s: count changed by %d", ins.name, key)
		}
	}
}

func TestMustInsertPanics(t *testing.T) {
	tree := smallTree()
	assert.Panics(t, func() { tree.MustInsert(3) }, "recursive duplicate")
	assert.Panics(t, func() { tree.MustInsertIterative(10) }, "iterative duplicate")
	assert.Equal(t, "10, 5, 3, 12", tree.String(), "tree modified")
}

func TestContains(t *testing.T) {
	assert.True(t, bst.NewLeaf(10, intCompare).Contains(10), "leaf")
	assert.True(t, bst.NewLeaf(10, intCompare).MustInsert(12).Contains(12), "right child")

	tree := smallTree()
	for _, key := range []int{10, 12, 5, 3} {
		assert.True(t, tree.Contains(key), "missing: %d", key)
	}
	for _, key := range []int{999, 0, 4, 11, -10} {
		assert.False(t, tree.Contains(key), "unexpected: %d", key)
	}
}

// random permutations through both insert paths must give identical
// trees that keep the ordering invariant
func TestRandomInsertion(t *testing.T) {
	rng := rand.New(rand.NewSource(311))

	for round := 0; round < 50; round++ {
		keys := rng.Perm(200)

		recursive := bst.NewLeaf(keys[0], intCompare)
		iterative := bst.NewLeaf(keys[0], intCompare)
		for _, k := range keys[1:] {
			if _, err := recursive.Insert(k); nil != err {
				t.Fatalf("round: %d  insert: %d  error: %s", round, k, err)
			}
			if _, err := iterative.InsertIterative(k); nil != err {
				t.Fatalf("round: %d  iterative insert: %d  error: %s", round, k, err)
			}
		}

		assert.True(t, recursive.CheckOrder(), "round %d: recursive tree out of order", round)
		assert.True(t, iterative.CheckOrder(), "round %d: iterative tree out of order", round)
		assert.Equal(t, recursive.DumpPreorder(), iterative.DumpPreorder(), "round %d: preorder differs", round)
		assert.Equal(t, recursive.DumpPostorder(), iterative.DumpPostorder(), "round %d: postorder differs", round)
		assert.Equal(t, len(keys), recursive.Count(), "round %d: count", round)

		for _, k := range keys {
			if !recursive.Contains(k) {
				t.Errorf("round: %d  missing key: %d", round, k)
			}
		}

		_, err := recursive.Insert(keys[rng.Intn(len(keys))])
		assert.Equal(t, fault.ErrDuplicateKey, err, "round %d: duplicate accepted", round)
	}
}

func TestStringKeys(t *testing.T) {
	tree := bst.NewLeaf("m", strings.Compare)
	for _, s := range []string{"c", "x", "a", "q"} {
		tree.MustInsertIterative(s)
	}

	assert.Equal(t, "m, c, a, x, q", tree.String(), "preorder")
	assert.Equal(t, "a, c, q, x, m", tree.DumpPostorder(), "postorder")
	assert.True(t, tree.Contains("q"), "contains q")
	assert.False(t, tree.Contains("z"), "contains z")
	assert.True(t, tree.CheckOrder(), "order")
}

type version struct {
	major int
	minor int
}

func (v version) String() string {
	return fmt.Sprintf("v%d.%d", v.major, v.minor)
}

func versionCompare(a version, b version) int {
	if c := intCompare(a.major, b.major); 0 != c {
		return c
	}
	return intCompare(a.minor, b.minor)
}

// keys are rendered with their own String method
func TestStringerKeys(t *testing.T) {
	tree := bst.NewLeaf(version{1, 2}, versionCompare).
		MustInsert(version{1, 0}).
		MustInsert(version{2, 0})

	assert.Equal(t, "v1.2, v1.0, v2.0", tree.String(), "preorder")
	assert.True(t, tree.Contains(version{2, 0}), "contains v2.0")
}

// a descending comparator mirrors the tree
func TestDescendingOrder(t *testing.T) {
	descending := func(a int, b int) int {
		return intCompare(b, a)
	}
	tree := bst.NewLeaf(10, descending).
		MustInsert(12).MustInsert(5).MustInsert(3)

	assert.Equal(t, "10, 12, 5, 3", tree.String(), "preorder")
	assert.Equal(t, "12, 3, 5, 10", tree.DumpPostorder(), "postorder")
	assert.True(t, tree.CheckOrder(), "order")
	assert.True(t, tree.Contains(3), "contains 3")
}

func TestPrint(t *testing.T) {
	tree := bst.NewLeaf(10, intCompare).MustInsert(5).MustInsert(12)

	var buffer bytes.Buffer
	levels := tree.Print(&buffer, false)

	expected := "       /------+ 12\n" +
		"|------+ 10\n" +
		"       \\------+ 5\n"
	assert.Equal(t, expected, buffer.String(), "print")
	assert.Equal(t, 2, levels, "levels")

	buffer.Reset()
	tree.MustInsert(3)
	levels = tree.Print(&buffer, true)
	assert.Equal(t, 3, levels, "levels after adding 3")
	assert.Contains(t, buffer.String(), "10 [LR]\n", "root shape")
	assert.Contains(t, buffer.String(), "5 [L-]\n", "left shape")
	assert.Contains(t, buffer.String(), "3 [--]\n", "leaf shape")
}
