// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"
)

const separator = ", "

// DumpPreorder - keys in enter order: node, left sub-tree, right sub-tree
func (tree *Tree[T]) DumpPreorder() string {
	var b strings.Builder
	preorder(&b, tree.root)
	return b.String()
}

func preorder[T any](b *strings.Builder, p *Node[T]) {
	fmt.Fprint(b, p.data)
	if nil != p.left {
		b.WriteString(separator)
		preorder(b, p.left)
	}
	if nil != p.right {
		b.WriteString(separator)
		preorder(b, p.right)
	}
}

// DumpPostorder - keys in exit order: left sub-tree, right sub-tree, node
func (tree *Tree[T]) DumpPostorder() string {
	var b strings.Builder
	postorder(&b, tree.root)
	return b.String()
}

func postorder[T any](b *strings.Builder, p *Node[T]) {
	if nil != p.left {
		postorder(b, p.left)
		b.WriteString(separator)
	}
	if nil != p.right {
		postorder(b, p.right)
		b.WriteString(separator)
	}
	fmt.Fprint(b, p.data)
}

// String - same as DumpPreorder
func (tree *Tree[T]) String() string {
	return tree.DumpPreorder()
}

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree to w,
// right sub-trees above their parent and left below
//
// returns the number of levels in the tree
func (tree *Tree[T]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, tree *Node[T], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v [%s]\n", tree.data, shape(tree))
	} else {
		fmt.Fprintf(w, "%v\n", tree.data)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// which children are present: "LR", "L-", "-R" or "--"
func shape[T any](p *Node[T]) string {
	s := []byte("--")
	if nil != p.left {
		s[0] = 'L'
	}
	if nil != p.right {
		s[1] = 'R'
	}
	return string(s)
}
