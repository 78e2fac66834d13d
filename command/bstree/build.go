// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
)

// view - the parts of a tree that do not depend on the key type
type view interface {
	DumpPreorder() string
	DumpPostorder() string
	Count() int
	MaxDepth() int
	Print(w io.Writer, printData bool) int
}

// forest - exactly one of the trees is set, according to the key type
type forest struct {
	ints    *bst.Tree[int]
	strings *bst.Tree[string]
}

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

// build a tree of the configured key type from keys in order
func buildForest(m *metadata, keys []string) (*forest, error) {
	if 0 == len(keys) {
		return nil, ErrNoKeys
	}

	if m.verbose {
		fmt.Fprintf(m.e, "building %s tree from %d keys, iterative: %t\n", m.keyType, len(keys), m.iterative)
	}
	m.log.Infof("build: type: %s  keys: %d  iterative: %t", m.keyType, len(keys), m.iterative)

	if keyTypeString == m.keyType {
		tree := bst.NewLeaf(keys[0], strings.Compare)
		if err := insertAll(m.log, tree, keys[1:], m.iterative); nil != err {
			return nil, err
		}
		return &forest{strings: tree}, nil
	}

	ints := make([]int, 0, len(keys))
	for _, k := range keys {
		i, err := parseInt(k)
		if nil != err {
			return nil, err
		}
		ints = append(ints, i)
	}
	tree := bst.NewLeaf(ints[0], intCompare)
	if err := insertAll(m.log, tree, ints[1:], m.iterative); nil != err {
		return nil, err
	}
	return &forest{ints: tree}, nil
}

// insert keys one at a time, stopping at the first duplicate
func insertAll[T any](log *logger.L, tree *bst.Tree[T], keys []T, iterative bool) error {
	insert := tree.Insert
	if iterative {
		insert = tree.InsertIterative
	}
	for _, k := range keys {
		if _, err := insert(k); nil != err {
			log.Errorf("insert: %v  error: %s", k, err)
			return fmt.Errorf("key: %v: %w", k, err)
		}
		log.Debugf("inserted: %v", k)
	}
	return nil
}

func parseInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return 0, fmt.Errorf("key: %q: %w", s, ErrNotNumeric)
	}
	return i, nil
}

// the tree as a key type independent view
func (f *forest) tree() view {
	if nil != f.strings {
		return f.strings
	}
	return f.ints
}

// membership test with key parsed to the tree's key type
func (f *forest) contains(key string) (bool, error) {
	if nil != f.strings {
		return f.strings.Contains(key), nil
	}
	i, err := parseInt(key)
	if nil != err {
		return false, err
	}
	return f.ints.Contains(i), nil
}

// average of integer keys, ok is false for string keys
func (f *forest) average() (avg float64, ok bool, err error) {
	if nil == f.ints {
		return 0, false, nil
	}
	avg, err = bst.Average(f.ints)
	return avg, nil == err, err
}
