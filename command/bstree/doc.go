// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstree - build a binary search tree from a list of keys and report
// on it
//
// keys are inserted in the order given, either from the command
// arguments or from the "keys" list of a Lua configuration file
//
//	bstree dump 10 12 5 3
//	bstree --iterative stats 10 12 5 4 20 8 7 15
//	bstree --strings contains --key=m c m x
//	bstree --config=bstree.conf print
//	bstree --config=bstree.conf --recursive dump
//
// output is JSON except for "print" which draws the tree
package main
