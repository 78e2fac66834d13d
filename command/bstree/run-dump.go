// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type dumpReply struct {
	Preorder  string `json:"preorder"`
	Postorder string `json:"postorder"`
	Count     int    `json:"count"`
}

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := buildForest(m, keysFor(c, m))
	if nil != err {
		return err
	}
	tree := f.tree()

	out := dumpReply{
		Preorder:  tree.DumpPreorder(),
		Postorder: tree.DumpPostorder(),
		Count:     tree.Count(),
	}
	return printJson(m.w, out)
}
