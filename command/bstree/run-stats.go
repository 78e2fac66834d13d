// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type statsReply struct {
	Count    int      `json:"count"`
	MaxDepth int      `json:"max_depth"`
	Average  *float64 `json:"average,omitempty"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := buildForest(m, keysFor(c, m))
	if nil != err {
		return err
	}
	tree := f.tree()

	out := statsReply{
		Count:    tree.Count(),
		MaxDepth: tree.MaxDepth(),
	}

	avg, ok, err := f.average()
	if nil != err {
		return err
	}
	if ok {
		out.Average = &avg
	}

	m.log.Infof("stats: count: %d  max depth: %d", out.Count, out.MaxDepth)

	return printJson(m.w, out)
}
