// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type containsReply struct {
	Key   string `json:"key"`
	Found bool   `json:"found"`
}

func runContains(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key := c.String("key")
	if "" == key {
		return ErrMissingKey
	}

	f, err := buildForest(m, keysFor(c, m))
	if nil != err {
		return err
	}

	found, err := f.contains(key)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key: %q  found: %t\n", key, found)
	}

	out := containsReply{
		Key:   key,
		Found: found,
	}
	return printJson(m.w, out)
}
