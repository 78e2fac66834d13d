// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/fault"
)

type metadata struct {
	file      string
	config    *Configuration
	keyType   string
	iterative bool
	verbose   bool
	log       *logger.L
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// logger can only be initialised once per process
var loggerInitialised = false

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()
	defer logger.Finalise()
	defer fault.Finalise()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// the command line application writing results to w and
// diagnostics to e
func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bstree"
	app.Usage = "build a binary search tree and report on it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "strings, s",
			Usage: " treat keys as strings instead of integers",
		},
		cli.BoolFlag{
			Name:  "integers, n",
			Usage: " treat keys as integers, overriding the configuration",
		},
		cli.BoolFlag{
			Name:  "iterative, i",
			Usage: " insert with the iterative algorithm",
		},
		cli.BoolFlag{
			Name:  "recursive, r",
			Usage: " insert with the recursive algorithm, overriding the configuration",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "dump",
			Usage:     "preorder and postorder listing of the keys",
			ArgsUsage: "[KEY...]",
			Action:    runDump,
		},
		{
			Name:      "stats",
			Usage:     "count, maximum depth and average of the keys",
			ArgsUsage: "[KEY...]",
			Action:    runStats,
		},
		{
			Name:      "contains",
			Usage:     "check if a key is in the tree",
			ArgsUsage: "[KEY...]\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*key to search for `KEY`",
				},
			},
			Action: runContains,
		},
		{
			Name:      "print",
			Usage:     "draw the tree",
			ArgsUsage: "[KEY...]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "shape, S",
					Usage: " show which children each node has",
				},
			},
			Action: runPrint,
		},
		{
			Name:  "version",
			Usage: "display bstree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		file := c.GlobalString("config")
		config := defaultConfiguration()
		if "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			var err error
			config, err = getConfiguration(file)
			if nil != err {
				return err
			}
		}

		if err := startLogging(config.Logging); nil != err {
			return err
		}

		// command line flags take precedence over the configuration file
		keyType := config.KeyType
		switch {
		case c.GlobalBool("strings") && c.GlobalBool("integers"):
			return ErrConflictingFlags
		case c.GlobalBool("strings"):
			keyType = keyTypeString
		case c.GlobalBool("integers"):
			keyType = keyTypeInt
		}

		iterative := config.Iterative
		switch {
		case c.GlobalBool("iterative") && c.GlobalBool("recursive"):
			return ErrConflictingFlags
		case c.GlobalBool("iterative"):
			iterative = true
		case c.GlobalBool("recursive"):
			iterative = false
		}

		m := &metadata{
			file:      file,
			config:    config,
			keyType:   keyType,
			iterative: iterative,
			verbose:   verbose,
			log:       logger.New("bstree"),
			e:         e,
			w:         w,
		}
		m.log.Debugf("config file: %q  key type: %s  iterative: %t", file, m.keyType, m.iterative)
		c.App.Metadata["config"] = m

		return nil
	}

	return app
}

// start the logger and the fault channel, once only
func startLogging(logging logger.Configuration) error {
	if loggerInitialised {
		return nil
	}
	if err := ensureLogDirectory(logging.Directory); nil != err {
		return err
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	if err := fault.Initialise(); nil != err {
		return err
	}
	loggerInitialised = true
	return nil
}

// keys from the command arguments, or from the configuration if none
func keysFor(c *cli.Context, m *metadata) []string {
	if c.NArg() > 0 {
		return c.Args()
	}
	return m.config.keyStrings()
}
