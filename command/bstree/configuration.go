// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultKeyType = keyTypeInt

	defaultLogDirectory = "log"
	defaultLogFile      = "bstree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// key types
const (
	keyTypeInt    = "int"
	keyTypeString = "string"
)

// Configuration - contents of a Lua configuration file
type Configuration struct {
	KeyType   string               `gluamapper:"key_type" json:"key_type"`
	Keys      []interface{}        `gluamapper:"keys" json:"keys"`
	Iterative bool                 `gluamapper:"iterative" json:"iterative"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// configuration used when no file is given, logs go to a temporary
// directory
func defaultConfiguration() *Configuration {
	return &Configuration{
		KeyType:   defaultKeyType,
		Keys:      nil,
		Iterative: false,
		Logging: logger.Configuration{
			Directory: filepath.Join(os.TempDir(), "bstree"),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()
	options.Logging.Directory = defaultLogDirectory
	options.Logging.Levels = map[string]string{
		logger.DefaultTag: "info",
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case keyTypeInt, keyTypeString:
	default:
		return nil, ErrInvalidKeyType
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}

// the configured keys in text form
func (c *Configuration) keyStrings() []string {
	keys := make([]string, 0, len(c.Keys))
	for _, k := range c.Keys {
		switch v := k.(type) {
		case float64:
			// Lua numbers are all float64, avoid the exponent form
			keys = append(keys, strconv.FormatFloat(v, 'f', -1, 64))
		case string:
			keys = append(keys, v)
		default:
			keys = append(keys, fmt.Sprint(v))
		}
	}
	return keys
}

// create the log directory if necessary
func ensureLogDirectory(directory string) error {
	if err := os.MkdirAll(directory, 0700); nil != err {
		return err
	}
	info, err := os.Stat(directory)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}
	return nil
}
