// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/bstree/fault"
)

// common errors - keep in alphabetic order
const (
	ErrConflictingFlags = fault.InvalidError("conflicting command line flags")
	ErrInvalidKeyType   = fault.InvalidError("key type can only be int or string")
	ErrMissingKey       = fault.InvalidError("key to search for is required")
	ErrNoKeys           = fault.InvalidError("no keys to insert")
	ErrNotDirectory     = fault.InvalidError("log directory is not a directory")
	ErrNotNumeric       = fault.InvalidError("key is not an integer")
)
