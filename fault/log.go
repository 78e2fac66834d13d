// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel, nil until Initialise
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string tagged with the caller's position
func Critical(message string) {
	criticalf(2, "%s", message)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panic - log then panic with message
func Panic(message string) {
	criticalf(2, "%s", message)
	panic(message)
}

// PanicWithError - log then panic with message and the error text
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalf(3, "%s", s)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// internal routine to handle an uninitialised logger channel
//
// skip is the number of stack frames above this one to report
func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		format = "(%q:%d) " + format
		arguments = append(a, arguments...)
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
