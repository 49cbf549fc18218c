// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// give the logger time to write before the panic unwinds
const panicDelay = 100 * time.Millisecond

// the last resort log channel
var globalData struct {
	sync.Mutex
	log *logger.L
}

// Initialise - open the PANIC log channel; logger must already be
// initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return ErrAlreadyInitialised
	}
	log := logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	globalData.log = log
	return nil
}

// Finalise - flush and release the channel
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		globalData.log.Flush()
		globalData.log = nil
	}
}

// Criticalf - log a formatted message tagged with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	critical(caller(2) + fmt.Sprintf(format, arguments...))
}

// Panic - log a message then panic with it
func Panic(message string) {
	critical(caller(2) + message)
	time.Sleep(panicDelay)
	panic(message)
}

// Panicf - formatted version of Panic
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	critical(caller(2) + message)
	time.Sleep(panicDelay)
	panic(message)
}

// PanicIfError - panic if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	message = fmt.Sprintf("%s failed with error: %s", message, err)
	critical(caller(2) + message)
	time.Sleep(panicDelay)
	panic(message)
}

// "(file:line) " of a function further up the stack
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s:%d) ", filepath.Base(file), line)
}

// without a channel the message goes to stdout
func critical(message string) {
	globalData.Lock()
	log := globalData.log
	globalData.Unlock()

	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
