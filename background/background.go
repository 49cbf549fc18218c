// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a set of long running tasks
package background

import (
	"sync"
)

// Process - a long running task
//
// Run must return soon after shutdown is closed.
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// ProcessFunc - adapt a plain function to a Process
type ProcessFunc func(args interface{}, shutdown <-chan struct{})

// Run - call the function
func (f ProcessFunc) Run(args interface{}, shutdown <-chan struct{}) {
	f(args, shutdown)
}

// Processes - list of processes to start
type Processes []Process

// T - handle for stopping a started set of processes
type T struct {
	sync.Mutex
	shutdown []chan struct{}
	finished sync.WaitGroup
	stopped  bool
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make([]chan struct{}, len(processes)),
	}

	register.finished.Add(len(processes))
	for i, p := range processes {
		shutdown := make(chan struct{})
		register.shutdown[i] = shutdown
		go func(p Process) {
			defer register.finished.Done()
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - signal every process and wait for all of them to return
//
// subsequent calls do nothing
func (t *T) Stop() {
	t.Lock()
	if t.stopped {
		t.Unlock()
		return
	}
	t.stopped = true
	for _, shutdown := range t.shutdown {
		close(shutdown)
	}
	t.Unlock()

	t.finished.Wait()
}
