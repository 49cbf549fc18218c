// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/keyset"
)

//go:generate mockgen -destination=mocks/sink.go -package=mocks github.com/bitmark-inc/avltree/driver Sink

// stage names passed to the sink
const (
	StageInsert = "insert"
	StageDelete = "delete"
)

// Script - the keys to process and how to process them
type Script struct {
	Insert          []int
	Delete          []int
	Order           avl.Order
	Minimum         int // accepted key range, see keyset.DefaultMinimum
	Maximum         int
	Check           bool // validate the whole tree after every change
	ContinueOnError bool // log rejected keys instead of stopping
}

// Sink - receives the traversal of the tree after each stage
type Sink interface {
	Write(stage string, order avl.Order, keys []int) error
}

// Result - the final tree and operation counts
type Result struct {
	Tree     *avl.Tree[int]
	Inserted int
	Deleted  int
	Rejected int
}

type runner struct {
	script Script
	log    *logger.L
	result *Result
}

// Run - process a script; the result is returned even on error so the
// caller can inspect the partially built tree
func Run(script Script, sink Sink, log *logger.L) (*Result, error) {
	if nil == sink {
		return nil, fault.ErrMissingSink
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	screen, err := keyset.New(script.Minimum, script.Maximum)
	if nil != err {
		return nil, err
	}

	r := &runner{
		script: script,
		log:    log,
		result: &Result{
			Tree: avl.New[int](),
		},
	}
	tree := r.result.Tree

	log.Infof("insert: %d keys", len(script.Insert))
	for _, key := range script.Insert {
		err := screen.Check(key)
		if nil == err {
			err = tree.Insert(key)
		}
		if nil != err {
			if err := r.reject(StageInsert, key, err); nil != err {
				return r.result, err
			}
			continue
		}
		r.result.Inserted += 1
		log.Debugf("inserted: %d  count: %d  height: %d", key, tree.Count(), tree.Height())
		if err := r.verify(); nil != err {
			return r.result, err
		}
	}
	if err := sink.Write(StageInsert, script.Order, tree.Keys(script.Order)); nil != err {
		return r.result, err
	}

	if 0 == len(script.Delete) {
		return r.result, nil
	}

	log.Infof("delete: %d keys", len(script.Delete))
	for _, key := range script.Delete {
		if err := tree.Delete(key); nil != err {
			if err := r.reject(StageDelete, key, err); nil != err {
				return r.result, err
			}
			continue
		}
		screen.Forget(key)
		r.result.Deleted += 1
		log.Debugf("deleted: %d  count: %d  height: %d", key, tree.Count(), tree.Height())
		if err := r.verify(); nil != err {
			return r.result, err
		}
	}
	if err := sink.Write(StageDelete, script.Order, tree.Keys(script.Order)); nil != err {
		return r.result, err
	}

	return r.result, nil
}

// count a rejected key; returns nil if processing may continue
func (r *runner) reject(stage string, key int, err error) error {
	r.result.Rejected += 1
	if r.script.ContinueOnError {
		r.log.Warnf("%s: %d  rejected: %s", stage, key, err)
		return nil
	}
	r.log.Errorf("%s: %d  failed: %s", stage, key, err)
	return err
}

// a failed check means the tree is corrupt, so it always stops the run
func (r *runner) verify() error {
	if !r.script.Check {
		return nil
	}
	err := r.result.Tree.Check()
	if nil != err {
		r.log.Criticalf("tree check failed: %s", err)
	}
	return err
}
