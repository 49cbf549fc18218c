// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	watcherLoggerPrefix = "file-watcher"

	// how long a removed file may take to reappear
	replaceSettle = 200 * time.Millisecond
	replacePoll   = 10 * time.Millisecond
)

// fileWatcher - turns file system events on one file into change and
// remove notifications
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	err = watcher.Add(filePath)
	if nil != err {
		log.Errorf("watch: %q  error: %s", filePath, err)
		watcher.Close()
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Run - background process forwarding events until shutdown or
// until the file disappears
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("event for: %q ignored", event.Name)
				continue loop
			}

			if isRemoveEvent(event) {
				if w.replaced() {
					w.log.Info("file replaced")
					w.sendEvent(w.change, "change")
					continue loop
				}
				w.log.Warnf("file: %q removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				break loop
			}

			if isChangeEvent(event) {
				w.log.Info("file changed")
				w.sendEvent(w.change, "change")
			}
		}
	}
	w.log.Info("stopped")
}

// an editor saving by rename puts a new file at the same path, which
// must be watched in place of the old one
func (w *fileWatcher) replaced() bool {
	deadline := time.Now().Add(replaceSettle)
	for {
		if _, err := os.Stat(w.filePath); nil == err {
			break
		} else if !os.IsNotExist(err) || time.Now().After(deadline) {
			return false
		}
		time.Sleep(replacePoll)
	}

	// the old watch may already be gone
	_ = w.watcher.Remove(w.filePath)
	if err := w.watcher.Add(w.filePath); nil != err {
		w.log.Errorf("re-watch: %q  error: %s", w.filePath, err)
		return false
	}
	return true
}

// a pending notification already covers this one, so never block
func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

// the watched file went away, possibly only to be replaced
func isRemoveEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
