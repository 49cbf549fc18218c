// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/driver"
	"github.com/bitmark-inc/avltree/fault"
)

// everything a command needs once the configuration is loaded
type environment struct {
	fileName string
	order    string // command-line override of the configured order
	conf     *Configuration
	out      io.Writer
	quiet    bool
	log      *logger.L
}

// setup command handler
//
// commands that do not need the configuration file; returns true if
// the command was handled here
func processSetupCommand(program string, command string) bool {

	switch command {
	case "run", "print", "check", "watch":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--order=ORDER] --config-file=FILE [command]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help       (h)      - display this message\n\n")
		fmt.Printf("  version    (v)      - display version string\n\n")

		fmt.Printf("  run                 - insert and delete the configured keys and\n")
		fmt.Printf("                        list the tree in ORDER (pre, in or post)\n")
		fmt.Printf("                        this is the default command\n\n")
		fmt.Printf("  print               - as run, then draw the final tree\n\n")
		fmt.Printf("  check               - as run, validating the tree after every change\n\n")
		fmt.Printf("  watch               - as run, repeated whenever FILE changes\n")
		fmt.Printf("                        until CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// command handler for commands that need the configuration
func processCommand(command string, env *environment) error {
	env.log.Infof("command: %s", command)

	switch command {
	case "print":
		return printCommand(env)
	case "check":
		return checkCommand(env)
	case "watch":
		return watchCommand(env)
	default:
		_, err := runScript(env)
		return err
	}
}

// list the keys after each stage
func runScript(env *environment) (*driver.Result, error) {
	var result *driver.Result
	var err error

	switch env.conf.Format {
	case formatYAML:
		sink := driver.NewYAMLSink(env.out)
		result, err = driver.Run(env.conf.script(), sink, env.log)
		if closeErr := sink.Close(); nil == err {
			err = closeErr
		}
	default:
		sink := driver.NewPrintSink(env.out, env.conf.Header)
		result, err = driver.Run(env.conf.script(), sink, env.log)
	}
	if nil != err {
		return result, err
	}

	env.log.Infof("inserted: %d  deleted: %d  rejected: %d", result.Inserted, result.Deleted, result.Rejected)
	return result, nil
}

func printCommand(env *environment) error {
	result, err := driver.Run(env.conf.script(), driver.NewPrintSink(io.Discard, false), env.log)
	if nil != err {
		return err
	}

	tree := result.Tree
	if tree.IsEmpty() {
		fmt.Fprintf(env.out, "empty tree\n")
		return nil
	}
	depth := tree.Print(env.out)
	if !env.quiet {
		fmt.Fprintf(env.out, "count: %d  depth: %d\n", tree.Count(), depth)
	}
	return nil
}

func checkCommand(env *environment) error {
	env.conf.Check = true
	result, err := driver.Run(env.conf.script(), driver.NewPrintSink(io.Discard, false), env.log)
	if nil != err {
		return err
	}

	if err := result.Tree.Check(); nil != err {
		return err
	}
	if !env.quiet {
		fmt.Fprintf(env.out, "ok  count: %d  height: %d  rejected: %d\n", result.Tree.Count(), result.Tree.Height(), result.Rejected)
	}
	return nil
}

func watchCommand(env *environment) error {
	w, err := newFileWatcher(env.fileName, logger.New(watcherLoggerPrefix))
	if nil != err {
		return err
	}

	if !env.quiet {
		fmt.Fprintf(env.out, "watching: %q  CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM) to stop\n", w.filePath)
	}

	// turn Signals into channel messages
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	return watchLoop(env, w, signals)
}

// run the script, then again each time the watcher reports a change;
// returns when signalled or when the file is removed
func watchLoop(env *environment, w *fileWatcher, stop <-chan os.Signal) error {

	p := background.Start(background.Processes{w}, nil)
	defer p.Stop()

	rerun := func() {
		if _, err := runScript(env); nil != err {
			env.log.Errorf("run error: %s", err)
			fmt.Fprintf(env.out, "error: %s\n", err)
		}
	}
	rerun()

	for {
		select {
		case sig := <-stop:
			env.log.Infof("received signal: %v", sig)
			return nil

		case <-w.remove:
			env.log.Errorf("configuration: %q removed", env.fileName)
			return fault.ErrNotFoundConfigFile

		case <-w.change:
			conf, err := getConfiguration(env.fileName)
			if nil == err && "" != env.order {
				err = conf.setOrder(env.order)
			}
			if nil != err {
				env.log.Errorf("configuration: %q  error: %s", env.fileName, err)
				fmt.Fprintf(env.out, "configuration error: %s\n", err)
				continue
			}
			env.log.Debugf("configuration: %v", conf)

			// logging stays as first configured
			conf.Logging = env.conf.Logging
			env.conf = conf
			rerun()
		}
	}
}
