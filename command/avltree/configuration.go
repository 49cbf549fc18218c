// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/driver"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/keyset"
)

// basic defaults (directories and files are relative to the
// "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file
	defaultOrder         = "pre"
	defaultFormat        = formatText

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// output formats
const (
	formatText = "text"
	formatYAML = "yaml"
)

// global variable available to the configuration file
const directoryVariable = "config_directory"

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Insert          []int                `gluamapper:"-" json:"insert"`
	Delete          []int                `gluamapper:"-" json:"delete"`
	Order           string               `gluamapper:"order" json:"order"`
	Minimum         int                  `gluamapper:"minimum" json:"minimum"`
	Maximum         int                  `gluamapper:"maximum" json:"maximum"`
	Check           bool                 `gluamapper:"check" json:"check"`
	ContinueOnError bool                 `gluamapper:"continue_on_error" json:"continue_on_error"`
	Header          bool                 `gluamapper:"header" json:"header"`
	Format          string               `gluamapper:"format" json:"format"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`

	// Lua numbers as read, converted to Insert and Delete
	InsertNumbers []float64 `gluamapper:"insert" json:"-"`
	DeleteNumbers []float64 `gluamapper:"delete" json:"-"`

	order avl.Order
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the file's levels are merged into this map
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Order:         defaultOrder,
		Format:        defaultFormat,
		Minimum:       keyset.DefaultMinimum,
		Maximum:       keyset.DefaultMaximum,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	variables := map[string]string{
		directoryVariable: dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	if options.Insert, err = integerKeys("insert", options.InsertNumbers); nil != err {
		return nil, err
	}
	if options.Delete, err = integerKeys("delete", options.DeleteNumbers); nil != err {
		return nil, err
	}

	if err := options.setOrder(options.Order); nil != err {
		return nil, err
	}

	options.Format = strings.ToLower(strings.TrimSpace(options.Format))
	switch options.Format {
	case formatText, formatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidFormat, options.Format)
	}

	if options.Minimum > options.Maximum {
		return nil, fmt.Errorf("%w: [%d, %d]", fault.ErrInvalidRange, options.Minimum, options.Maximum)
	}

	// a bad key list is reported before any tree is built
	if !options.ContinueOnError {
		if err := keyset.Validate(options.Insert, options.Minimum, options.Maximum); nil != err {
			return nil, fmt.Errorf("insert: %w", err)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidDirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", fault.ErrInvalidDirectory, options.DataDirectory)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}

// setOrder - replace the traversal order, e.g. from a command-line option
func (conf *Configuration) setOrder(name string) error {
	order, err := avl.ParseOrder(name)
	if nil != err {
		return err
	}
	conf.Order = order.String()
	conf.order = order
	return nil
}

// the driver script described by the configuration
func (conf *Configuration) script() driver.Script {
	return driver.Script{
		Insert:          conf.Insert,
		Delete:          conf.Delete,
		Order:           conf.order,
		Minimum:         conf.Minimum,
		Maximum:         conf.Maximum,
		Check:           conf.Check,
		ContinueOnError: conf.ContinueOnError,
	}
}

// Lua has only floating point numbers; keys must be exact integers
func integerKeys(name string, numbers []float64) ([]int, error) {
	if nil == numbers {
		return nil, nil
	}
	keys := make([]int, len(numbers))
	for i, n := range numbers {
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return nil, fmt.Errorf("%s[%d]: %w: %v is not an integer", name, i+1, fault.ErrInvalidKey, n)
		}
		keys[i] = int(n)
	}
	return keys, nil
}

// prepend the directory to a relative path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
