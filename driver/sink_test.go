// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/driver"
)

func TestPrintSinkPlain(t *testing.T) {
	buffer := &bytes.Buffer{}
	sink := driver.NewPrintSink(buffer, false)

	err := sink.Write(driver.StageInsert, avl.PreOrder, []int{4, 2, 1})
	require.NoError(t, err, "write error")

	assert.Equal(t, "4\n2\n1\n", buffer.String(), "wrong output")
}

func TestPrintSinkHeader(t *testing.T) {
	buffer := &bytes.Buffer{}
	sink := driver.NewPrintSink(buffer, true)

	script := driver.Script{
		Insert: []int{1, 2, 3},
		Delete: []int{3, 2, 1},
		Order:  avl.PreOrder,
	}
	_, err := driver.Run(withDefaultRange(script), sink, logger.New(category))
	require.NoError(t, err, "run error")

	expected := "# insert (pre-order)\n" +
		"2\n1\n3\n" +
		"# delete (pre-order)\n"
	assert.Equal(t, expected, buffer.String(), "wrong output")
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestPrintSinkWriteError(t *testing.T) {
	sink := driver.NewPrintSink(failingWriter{}, false)
	err := sink.Write(driver.StageInsert, avl.InOrder, []int{1})
	assert.Equal(t, errWrite, err, "wrong error")

	// nothing to write, nothing to fail
	err = sink.Write(driver.StageInsert, avl.InOrder, nil)
	assert.NoError(t, err, "empty write")
}
