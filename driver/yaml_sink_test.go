// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/driver"
)

func TestYAMLSinkDocuments(t *testing.T) {
	buffer := &bytes.Buffer{}
	sink := driver.NewYAMLSink(buffer)

	script := driver.Script{
		Insert: []int{1, 2, 3},
		Delete: []int{3, 2, 1},
		Order:  avl.PostOrder,
	}
	_, err := driver.Run(withDefaultRange(script), sink, logger.New(category))
	require.NoError(t, err, "run error")
	require.NoError(t, sink.Close(), "close error")

	decoder := yaml.NewDecoder(buffer)

	expected := []driver.YAMLStage{
		{Stage: "insert", Order: "post", Count: 3, Keys: []int{1, 3, 2}},
		{Stage: "delete", Order: "post", Count: 0, Keys: []int{}},
	}
	for i, e := range expected {
		var actual driver.YAMLStage
		err := decoder.Decode(&actual)
		require.NoError(t, err, "decode document: %d", i)
		assert.Equal(t, e, actual, "document: %d", i)
	}

	var extra driver.YAMLStage
	err = decoder.Decode(&extra)
	assert.True(t, errors.Is(err, io.EOF), "unexpected extra document: %v", err)
}

func TestYAMLSinkFlowKeys(t *testing.T) {
	buffer := &bytes.Buffer{}
	sink := driver.NewYAMLSink(buffer)

	require.NoError(t, sink.Write(driver.StageInsert, avl.InOrder, []int{1, 2}), "write error")
	require.NoError(t, sink.Close(), "close error")

	expected := "stage: insert\n" +
		"order: in\n" +
		"count: 2\n" +
		"keys: [1, 2]\n"
	assert.Equal(t, expected, buffer.String(), "wrong output")
}
