// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func TestPanicLog(t *testing.T) {
	dir := t.TempDir()
	logging := logger.Configuration{
		Directory: dir,
		File:      "panic.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	require.NoError(t, logger.Initialise(logging), "logger initialise")
	defer logger.Finalise()

	require.NoError(t, fault.Initialise(), "first initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")

	fault.Criticalf("value: %d", 42)

	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) })
	assert.PanicsWithValue(t, "open failed with error: boom", func() {
		fault.PanicIfError("open", errors.New("boom"))
	})
	assert.PanicsWithValue(t, "stop here", func() { fault.Panic("stop here") })
	assert.PanicsWithValue(t, "stop at: 7", func() { fault.Panicf("stop at: %d", 7) })

	fault.Finalise()

	// the channel can be opened again after finalise
	require.NoError(t, fault.Initialise(), "re-initialise")
	fault.Finalise()
}

func TestPanicWithoutChannel(t *testing.T) {
	assert.PanicsWithValue(t, "no channel", func() { fault.Panic("no channel") })
}
