// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/keyset"
)

func TestNewInvalidRange(t *testing.T) {
	s, err := keyset.New(10, 1)
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, fault.ErrInvalidRange), "error: %v", err)

	s, err = keyset.New(5, 5)
	require.NoError(t, err)
	assert.NoError(t, s.Check(5))
}

func TestCheck(t *testing.T) {
	s, err := keyset.New(keyset.DefaultMinimum, 100)
	require.NoError(t, err)

	items := []struct {
		key     int
		invalid bool
		exists  bool
	}{
		{2, false, false},
		{8, false, false},
		{0, true, false},
		{-3, true, false},
		{101, true, false},
		{100, false, false},
		{1, false, false},
		{8, false, true},
		{2, false, true},
	}

	for i, item := range items {
		err := s.Check(item.key)
		assert.Equal(t, item.invalid, fault.IsErrInvalid(err), "%d: key: %d  error: %v", i, item.key, err)
		assert.Equal(t, item.exists, fault.IsErrExists(err), "%d: key: %d  error: %v", i, item.key, err)
		if !item.invalid && !item.exists {
			assert.NoError(t, err, "%d: key: %d", i, item.key)
		}
	}
	assert.Equal(t, 4, s.Count())
}

func TestForget(t *testing.T) {
	s, err := keyset.New(1, 10)
	require.NoError(t, err)

	require.NoError(t, s.Check(3))
	require.Error(t, s.Check(3))
	s.Forget(3)
	assert.NoError(t, s.Check(3))
	s.Forget(9) // not present
	assert.Equal(t, 1, s.Count())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, keyset.Validate([]int{2, 8, 23, 4, 5, 1, 19, 11}, keyset.DefaultMinimum, keyset.DefaultMaximum))
	assert.NoError(t, keyset.Validate(nil, keyset.DefaultMinimum, keyset.DefaultMaximum))

	err := keyset.Validate([]int{2, 8, 23, 8}, keyset.DefaultMinimum, keyset.DefaultMaximum)
	assert.True(t, errors.Is(err, fault.ErrDuplicateKey), "error: %v", err)
	assert.Equal(t, "keys[3]: duplicate key: 8", err.Error())

	err = keyset.Validate([]int{2, 0}, keyset.DefaultMinimum, keyset.DefaultMaximum)
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "error: %v", err)

	err = keyset.Validate([]int{1}, 3, 2)
	assert.True(t, errors.Is(err, fault.ErrInvalidRange), "error: %v", err)
}
