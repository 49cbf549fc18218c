// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keyset - screen keys before they are submitted to a tree
//
// A tree rejects duplicates itself, but the keys of a script are
// expected to be unique, positive and within a configured range, and
// this is checked up front so that a bad script is reported before any
// tree is modified.
package keyset

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// default range: unique, positive non-zero integers
const (
	DefaultMinimum = 1
	DefaultMaximum = math.MaxInt32
)

// Screen - remembers the keys accepted so far
type Screen struct {
	minimum int
	maximum int
	seen    map[int]struct{}
}

// New - create a screen accepting keys in [minimum, maximum]
func New(minimum int, maximum int) (*Screen, error) {
	if minimum > maximum {
		return nil, fmt.Errorf("%w: [%d, %d]", fault.ErrInvalidRange, minimum, maximum)
	}
	return &Screen{
		minimum: minimum,
		maximum: maximum,
		seen:    make(map[int]struct{}),
	}, nil
}

// Check - verify a key is in range and not already accepted, then
// record it
func (s *Screen) Check(key int) error {
	if key < s.minimum || key > s.maximum {
		return fmt.Errorf("%w: %d outside [%d, %d]", fault.ErrInvalidKey, key, s.minimum, s.maximum)
	}
	if _, ok := s.seen[key]; ok {
		return fmt.Errorf("%w: %d", fault.ErrDuplicateKey, key)
	}
	s.seen[key] = struct{}{}
	return nil
}

// Forget - allow a key to be accepted again, e.g. after it was deleted
func (s *Screen) Forget(key int) {
	delete(s.seen, key)
}

// Count - number of keys currently recorded
func (s *Screen) Count() int {
	return len(s.seen)
}

// Validate - check a complete list, stopping at the first bad key
func Validate(keys []int, minimum int, maximum int) error {
	s, err := New(minimum, maximum)
	if nil != err {
		return err
	}
	for i, key := range keys {
		if err := s.Check(key); nil != err {
			return fmt.Errorf("keys[%d]: %w", i, err)
		}
	}
	return nil
}
