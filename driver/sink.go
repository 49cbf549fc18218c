// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/avl"
)

// PrintSink - writes one key per line
type PrintSink struct {
	w      io.Writer
	header bool
}

// NewPrintSink - create a sink writing to w, optionally preceding each
// stage with a "# stage (order)" line
func NewPrintSink(w io.Writer, header bool) *PrintSink {
	return &PrintSink{
		w:      w,
		header: header,
	}
}

// Write - output the keys of one stage
func (s *PrintSink) Write(stage string, order avl.Order, keys []int) error {
	if s.header {
		if _, err := fmt.Fprintf(s.w, "# %s (%s-order)\n", stage, order); nil != err {
			return err
		}
	}
	for _, key := range keys {
		if _, err := fmt.Fprintf(s.w, "%d\n", key); nil != err {
			return err
		}
	}
	return nil
}
