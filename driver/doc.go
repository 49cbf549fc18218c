// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package driver - feed a script of keys through an AVL tree
//
// The insert keys are screened (range and duplicates) and inserted one
// at a time, then the delete keys are removed one at a time.  After
// each phase the tree traversal is handed to a Sink for presentation.
package driver
