// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique integer keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  A traversal must not be interleaved with Insert or
//       Delete on the same tree.
//
// Subtree heights are not stored; they are measured when needed and
// the balance factor of a node is height(right) - height(left).
// Every mutation rebalances each ancestor of the changed node on the
// way back up the recursion, so all nodes keep a balance factor in
// {-1, 0, +1}.
//
// Insert rejects a key that is already present and Delete rejects a
// key that is absent; in both cases the tree is not modified.
// Deleting a node with two children copies the key of its in-order
// successor into it and removes the successor node instead, so a
// *Node obtained from Root is only valid until the next Delete.
package avl
