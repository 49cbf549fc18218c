// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Stats - allocator counters for a tree
//
// Total == Live + Free holds whenever no operation is in progress.
type Stats struct {
	Live  int // nodes reachable from the root
	Free  int // reclaimed nodes waiting for reuse
	Total int // nodes ever created
}

// Stats - report the node counts
func (tree *Tree[K]) Stats() Stats {
	return Stats{
		Live:  tree.count,
		Free:  tree.free,
		Total: tree.total,
	}
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K]) newNode(key K) *Node[K] {
	p := tree.pool
	if nil == p {
		if 0 != tree.free {
			fault.Panicf("avl: pool corrupt: free: %d", tree.free)
		}
		tree.total += 1
		return &Node[K]{
			key: key,
		}
	}
	tree.pool = p.left
	tree.free -= 1

	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.key = key
	return p
}

// reclaim a spliced out node and keep it in the pool
func (tree *Tree[K]) freeNode(p *Node[K]) {
	var zero K

	p.right = nil
	p.key = zero
	p.left = tree.pool // use as free list pointer

	tree.pool = p
	tree.free += 1
}
