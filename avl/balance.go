// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// number of levels below and including p, zero for an empty sub-tree
func height[K constraints.Integer](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// height(right) - height(left); p must not be nil
func balanceFactor[K constraints.Integer](p *Node[K]) int {
	if nil == p {
		fault.Panic("avl: balance factor of empty sub-tree")
	}
	return height(p.right) - height(p.left)
}

// p.right becomes the root of the sub-tree and p its left child
func rotateLeft[K constraints.Integer](p *Node[K]) *Node[K] {
	p1 := p.right
	if nil == p1 {
		fault.Panic("avl: left rotation without right sub-tree")
	}
	p.right = p1.left
	p1.left = p
	return p1
}

// p.left becomes the root of the sub-tree and p its right child
func rotateRight[K constraints.Integer](p *Node[K]) *Node[K] {
	p1 := p.left
	if nil == p1 {
		fault.Panic("avl: right rotation without left sub-tree")
	}
	p.left = p1.right
	p1.right = p
	return p1
}

// restore the balance of a sub-tree whose children are balanced and
// differ in height by at most two; returns the new sub-tree root
func rebalance[K constraints.Integer](p *Node[K]) *Node[K] {
	bf := balanceFactor(p)
	switch {
	case bf < -1: // left heavy
		if balanceFactor(p.left) > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p) // single LL rotation

	case bf > 1: // right heavy
		if balanceFactor(p.right) < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p) // single RR rotation

	default:
		return p
	}
}
