// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Node - a node in the tree
type Node[K constraints.Integer] struct {
	left  *Node[K] // left sub-tree, also the free list link
	right *Node[K] // right sub-tree
	key   K        // key part for ordering
}

// Tree - type to hold the root node of a tree
type Tree[K constraints.Integer] struct {
	root  *Node[K]
	count int

	// allocator state
	pool  *Node[K] // linked list of reclaimed nodes
	free  int      // number of nodes in the pool
	total int      // total nodes created
}

// New - create an initially empty tree
func New[K constraints.Integer]() *Tree[K] {
	return &Tree[K]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Key - read the key from a node
func (p *Node[K]) Key() K {
	return p.key
}

// Left - the left sub-tree, nil if empty
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - the right sub-tree, nil if empty
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Height - levels in the sub-tree rooted at this node
func (p *Node[K]) Height() int {
	return height(p)
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[K]) Balance() int {
	return balanceFactor(p)
}
