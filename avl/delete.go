// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific key from the tree
//
// fails with fault.ErrEmptyTree if the tree has no nodes and with
// fault.ErrKeyNotFound if the key is absent; the tree is unchanged
// on failure
func (tree *Tree[K]) Delete(key K) error {
	if nil == tree.root {
		return fault.ErrEmptyTree
	}
	root, err := tree.delete(key, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count -= 1
	return nil
}

// internal delete routine, returns the new sub-tree root
func (tree *Tree[K]) delete(key K, p *Node[K]) (*Node[K], error) {
	if nil == p { // key not in tree
		return nil, fmt.Errorf("%w: %d", fault.ErrKeyNotFound, key)
	}

	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		left, err := tree.delete(key, p.left)
		if nil != err {
			return p, err
		}
		p.left = left

	case -1: // p.key < key
		right, err := tree.delete(key, p.right)
		if nil != err {
			return p, err
		}
		p.right = right

	default: // found: delete p
		if nil == p.right {
			left := p.left
			tree.freeNode(p) // return deleted node to pool
			return left, nil
		}

		// replace by the in-order successor, the lowest key on the right
		successor, right := tree.extractMin(p.right)
		p.key = successor
		p.right = right
	}

	return rebalance(p), nil
}

// remove the lowest node of a non-empty sub-tree
// returns its key and the rebalanced sub-tree root
func (tree *Tree[K]) extractMin(p *Node[K]) (K, *Node[K]) {
	if nil == p.left {
		key := p.key
		right := p.right
		tree.freeNode(p)
		return key, right
	}
	key, left := tree.extractMin(p.left)
	p.left = left
	return key, rebalance(p)
}
