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

// Insert - insert a new key into the tree
//
// fails with fault.ErrDuplicateKey if the key is already present,
// leaving the tree unchanged
func (tree *Tree[K]) Insert(key K) error {
	root, err := tree.insert(key, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

// internal routine for insert, returns the new sub-tree root
func (tree *Tree[K]) insert(key K, p *Node[K]) (*Node[K], error) {
	if nil == p { // insert new node
		return tree.newNode(key), nil
	}

	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		left, err := tree.insert(key, p.left)
		if nil != err {
			return p, err
		}
		p.left = left

	case -1: // p.key < key
		right, err := tree.insert(key, p.right)
		if nil != err {
			return p, err
		}
		p.right = right

	default:
		return p, fmt.Errorf("%w: %d", fault.ErrDuplicateKey, key)
	}

	return rebalance(p), nil
}
