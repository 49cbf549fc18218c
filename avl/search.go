// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Contains - true if the key is present, never modifies the tree
func (tree *Tree[K]) Contains(key K) bool {
	p := tree.root
	for nil != p {
		switch cmp.Compare(p.key, key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return true
		}
	}
	return false
}

// Min - return the lowest key
func (tree *Tree[K]) Min() (K, error) {
	p := tree.root.first()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyTree
	}
	return p.key, nil
}

// Max - return the highest key
func (tree *Tree[K]) Max() (K, error) {
	p := tree.root.last()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyTree
	}
	return p.key, nil
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K]) last() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
