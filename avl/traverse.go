// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Traverse - lazy sequence of the keys in the requested order
//
// the sequence reads the tree each time it is ranged over, so it can
// be restarted; an unknown order yields nothing
func (tree *Tree[K]) Traverse(order Order) iter.Seq[K] {
	return func(yield func(K) bool) {
		switch order {
		case PreOrder:
			preOrder(tree.root, yield)
		case InOrder:
			inOrder(tree.root, yield)
		case PostOrder:
			postOrder(tree.root, yield)
		}
	}
}

// Keys - all keys in the requested order
func (tree *Tree[K]) Keys(order Order) []K {
	keys := make([]K, 0, tree.count)
	return slices.AppendSeq(keys, tree.Traverse(order))
}

// each visitor returns false once yield has asked to stop

func preOrder[K constraints.Integer](p *Node[K], yield func(K) bool) bool {
	if nil == p {
		return true
	}
	return yield(p.key) && preOrder(p.left, yield) && preOrder(p.right, yield)
}

func inOrder[K constraints.Integer](p *Node[K], yield func(K) bool) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, yield) && yield(p.key) && inOrder(p.right, yield)
}

func postOrder[K constraints.Integer](p *Node[K], yield func(K) bool) bool {
	if nil == p {
		return true
	}
	return postOrder(p.left, yield) && postOrder(p.right, yield) && yield(p.key)
}
