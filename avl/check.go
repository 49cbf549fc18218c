// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
	"golang.org/x/exp/constraints"
)

// Check - verify ordering, balance and node counts of the whole tree
func (tree *Tree[K]) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: actual: %d  expected: %d", fault.ErrInvalidCount, n, tree.count)
	}
	if tree.total != tree.count+tree.free {
		return fmt.Errorf("%w: total: %d  live: %d  free: %d", fault.ErrInvalidCount, tree.total, tree.count, tree.free)
	}
	return nil
}

// internal: consistency checker, keys must lie strictly between the
// non-nil bounds; returns node count and height of the sub-tree
func check[K constraints.Integer](p *Node[K], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, 0, fmt.Errorf("%w: at key: %d", fault.ErrUnorderedKeys, p.key)
	}

	nl, hl, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	if bf := hr - hl; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: key: %d  balance: %+d", fault.ErrUnbalancedNode, p.key, bf)
	}
	return 1 + nl + nr, 1 + max(hl, hr), nil
}
