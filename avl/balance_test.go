// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build a node with the given children
func mk(key int, l *Node[int], r *Node[int]) *Node[int] {
	return &Node[int]{key: key, left: l, right: r}
}

func leaf(key int) *Node[int] {
	return mk(key, nil, nil)
}

func preorderOf(p *Node[int]) []int {
	keys := []int{}
	preOrder(p, func(k int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 0, height[int](nil), "empty sub-tree")
	assert.Equal(t, 1, height(leaf(1)), "leaf")

	p := mk(4, mk(2, leaf(1), nil), leaf(5))
	assert.Equal(t, 3, height(p))
	assert.Equal(t, -1, balanceFactor(p))
	assert.Equal(t, -1, balanceFactor(p.left))
	assert.Equal(t, 0, balanceFactor(p.right))
}

func TestBalanceFactorOfEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { balanceFactor[int](nil) })
}

func TestRotateLeft(t *testing.T) {
	// 1 ( a , 3 ( 2 , 4 ) ) → 3 ( 1 ( a , 2 ) , 4 )
	p := mk(1, leaf(0), mk(3, leaf(2), leaf(4)))
	n := rotateLeft(p)

	require.Equal(t, 3, n.key)
	assert.Equal(t, []int{3, 1, 0, 2, 4}, preorderOf(n))
	assert.Same(t, p, n.left, "old root moved to left slot")
}

func TestRotateRight(t *testing.T) {
	// 3 ( 1 ( 0 , 2 ) , 4 ) → 1 ( 0 , 3 ( 2 , 4 ) )
	p := mk(3, mk(1, leaf(0), leaf(2)), leaf(4))
	n := rotateRight(p)

	require.Equal(t, 1, n.key)
	assert.Equal(t, []int{1, 0, 3, 2, 4}, preorderOf(n))
	assert.Same(t, p, n.right, "old root moved to right slot")
}

func TestRotateWithoutChildPanics(t *testing.T) {
	assert.Panics(t, func() { rotateLeft(leaf(1)) })
	assert.Panics(t, func() { rotateRight(leaf(1)) })
}

func TestRebalance(t *testing.T) {
	tests := []struct {
		name     string
		tree     *Node[int]
		expected []int
	}{
		{
			name:     "balanced",
			tree:     mk(2, leaf(1), leaf(3)),
			expected: []int{2, 1, 3},
		},
		{
			name:     "left-left",
			tree:     mk(3, mk(2, leaf(1), nil), nil),
			expected: []int{2, 1, 3},
		},
		{
			name:     "left-left after deletion (left child balanced)",
			tree:     mk(5, mk(3, leaf(2), leaf(4)), nil),
			expected: []int{3, 2, 5, 4},
		},
		{
			name:     "left-right",
			tree:     mk(3, mk(1, nil, leaf(2)), nil),
			expected: []int{2, 1, 3},
		},
		{
			name:     "right-right",
			tree:     mk(1, nil, mk(2, nil, leaf(3))),
			expected: []int{2, 1, 3},
		},
		{
			name:     "right-right after deletion (right child balanced)",
			tree:     mk(1, nil, mk(3, leaf(2), leaf(4))),
			expected: []int{3, 1, 2, 4},
		},
		{
			name:     "right-left",
			tree:     mk(1, nil, mk(3, leaf(2), nil)),
			expected: []int{2, 1, 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := rebalance(tc.tree)
			assert.Equal(t, tc.expected, preorderOf(n))
			_, _, err := check(n, nil, nil)
			assert.NoError(t, err)
		})
	}
}

func TestExtractMin(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{20, 10, 30, 5, 15, 25, 40, 35} {
		require.NoError(t, tree.Insert(k))
	}

	key, right := tree.extractMin(tree.root.right)
	tree.root.right = right
	tree.count -= 1

	assert.Equal(t, 25, key)
	assert.NoError(t, tree.Check())
	assert.Equal(t, []int{5, 10, 15, 20, 30, 35, 40}, tree.Keys(InOrder))
}

func TestAllocatorReuse(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.Insert(1))
	p := tree.root
	require.NoError(t, tree.Delete(1))

	assert.Equal(t, Stats{Live: 0, Free: 1, Total: 1}, tree.Stats())
	assert.Nil(t, p.right)
	assert.Equal(t, 0, p.key)

	require.NoError(t, tree.Insert(7))
	assert.Same(t, p, tree.root, "reclaimed node reused")
	assert.Nil(t, tree.root.left, "free list link cleared")
	assert.Equal(t, Stats{Live: 1, Free: 0, Total: 1}, tree.Stats())
}
