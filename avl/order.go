// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Order - the sequence in which a traversal visits the nodes
type Order int

// all possible orders
const (
	PreOrder  Order = iota // node, left sub-tree, right sub-tree
	InOrder                // left sub-tree, node, right sub-tree
	PostOrder              // left sub-tree, right sub-tree, node
)

// String - name of the order as accepted by ParseOrder
func (order Order) String() string {
	switch order {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("order(%d)", int(order))
	}
}

// ParseOrder - convert a name like "pre", "in-order" or "PostOrder"
// to an Order
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.ReplaceAll(name, "-", ""), "order")

	switch name {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	default:
		return PreOrder, fmt.Errorf("%w: %q", fault.ErrInvalidOrder, s)
	}
}
