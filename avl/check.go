// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/offsettree/fault"
)

// Check - verify ordering, cached heights and balance of every node
//
// returns the first violation found or nil
func (tree *Tree[K, V]) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrNodeCount
	}
	return nil
}

// internal consistency checker, low and high are the exclusive bounds
// imposed by the ancestors
func check[K cmp.Ordered, V any](p *Node[K, V], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && cmp.Compare(p.key, *low) <= 0 {
		return 0, fault.ErrKeyOrder
	}
	if nil != high && cmp.Compare(p.key, *high) >= 0 {
		return 0, fault.ErrKeyOrder
	}

	nl, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	lh := heightOf(p.left)
	rh := heightOf(p.right)
	if p.height != max(lh, rh)+1 || p.balance != rh-lh {
		return 0, fault.ErrHeightMismatch
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, fault.ErrBalanceOutOfRange
	}
	return 1 + nl + nr, nil
}
