// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/offsettree/fault"
)

// tree balancer: called on every node on the way back up from an
// insert or a delete, after the node has been updated
//
// returns the new root of the sub-tree
func rebalance[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}

	if p.balance > 1 { // right branch is too high
		if p.right.balance >= 0 {
			// single RR rotation
			p = rotateLeft(p)
		} else {
			// double RL rotation
			p.right = rotateRight(p.right)
			p = rotateLeft(p)
		}
	} else if p.balance < -1 { // left branch is too high
		if p.left.balance <= 0 {
			// single LL rotation
			p = rotateRight(p)
		} else {
			// double LR rotation
			p.left = rotateLeft(p.left)
			p = rotateRight(p)
		}
	}

	if p.balance < -1 || p.balance > 1 {
		fault.Panicf("avl: node: %v balance: %+d still out of range after rotation", p.key, p.balance)
	}
	return p
}

// promote the right child, the demoted node takes over its left
// sub-tree as the new right sub-tree
func rotateLeft[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	p.update()
	p1.left = p
	p1.update()
	return p1
}

// mirror of rotateLeft
func rotateRight[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	p.update()
	p1.right = p
	p1.update()
	return p1
}
