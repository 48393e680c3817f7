// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
)

// Node - a node in the tree
type Node[K cmp.Ordered, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	key     K           // offset for ordering
	payload V           // caller data, never inspected
	height  int         // leaf = 0
	balance int         // height(right) - height(left)
}

// create a leaf node with an absent payload
func newNode[K cmp.Ordered, V any](key K) *Node[K, V] {
	return &Node[K, V]{
		key:     key,
		height:  0,
		balance: 0,
	}
}

// internal: height of a possibly absent sub-tree
func heightOf[K cmp.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height and balance from the children
//
// must be called after either child link has changed and before the
// node takes part in any balance decision
func (p *Node[K, V]) update() {
	lh := heightOf(p.left)
	rh := heightOf(p.right)
	p.height = max(lh, rh) + 1
	p.balance = rh - lh
}

// Key - read the offset from a node
func (p *Node[K, V]) Key() K {
	return p.key
}

// Payload - read the caller data from a node
func (p *Node[K, V]) Payload() V {
	return p.payload
}

// SetPayload - replace the caller data of a node
func (p *Node[K, V]) SetPayload(payload V) {
	p.payload = payload
}

// Height - height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Balance - right height minus left height, always -1, 0 or +1
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// Left - left child or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - right child or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// String - one line summary showing the child heights
func (p *Node[K, V]) String() string {
	lh := "None"
	if nil != p.left {
		lh = fmt.Sprintf("%d", p.left.height)
	}
	rh := "None"
	if nil != p.right {
		rh = fmt.Sprintf("%d", p.right.height)
	}
	return fmt.Sprintf("<Node: Start:%v Height:%d L:%s R:%s>", p.key, p.height, lh, rh)
}
