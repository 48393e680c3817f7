// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Remove - removes a specific offset from the tree
//
// removing an offset that is not present does nothing
//
// Note: when the removed node has two children its successor's offset
//       and payload move into it, so a node previously returned for
//       the successor offset is no longer part of the tree
func (tree *Tree[K, V]) Remove(key K) {
	removed := false
	tree.root, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
}

// internal delete routine
// returns the possibly updated sub-tree root
func remove[K cmp.Ordered, V any](key K, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, removed = remove(key, p.left)
	case -1: // p.key < key
		p.right, removed = remove(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the successor's offset and payload,
		// then delete the successor, which has no left child
		q := p.right.first()
		p.key = q.key
		p.payload = q.payload
		p.right, removed = remove(q.key, p.right)
	}
	if !removed {
		return p, false
	}
	p.update()
	return rebalance(p), true
}
