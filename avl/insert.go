// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Insert - ensure a node exists for the offset
//
// an existing node is left untouched, including its payload
func (tree *Tree[K, V]) Insert(key K) {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
}

// internal routine for insert
// returns the possibly updated sub-tree root
func insert[K cmp.Ordered, V any](key K, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // insert new node
		return newNode[K, V](key), true
	}
	added := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, p.right)
	default: // already present
		return p, false
	}
	p.update()
	return rebalance(p), added
}
