// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"
)

// First - return the node with the lowest offset
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest offset
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// All - iterate over the nodes in ascending offset order
//
// each call returns an independent sequence; the tree must not be
// modified while a sequence is being consumed
func (tree *Tree[K, V]) All() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		walk(tree.root, yield)
	}
}

// Keys - iterate over the offsets in ascending order
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range tree.All() {
			if !yield(p.key) {
				return
			}
		}
	}
}

// internal: in-order walk, false if the consumer stopped early
func walk[K cmp.Ordered, V any](p *Node[K, V], yield func(*Node[K, V]) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, yield) && yield(p) && walk(p.right, yield)
}
