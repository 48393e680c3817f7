// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// FindExact - find the node holding a specific offset, nil if absent
func (tree *Tree[K, V]) FindExact(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch cmp.Compare(p.key, key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Contains - true if the offset is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.FindExact(key)
}

// Successor - the node with the smallest offset strictly greater than
// key, or nil if there is none
func (tree *Tree[K, V]) Successor(key K) *Node[K, V] {
	var best *Node[K, V]
	p := tree.root
	for nil != p {
		if cmp.Compare(p.key, key) <= 0 { // p.key <= key
			p = p.right
		} else {
			best = p // closest so far, try for a closer one on the left
			p = p.left
		}
	}
	return best
}

// Predecessor - the node with the largest offset strictly less than
// key, or nil if there is none
func (tree *Tree[K, V]) Predecessor(key K) *Node[K, V] {
	var best *Node[K, V]
	p := tree.root
	for nil != p {
		if cmp.Compare(p.key, key) >= 0 { // p.key >= key
			p = p.left
		} else {
			best = p
			p = p.right
		}
	}
	return best
}

// SuccessorKey - the smallest offset strictly greater than key
//
// the boolean is false if no such offset exists
func (tree *Tree[K, V]) SuccessorKey(key K) (K, bool) {
	if p := tree.Successor(key); nil != p {
		return p.key, true
	}
	var zero K
	return zero, false
}

// PredecessorKey - the largest offset strictly less than key
//
// the boolean is false if no such offset exists
func (tree *Tree[K, V]) PredecessorKey(key K) (K, bool) {
	if p := tree.Predecessor(key); nil != p {
		return p.key, true
	}
	var zero K
	return zero, false
}
