// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/offsettree/avl"
)

// Index - the offset operations a script can perform
type Index interface {
	Insert(offset float64)
	Remove(offset float64)
	Label(offset float64, label string) bool
	Lookup(offset float64) (string, bool)
	SuccessorKey(offset float64) (float64, bool)
	PredecessorKey(offset float64) (float64, bool)
	Count() int
	Check() error
	Describe() string
}

// labelled offsets held in an AVL tree
type treeIndex struct {
	*avl.Tree[float64, string]
}

// NewIndex - create an empty tree backed index
func NewIndex() Index {
	return &treeIndex{
		Tree: avl.New[float64, string](),
	}
}

// Label - set the label of an existing offset, false if not present
func (t *treeIndex) Label(offset float64, label string) bool {
	node := t.FindExact(offset)
	if nil == node {
		return false
	}
	node.SetPayload(label)
	return true
}

// Lookup - label of an offset, false if not present
func (t *treeIndex) Lookup(offset float64) (string, bool) {
	node := t.FindExact(offset)
	if nil == node {
		return "", false
	}
	return node.Payload(), true
}
