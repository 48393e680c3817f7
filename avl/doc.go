// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique ordered offsets, each
// holding one opaque payload slot
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Concurrent readers are fine as long as no insert or
//       remove is in progress.
//
// Every mutation descends recursively from the root and returns the
// possibly new subtree root to its caller, which stores it back in the
// child slot it came from.  On the way back up each node recomputes its
// cached height and balance and is rotated if the balance has left
// the range -1..+1.
//
// Inserting an offset that already exists does not touch its payload.
// The payload is written through the node returned by FindExact.
package avl
