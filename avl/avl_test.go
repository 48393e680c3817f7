// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"slices"
	"sort"
	"testing"

	"github.com/bitmark-inc/offsettree/avl"
)

func TestListShort(t *testing.T) {
	addList := []int{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doNeighbours(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doNeighbours(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doNeighbours(t, addList)
}

// insert everything then delete a prefix of the list, checking the
// tree after every step
func doList(t *testing.T, addList []int) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int]struct{})

		tree := avl.New[int, string]()
		for _, key := range addList {
			tree.Insert(key)
			if err := tree.Check(); nil != err {
				t.Logf("tree:\n%s", tree.Describe())
				t.Fatalf("add: %d  inconsistent tree: %s", key, err)
			}
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			tree.Remove(key)
			if tree.Contains(key) {
				t.Fatalf("delete: %d  still in tree", key)
			}
			if err := tree.Check(); nil != err {
				t.Logf("tree:\n%s", tree.Describe())
				t.Fatalf("delete: %d  inconsistent tree: %s", key, err)
			}
		}

		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue
			}
			if !tree.Contains(key) {
				t.Fatalf("remainder: %d  missing from tree", key)
			}
		}

		for _, key := range addList[i:] {
			tree.Remove(key)
		}
		if !tree.IsEmpty() {
			t.Logf("tree:\n%s", tree.Describe())
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// sorted unique copy of a list
func uniqueSorted(addList []int) []int {
	expected := slices.Clone(addList)
	sort.Ints(expected)
	return slices.Compact(expected)
}

// traverse the tree forwards to check iterators
func doTraverse(t *testing.T, addList []int) {

	tree := avl.New[int, string]()
	for _, key := range addList {
		tree.Insert(key)
	}
	expected := uniqueSorted(addList)

	if n := tree.Count(); n != len(expected) {
		t.Fatalf("tree count: actual: %d  expected: %d", n, len(expected))
	}

	// twice to ensure the sequence restarts
	for pass := 0; pass < 2; pass += 1 {
		actual := slices.Collect(tree.Keys())
		if !slices.Equal(expected, actual) {
			t.Fatalf("pass: %d  keys: %v  expected: %v", pass, actual, expected)
		}
	}

	if p := tree.First(); nil == p || p.Key() != expected[0] {
		t.Fatalf("first: %v  expected: %d", p, expected[0])
	}
	if p := tree.Last(); nil == p || p.Key() != expected[len(expected)-1] {
		t.Fatalf("last: %v  expected: %d", p, expected[len(expected)-1])
	}

	// early stop
	n := 0
	for range tree.All() {
		n += 1
		if 3 == n {
			break
		}
	}
	if n != min(3, len(expected)) {
		t.Fatalf("early stop visited: %d", n)
	}
}

// check predecessor and successor against the sorted list, for exact
// keys and for keys in the gaps
func doNeighbours(t *testing.T, addList []int) {

	tree := avl.New[int, string]()
	for _, key := range addList {
		tree.Insert(key)
	}
	expected := uniqueSorted(addList)

	for i, key := range expected {
		pk, pok := tree.PredecessorKey(key)
		if 0 == i {
			if pok {
				t.Fatalf("predecessor of first: %d returned: %d", key, pk)
			}
		} else if !pok || pk != expected[i-1] {
			t.Fatalf("predecessor of: %d  actual: %d  expected: %d", key, pk, expected[i-1])
		}

		sk, sok := tree.SuccessorKey(key)
		if len(expected)-1 == i {
			if sok {
				t.Fatalf("successor of last: %d returned: %d", key, sk)
			}
		} else if !sok || sk != expected[i+1] {
			t.Fatalf("successor of: %d  actual: %d  expected: %d", key, sk, expected[i+1])
		}

		// just above the key: predecessor is the key itself
		if pk, pok := tree.PredecessorKey(key + 1); !pok || pk != key {
			t.Fatalf("predecessor of: %d  actual: %d  expected: %d", key+1, pk, key)
		}
		// just below the key: successor is the key itself
		if sk, sok := tree.SuccessorKey(key - 1); !sok || sk != key {
			t.Fatalf("successor of: %d  actual: %d  expected: %d", key-1, sk, key)
		}
	}
}

func makeKey() int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return n % 10000
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[int, string]()
	d := make([]int, toDelete)
	present := make(map[int]struct{})

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
		present[key] = struct{}{}
	}

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		tree.Remove(key)
		delete(present, key)
		if err := tree.Check(); nil != err {
			t.Fatalf("delete: %d  inconsistent tree: %s", key, err)
		}
	}

	if tree.Count() != len(present) {
		t.Fatalf("count: %d  expected: %d", tree.Count(), len(present))
	}
	for key := range present {
		if !tree.Contains(key) {
			t.Fatalf("missing key: %d", key)
		}
	}

	// add back a test value
	const testKey = 500
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey)
	tree.FindExact(testKey).SetPayload(testValue)

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	tv := tree.FindExact(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %d", testKey)
	}
	if testValue != tv.Payload() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Payload(), testValue)
	}

	tree.Remove(testKey)
	if tv = tree.FindExact(testKey); nil != tv {
		t.Fatalf("test key not deleted and contains: %q", tv.Payload())
	}
}

// the height of an AVL tree is bounded by about 1.44 log2(n)
func TestHeightBound(t *testing.T) {
	tree := avl.New[int, struct{}]()
	if -1 != tree.Height() {
		t.Fatalf("empty tree height: %d", tree.Height())
	}
	for i := 0; i < 1023; i += 1 {
		tree.Insert(i)
	}
	if h := tree.Height(); h > 13 {
		t.Fatalf("height: %d too large for %d nodes", h, tree.Count())
	}
	// ascending inserts into an AVL tree give a perfect tree
	if h := tree.Height(); h != 9 {
		t.Fatalf("height: %d  expected: 9", h)
	}
}

func TestStringKeys(t *testing.T) {
	tree := avl.New[string, int]()
	for i, s := range []string{"m", "c", "x", "a", "e", "q", "z"} {
		tree.Insert(s)
		tree.FindExact(s).SetPayload(i)
	}
	if k, ok := tree.SuccessorKey("e"); !ok || "m" != k {
		t.Fatalf("successor: %q", k)
	}
	if k, ok := tree.PredecessorKey("b"); !ok || "a" != k {
		t.Fatalf("predecessor: %q", k)
	}
	if p := tree.FindExact("q"); nil == p || 5 != p.Payload() {
		t.Fatalf("payload: %v", p)
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func ExampleTree_Describe() {
	tree := avl.New[int, string]()
	for _, k := range []int{3, 1, 5, 0, 2, 4, 6, 7} {
		tree.Insert(k)
	}
	fmt.Println(tree.Describe())
	// Output:
	// <Node: Start:3 Height:3 L:1 R:2>
	// 	L: <Node: Start:1 Height:1 L:0 R:0>
	// 		L: <Node: Start:0 Height:0 L:None R:None>
	// 		R: <Node: Start:2 Height:0 L:None R:None>
	// 	R: <Node: Start:5 Height:2 L:0 R:1>
	// 		L: <Node: Start:4 Height:0 L:None R:None>
	// 		R: <Node: Start:6 Height:1 L:None R:0>
	// 			R: <Node: Start:7 Height:0 L:None R:None>
}
