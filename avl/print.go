// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Describe - multi-line dump of the whole tree, empty string for an
// empty tree
func (tree *Tree[K, V]) Describe() string {
	if nil == tree.root {
		return ""
	}
	return tree.root.Describe()
}

// Describe - multi-line dump of the sub-tree rooted at this node
//
// one line per node, each level of depth adds a tab and children are
// marked with "L: " or "R: "
func (p *Node[K, V]) Describe() string {
	return strings.Join(p.describe(), "\n")
}

// internal: lines of the dump, root first
func (p *Node[K, V]) describe() []string {
	lines := []string{p.String()}
	if nil != p.left {
		lines = append(lines, indent("L: ", p.left.describe())...)
	}
	if nil != p.right {
		lines = append(lines, indent("R: ", p.right.describe())...)
	}
	return lines
}

// internal: mark the first line of a child dump and push it one level
func indent(branch string, lines []string) []string {
	lines[0] = "\t" + branch + lines[0]
	for i := 1; i < len(lines); i += 1 {
		lines[i] = "\t" + lines[i]
	}
	return lines
}
