// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.nodes, tree.root, "", root, printData)
}

// String - keys in order separated by spaces
func (tree *Tree[K, V]) String() string {
	b := strings.Builder{}
	for k := range tree.All() {
		fmt.Fprintf(&b, "%v ", k)
	}
	return b.String()
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, s *store[K, V], p int, prefix string, br branch, printData bool) int {
	if none == p {
		return 0
	}
	n := s.at(p)
	rd := 0
	ld := 0
	if none != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, s, n.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	next := interface{}(nil)
	if none != n.next {
		next = s.at(n.next).key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v >%v\n", n.key, n.value, next)
	} else {
		fmt.Fprintf(w, "%v >%v\n", n.key, next)
	}
	if none != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, s, n.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
