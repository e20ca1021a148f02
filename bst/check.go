// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bst/fault"
)

// Check - verify the ordering and the continuation links for
// consistency
//
// walks the tree with an explicit stack, independent of the links
// being tested, and for each node confirms that it lies between the
// bounds set by its ancestors and that following the tree's own links
// from it leads to the node this walk visits next
func (tree *Tree[K, V]) Check() error {
	s := tree.nodes

	type bound struct {
		node  int
		lower int // none if unbounded
		upper int // none if unbounded
	}

	previous := none
	visited := 0
	stack := []bound{}
	for p, lower, upper := tree.root, none, none; none != p || len(stack) > 0; {

		// descend to the lowest node keeping the bounds
		for none != p {
			stack = append(stack, bound{node: p, lower: lower, upper: upper})
			upper = p
			p = s.at(p).left
		}

		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := s.at(b.node)

		if none != b.lower && tree.compare(s.at(b.lower).key, n.key) >= 0 {
			return fault.ErrOrderViolation
		}
		if none != b.upper && tree.compare(n.key, s.at(b.upper).key) >= 0 {
			return fault.ErrOrderViolation
		}

		if none != previous && s.successor(previous) != b.node {
			return fault.ErrBrokenLink
		}
		previous = b.node
		visited += 1

		p = n.right
		lower = b.node
		upper = b.upper
	}

	// the highest node must end the chain
	if none != previous && none != s.successor(previous) {
		return fault.ErrBrokenLink
	}
	if visited != s.count {
		return fault.ErrCountMismatch
	}
	return nil
}
