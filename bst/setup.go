// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// CompareFunc - three way comparison of keys
// negative: a < b, zero: a == b, positive: a > b
type CompareFunc[K any] func(a, b K) int

// FromLess - make a CompareFunc from a strict weak "less than" order,
// two keys where neither is less than the other are treated as equal
func FromLess[K any](less func(a, b K) bool) CompareFunc[K] {
	return func(a, b K) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return +1
		}
		return 0
	}
}

// Option - optional setting for a new tree
type Option func(*settings)

type settings struct {
	limit int
}

// MaximumNodes - limit the number of nodes a tree may hold, inserts
// beyond this fail with fault.ErrCapacityExceeded
func MaximumNodes(n int) Option {
	return func(s *settings) {
		s.limit = n
	}
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    int
	compare CompareFunc[K]
	nodes   *store[K, V]
	limit   int
}

// New - create an initially empty tree ordered by the natural order
// of the key type
func New[K cmp.Ordered, V any](options ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], options...)
}

// NewFunc - create an initially empty tree ordered by compare
func NewFunc[K, V any](compare CompareFunc[K], options ...Option) *Tree[K, V] {
	s := settings{}
	for _, option := range options {
		option(&s)
	}
	return &Tree[K, V]{
		root:    none,
		compare: compare,
		nodes:   newStore[K, V](s.limit),
		limit:   s.limit,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.nodes.count
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K, V]) Height() int {
	if tree.IsEmpty() {
		return 0
	}
	height := 0
	level := []int{tree.root}
	for len(level) > 0 {
		height += 1
		below := make([]int, 0, 2*len(level))
		for _, i := range level {
			n := tree.nodes.at(i)
			if none != n.left {
				below = append(below, n.left)
			}
			if none != n.right {
				below = append(below, n.right)
			}
		}
		level = below
	}
	return height
}

// Clear - drop all nodes, the tree can be reused as if new
//
// any iterator obtained before this call is invalidated
func (tree *Tree[K, V]) Clear() {
	tree.nodes.retire()
	tree.nodes = newStore[K, V](tree.limit)
	tree.root = none
}

// Clone - make an independent deep copy of the tree
//
// the copy has the same shape, comparator and node limit; every
// continuation link is derived again inside the new node store
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	c := &Tree[K, V]{
		root:    none,
		compare: tree.compare,
		nodes:   newStore[K, V](tree.limit),
		limit:   tree.limit,
	}
	if tree.IsEmpty() {
		return c
	}

	// work item: source node, its continuation in the copy, and the
	// slot in the copy that will own it
	type work struct {
		from  int
		next  int
		owner *int
	}

	src := tree.nodes
	dst := c.nodes
	stack := []work{{from: tree.root, next: none, owner: &c.root}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := src.at(w.from)

		// cannot fail: the source already holds this many nodes
		// under the same limit
		i, _ := dst.newNode(n.key, n.value, w.next)
		*w.owner = i

		copied := dst.at(i)
		if none != n.right {
			stack = append(stack, work{from: n.right, next: w.next, owner: &copied.right})
		}
		if none != n.left {
			stack = append(stack, work{from: n.left, next: i, owner: &copied.left})
		}
	}
	return c
}
