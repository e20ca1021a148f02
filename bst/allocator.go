// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bst/fault"
)

// index value used for both "no child" and "no successor"
const none = -1

// number of nodes in each allocation block
const blockSize = 256

// a node in the tree
type node[K, V any] struct {
	left  int // left sub-tree
	right int // right sub-tree
	next  int // where in-order traversal resumes after this sub-tree
	key   K   // key part for ordering
	value V   // value part for data storage
}

// store - all the nodes of one tree
//
// nodes are allocated in fixed blocks so that the address of a node
// never changes once it is created, and are only released together
type store[K, V any] struct {
	blocks  [][]node[K, V]
	count   int  // total nodes created
	limit   int  // maximum nodes, zero for no limit
	retired bool // set once the tree has dropped this store
}

func newStore[K, V any](limit int) *store[K, V] {
	return &store[K, V]{
		limit: limit,
	}
}

// allocate a new node and return its index
func (s *store[K, V]) newNode(key K, value V, next int) (int, error) {
	if s.limit > 0 && s.count >= s.limit {
		return none, fault.ErrCapacityExceeded
	}
	b := s.count / blockSize
	if b == len(s.blocks) {
		s.blocks = append(s.blocks, make([]node[K, V], 0, blockSize))
	}
	s.blocks[b] = append(s.blocks[b], node[K, V]{
		left:  none,
		right: none,
		next:  next,
		key:   key,
		value: value,
	})
	i := s.count
	s.count += 1
	return i, nil
}

// resolve an index
func (s *store[K, V]) at(i int) *node[K, V] {
	return &s.blocks[i/blockSize][i%blockSize]
}

// release every node, leaving the store marked as retired
func (s *store[K, V]) retire() {
	s.blocks = nil
	s.count = 0
	s.retired = true
}

func (s *store[K, V]) hasLeft(i int) bool {
	return none != s.at(i).left
}

func (s *store[K, V]) hasRight(i int) bool {
	return none != s.at(i).right
}

func (s *store[K, V]) isLeaf(i int) bool {
	return !s.hasLeft(i) && !s.hasRight(i)
}

// internal: lowest node in a sub-tree
func (s *store[K, V]) leftmost(i int) int {
	for s.hasLeft(i) {
		i = s.at(i).left
	}
	return i
}

// internal: in-order successor of a node, none if it is the highest
func (s *store[K, V]) successor(i int) int {
	n := s.at(i)
	if none != n.right {
		return s.leftmost(n.right)
	}
	return n.next
}
