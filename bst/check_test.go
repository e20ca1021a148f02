// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"testing"

	"github.com/bitmark-inc/bst/fault"
)

func makeIntTree(t *testing.T, keys ...int) *Tree[int, int] {
	tree := New[int, int]()
	for _, k := range keys {
		if _, _, err := tree.Insert(k, k); nil != err {
			t.Fatalf("insert: %d  error: %s", k, err)
		}
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("check: %s", err)
	}
	return tree
}

func TestContinuationLinks(t *testing.T) {
	tree := makeIntTree(t, 8, 4, 12, 2, 6, 10, 14, 5)

	expected := map[int]int{
		2:  4,
		4:  8, // has right child, link inherited from being left of 8
		5:  6,
		6:  8,
		8:  none,
		10: 12,
		12: none,
		14: none,
	}
	for key, next := range expected {
		i := tree.search(key)
		n := tree.nodes.at(i)
		actual := none
		if none != n.next {
			actual = tree.nodes.at(n.next).key
		}
		if actual != next {
			t.Errorf("key: %d  next: %d  expected: %d", key, actual, next)
		}
	}
}

func TestCheckBrokenLink(t *testing.T) {
	tree := makeIntTree(t, 8, 4, 12, 2, 6)

	// 2 should continue at 4
	i := tree.search(2)
	tree.nodes.at(i).next = tree.search(6)
	if err := tree.Check(); fault.ErrBrokenLink != err {
		t.Fatalf("check: %v  expected: %v", err, fault.ErrBrokenLink)
	}

	// highest node must end the chain
	tree = makeIntTree(t, 8, 4, 12)
	tree.nodes.at(tree.search(12)).next = tree.search(4)
	if err := tree.Check(); fault.ErrBrokenLink != err {
		t.Fatalf("check: %v  expected: %v", err, fault.ErrBrokenLink)
	}
}

func TestCheckOrder(t *testing.T) {
	tree := makeIntTree(t, 8, 4, 12, 2, 6)

	// 6 is in the left sub-tree of 8 so must stay below it
	tree.nodes.at(tree.search(6)).key = 9
	if err := tree.Check(); fault.ErrOrderViolation != err {
		t.Fatalf("check: %v  expected: %v", err, fault.ErrOrderViolation)
	}
}

func TestCheckCount(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)

	// detach a leaf
	tree.nodes.at(tree.root).right = none
	tree.nodes.at(tree.search(1)).next = tree.root
	if err := tree.Check(); fault.ErrCountMismatch != err {
		t.Fatalf("check: %v  expected: %v", err, fault.ErrCountMismatch)
	}
}

func TestStoreAddressesAreStable(t *testing.T) {
	s := newStore[int, int](0)
	first, err := s.newNode(0, 0, none)
	if nil != err {
		t.Fatalf("new node error: %s", err)
	}
	p := s.at(first)
	for i := 1; i < 3*blockSize+1; i += 1 {
		if _, err := s.newNode(i, i, none); nil != err {
			t.Fatalf("new node error: %s", err)
		}
	}
	if p != s.at(first) {
		t.Fatal("node moved after growth")
	}
	if 4 != len(s.blocks) {
		t.Errorf("blocks: %d  expected: 4", len(s.blocks))
	}
	if s.at(2*blockSize+5).key != 2*blockSize+5 {
		t.Errorf("wrong node at: %d", 2*blockSize+5)
	}

	s.retire()
	if !s.retired || 0 != s.count {
		t.Error("store not retired")
	}
}

func TestStructure(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3, 4)
	s := tree.nodes
	if !s.hasLeft(tree.root) || !s.hasRight(tree.root) || s.isLeaf(tree.root) {
		t.Error("root should have two children")
	}
	if !s.isLeaf(tree.search(1)) {
		t.Error("1 should be a leaf")
	}
	if s.leftmost(tree.root) != tree.search(1) {
		t.Error("leftmost of root should be 1")
	}
	if s.leftmost(tree.search(3)) != tree.search(3) {
		t.Error("leftmost of 3 should be itself")
	}
}

func TestDistanceAndAdvance(t *testing.T) {
	tree := makeIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	first := tree.First()
	if n := distance(first, tree.End()); 7 != n {
		t.Fatalf("distance: %d  expected: 7", n)
	}
	m := advance(first, 3)
	if k, _ := m.Key(); 5 != k {
		t.Errorf("advance 3: %d  expected: 5", k)
	}
	if n := distance(first, m); 3 != n {
		t.Errorf("distance to median: %d  expected: 3", n)
	}
}
