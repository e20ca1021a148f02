// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Balance - rebuild the tree with minimum height
//
// a new tree is built from the in-order sequence and only replaces
// the current one when complete, so on error the tree is unchanged.
// On success every iterator obtained before the call is invalidated.
//
// the root of each sub-tree is the lower median of its range: the
// element at index (L-1)/2 of a range of L elements, so for an even
// length the left side holds one element fewer than the right
func (tree *Tree[K, V]) Balance() error {
	first := tree.First()
	n := distance(first, tree.End())

	b := &builder[K, V]{
		nodes:   newStore[K, V](tree.limit),
		root:    none,
		compare: tree.compare,
	}
	if err := b.build(first, n); nil != err {
		return err
	}

	tree.nodes.retire()
	tree.nodes = b.nodes
	tree.root = b.root
	return nil
}

// the replacement tree under construction
type builder[K, V any] struct {
	nodes   *store[K, V]
	root    int
	compare CompareFunc[K]
}

// insert the n elements starting at first, medians before their
// halves; recursion depth is log2(n)
func (b *builder[K, V]) build(first Iterator[K, V], n int) error {
	if 0 == n {
		return nil
	}
	m := (n - 1) / 2
	median := advance(first, m)

	p := median.nodes.at(median.current)
	if _, _, err := insert(b.nodes, &b.root, b.compare, p.key, p.value); nil != err {
		return err
	}

	if err := b.build(first, m); nil != err {
		return err
	}
	return b.build(advance(median, 1), n-m-1)
}
