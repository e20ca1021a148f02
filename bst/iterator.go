// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"iter"

	"github.com/bitmark-inc/bst/fault"
)

// Iterator - position of a node in a tree, or the end position
//
// iterators are only valid until the next Balance or Clear on the
// tree they came from; after that every access returns
// fault.ErrInvalidIterator
type Iterator[K, V any] struct {
	nodes   *store[K, V]
	current int
}

// ConstIterator - read-only form of Iterator
type ConstIterator[K, V any] struct {
	it Iterator[K, V]
}

// First - return an iterator at the node with the lowest key value,
// or End if the tree is empty
func (tree *Tree[K, V]) First() Iterator[K, V] {
	if tree.IsEmpty() {
		return tree.End()
	}
	return Iterator[K, V]{
		nodes:   tree.nodes,
		current: tree.nodes.leftmost(tree.root),
	}
}

// End - return the position after the highest key value
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{
		nodes:   tree.nodes,
		current: none,
	}
}

// ConstFirst - read-only form of First
func (tree *Tree[K, V]) ConstFirst() ConstIterator[K, V] {
	return tree.First().ReadOnly()
}

// ConstEnd - read-only form of End
func (tree *Tree[K, V]) ConstEnd() ConstIterator[K, V] {
	return tree.End().ReadOnly()
}

// All - range over the key/value pairs in key order
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s := tree.nodes
		for i := tree.First().current; none != i; i = s.successor(i) {
			n := s.at(i)
			if !yield(n.key, n.value) || s.retired {
				return
			}
		}
	}
}

// IsEnd - true if the iterator is past the highest key
func (it Iterator[K, V]) IsEnd() bool {
	return none == it.current
}

// Equal - true if both iterators are at the same node of the same tree
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it == other
}

// internal: the current node or an error if there is none
func (it Iterator[K, V]) node() (*node[K, V], error) {
	if nil == it.nodes || it.nodes.retired || none == it.current {
		return nil, fault.ErrInvalidIterator
	}
	return it.nodes.at(it.current), nil
}

// Key - read the key at the iterator
func (it Iterator[K, V]) Key() (K, error) {
	n, err := it.node()
	if nil != err {
		var k K
		return k, err
	}
	return n.key, nil
}

// Value - read the value at the iterator
func (it Iterator[K, V]) Value() (V, error) {
	n, err := it.node()
	if nil != err {
		var v V
		return v, err
	}
	return n.value, nil
}

// SetValue - overwrite the value at the iterator, the key is never
// changed
func (it Iterator[K, V]) SetValue(value V) error {
	n, err := it.node()
	if nil != err {
		return err
	}
	n.value = value
	return nil
}

// Pointer - the address of the stored value
//
// the pointer remains usable until Balance or Clear
func (it Iterator[K, V]) Pointer() (*V, error) {
	n, err := it.node()
	if nil != err {
		return nil, err
	}
	return &n.value, nil
}

// Next - move to the node with the next highest key value, the
// iterator becomes End after the highest key
//
// a right sub-tree holds the successor at its lowest node, otherwise
// the continuation link points directly to it
func (it *Iterator[K, V]) Next() error {
	if _, err := it.node(); nil != err {
		return err
	}
	it.current = it.nodes.successor(it.current)
	return nil
}

// ReadOnly - convert to a ConstIterator at the same position
func (it Iterator[K, V]) ReadOnly() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: it}
}

// IsEnd - true if the iterator is past the highest key
func (c ConstIterator[K, V]) IsEnd() bool {
	return c.it.IsEnd()
}

// Equal - true if both iterators are at the same node of the same tree
func (c ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return c.it.Equal(other.it)
}

// Key - read the key at the iterator
func (c ConstIterator[K, V]) Key() (K, error) {
	return c.it.Key()
}

// Value - read the value at the iterator
func (c ConstIterator[K, V]) Value() (V, error) {
	return c.it.Value()
}

// Next - move to the node with the next highest key value
func (c *ConstIterator[K, V]) Next() error {
	return c.it.Next()
}

// internal: count the steps from first until last is reached
func distance[K, V any](first Iterator[K, V], last Iterator[K, V]) int {
	n := 0
	for first != last && !first.IsEnd() {
		first.current = first.nodes.successor(first.current)
		n += 1
	}
	return n
}

// internal: step forward n times, the caller guarantees the range
func advance[K, V any](it Iterator[K, V], n int) Iterator[K, V] {
	for ; n > 0; n -= 1 {
		it.current = it.nodes.successor(it.current)
	}
	return it
}
