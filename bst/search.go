// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - find a specific key, returns End if it is not present
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{
		nodes:   tree.nodes,
		current: tree.search(key),
	}
}

// Get - the value for a key and true, or the zero value and false if
// the key is not present
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	i := tree.search(key)
	if none == i {
		var v V
		return v, false
	}
	return tree.nodes.at(i).value, true
}

// internal: walk down from the root, cost is the depth of the key
func (tree *Tree[K, V]) search(key K) int {
	p := tree.root
	for none != p {
		n := tree.nodes.at(p)
		switch c := tree.compare(key, n.key); {
		case c < 0:
			p = n.left
		case c > 0:
			p = n.right
		default:
			return p
		}
	}
	return none
}
