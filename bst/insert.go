// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a new node into the tree
//
// returns an iterator at the node holding key and true if a new node
// was created.  If the key is already present the existing value is
// kept and false is returned.  Only fails if the node limit is
// reached, and then the tree is unchanged
func (tree *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool, error) {
	i, added, err := insert(tree.nodes, &tree.root, tree.compare, key, value)
	if nil != err {
		return tree.End(), false, err
	}
	return Iterator[K, V]{nodes: tree.nodes, current: i}, added, nil
}

// Index - pointer to the value for key, inserting a zero value first
// if the key is not present
func (tree *Tree[K, V]) Index(key K) (*V, error) {
	var zero V
	it, _, err := tree.Insert(key, zero)
	if nil != err {
		return nil, err
	}
	return it.Pointer()
}

// internal routine for insert, shared with balance which builds into
// a separate store
func insert[K, V any](s *store[K, V], root *int, compare CompareFunc[K], key K, value V) (int, bool, error) {
	if none == *root {
		i, err := s.newNode(key, value, none)
		if nil != err {
			return none, false, err
		}
		*root = i
		return i, true, nil
	}

	p := *root
	for {
		n := s.at(p)
		c := compare(key, n.key)
		switch {
		case c < 0 && none != n.left:
			p = n.left
			continue
		case c > 0 && none != n.right:
			p = n.right
			continue
		case 0 == c:
			return p, false, nil
		}

		// n is the last node on the path
		if c < 0 {
			// new node is immediately before n
			i, err := s.newNode(key, value, p)
			if nil != err {
				return none, false, err
			}
			n.left = i
			return i, true, nil
		}

		// new node takes over the position n held before whatever
		// followed n's sub-tree
		i, err := s.newNode(key, value, n.next)
		if nil != err {
			return none, false, err
		}
		n.right = i
		return i, true, nil
	}
}
