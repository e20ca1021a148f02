// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"encoding/binary"

	"github.com/google/btree"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"

	"github.com/bitmark-inc/bst/bst"
)

// an ordered map from int to int
type container interface {
	Name() string
	Insert(key int, value int) error // keeps an existing value
	Get(key int) (int, bool)
	Keys() []int
}

// degree of the reference b-tree
const btreeDegree = 32

// the tree under test
type treeContainer struct {
	tree *bst.Tree[int, int]
}

func newTreeContainer() *treeContainer {
	return &treeContainer{
		tree: bst.New[int, int](),
	}
}

func (c *treeContainer) Name() string {
	return "bst"
}

func (c *treeContainer) Insert(key int, value int) error {
	_, _, err := c.tree.Insert(key, value)
	return err
}

func (c *treeContainer) Get(key int) (int, bool) {
	return c.tree.Get(key)
}

func (c *treeContainer) Keys() []int {
	keys := make([]int, 0, c.tree.Count())
	for k := range c.tree.All() {
		keys = append(keys, k)
	}
	return keys
}

// google b-tree
type btreeContainer struct {
	tree *btree.BTreeG[item]
}

type item struct {
	key   int
	value int
}

func newBTreeContainer() *btreeContainer {
	return &btreeContainer{
		tree: btree.NewG[item](btreeDegree, func(a, b item) bool {
			return a.key < b.key
		}),
	}
}

func (c *btreeContainer) Name() string {
	return "btree"
}

func (c *btreeContainer) Insert(key int, value int) error {
	if !c.tree.Has(item{key: key}) {
		c.tree.ReplaceOrInsert(item{key: key, value: value})
	}
	return nil
}

func (c *btreeContainer) Get(key int) (int, bool) {
	i, ok := c.tree.Get(item{key: key})
	return i.value, ok
}

func (c *btreeContainer) Keys() []int {
	keys := make([]int, 0, c.tree.Len())
	c.tree.Ascend(func(i item) bool {
		keys = append(keys, i.key)
		return true
	})
	return keys
}

// leveldb memory database, keys are big endian so byte order is
// numeric order for non-negative keys
type memdbContainer struct {
	db *memdb.DB
}

func newMemDBContainer(capacity int) *memdbContainer {
	return &memdbContainer{
		db: memdb.New(comparer.DefaultComparer, capacity),
	}
}

func (c *memdbContainer) Name() string {
	return "memdb"
}

func encode(n int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(n))
	return b
}

func (c *memdbContainer) Insert(key int, value int) error {
	k := encode(key)
	if c.db.Contains(k) {
		return nil
	}
	return c.db.Put(k, encode(value))
}

func (c *memdbContainer) Get(key int) (int, bool) {
	v, err := c.db.Get(encode(key))
	if nil != err {
		return 0, false
	}
	return int(binary.BigEndian.Uint64(v)), true
}

func (c *memdbContainer) Keys() []int {
	keys := make([]int, 0, c.db.Len())
	iter := c.db.NewIterator(nil)
	defer iter.Release()
	for iter.Next() {
		keys = append(keys, int(binary.BigEndian.Uint64(iter.Key())))
	}
	return keys
}
