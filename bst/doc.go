// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an ordered map held in an unbalanced binary search
// tree with a continuation link in every node to allow iteration
// through the nodes without a stack or parent pointers
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Insert never overwrites: a second insert of an existing key leaves
// the first value in place.  The tree is not rebalanced on insert, it
// can become a linear list if keys arrive in order; call Balance to
// rebuild it with minimum height.
//
// Nodes are held in a per-tree store and refer to each other by
// index.  Balance and Clear retire the whole store at once, and any
// iterator created before that returns fault.ErrInvalidIterator
// instead of reading the old nodes.
package bst
