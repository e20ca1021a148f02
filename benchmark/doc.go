// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - compare lookup times of a bst tree with other
// ordered containers
//
// the same random keys are inserted in every container, the contents
// are cross checked and then each container is timed looking up a key
// that is higher than any present, which is the longest search path
// for a tree.  The random generator is owned by the caller so a run
// can be repeated by reusing a seed.
package benchmark
