// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error, grouped into classes, so
// that callers compare against the variable or test the class rather
// than matching strings.  A missing key is never an error; lookups
// report it with an end iterator or a false flag.
package fault
