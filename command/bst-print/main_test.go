// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultKeys, keys)

	keys, err = parseKeys([]string{"5", "-2", "9"})
	require.NoError(t, err)
	assert.Equal(t, []int{5, -2, 9}, keys)

	_, err = parseKeys([]string{"5", "x"})
	assert.Error(t, err)
}

func TestRunDefault(t *testing.T) {
	b := bytes.Buffer{}
	require.NoError(t, run(&b, defaultKeys, false, false))
	assert.Equal(t, "1 3 4 6 7 8 10 13 14 \n", b.String())
}

func TestRunBalance(t *testing.T) {
	b := bytes.Buffer{}
	require.NoError(t, run(&b, []int{1, 2, 3}, true, true))

	expected := "" +
		"1 2 3 \n" +
		"              /------+ 3 ><nil>\n" +
		"       /------+ 2 ><nil>\n" +
		"|------+ 1 ><nil>\n" +
		"depth: 3\n" +
		"1 2 3 \n" +
		"       /------+ 3 ><nil>\n" +
		"|------+ 2 ><nil>\n" +
		"       \\------+ 1 >2\n" +
		"depth: 2\n"
	assert.Equal(t, expected, b.String())
}
