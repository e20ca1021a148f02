// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/bst/bst"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// used when no keys are given
var defaultKeys = []int{1, 3, 4, 6, 7, 8, 10, 13, 14}

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "balance", HasArg: getoptions.NO_ARGUMENT, Short: 'b'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--balance] [--tree] [key…]", program)
	}

	keys, err := parseKeys(arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	err = run(os.Stdout, keys, len(options["balance"]) > 0, len(options["tree"]) > 0)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}

// decimal keys from the command line, or the default list
func parseKeys(arguments []string) ([]int, error) {
	if 0 == len(arguments) {
		return defaultKeys, nil
	}
	keys := make([]int, 0, len(arguments))
	for _, a := range arguments {
		k, err := strconv.Atoi(a)
		if nil != err {
			return nil, fmt.Errorf("invalid key: %q", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// insert keys, print them in order and optionally the tree shape
// before and after balancing
func run(w io.Writer, keys []int, balance bool, showTree bool) error {
	tree := bst.New[int, int]()
	for _, k := range keys {
		if _, _, err := tree.Insert(k, 0); nil != err {
			return err
		}
	}

	fmt.Fprintln(w, tree.String())
	if showTree {
		depth := tree.Print(w, false)
		fmt.Fprintf(w, "depth: %d\n", depth)
	}

	if !balance {
		return nil
	}
	if err := tree.Balance(); nil != err {
		return err
	}
	fmt.Fprintln(w, tree.String())
	if showTree {
		depth := tree.Print(w, false)
		fmt.Fprintf(w, "depth: %d\n", depth)
	}
	return tree.Check()
}
