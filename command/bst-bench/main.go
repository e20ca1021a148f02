// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/rand"

	"github.com/bitmark-inc/bst/benchmark"
	"github.com/bitmark-inc/bst/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "size", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "lookups", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "no-balance", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--size=N] [--seed=N] [--lookups=N] [--no-balance]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides the file
	if len(options["size"]) > 0 {
		theConfiguration.Benchmark.Size = intOption(program, "size", options["size"][0])
	}
	if len(options["seed"]) > 0 {
		seed, err := strconv.ParseUint(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q  error: %s", program, options["seed"][0], err)
		}
		theConfiguration.Benchmark.Seed = seed
	}
	if len(options["lookups"]) > 0 {
		theConfiguration.Benchmark.Lookups = intOption(program, "lookups", options["lookups"][0])
	}
	if len(options["no-balance"]) > 0 {
		theConfiguration.Benchmark.Balance = false
	}
	verbose := len(options["verbose"]) > 0

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0o700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	rng := rand.New(rand.NewSource(theConfiguration.Benchmark.Seed))
	result, err := benchmark.Run(theConfiguration.Benchmark, rng, logger.New("benchmark"))
	if nil != err {
		fault.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark error: %s", program, err)
	}

	if verbose {
		fmt.Printf("size: %d  seed: %d  lookups: %d  balance: %v\n",
			theConfiguration.Benchmark.Size,
			theConfiguration.Benchmark.Seed,
			theConfiguration.Benchmark.Lookups,
			theConfiguration.Benchmark.Balance,
		)
	}
	fmt.Printf("count: %d  height: %d\n", result.Count, result.Height)
	for _, timing := range result.Timings {
		fmt.Printf("%-8s %10d ns\n", timing.Name, timing.Average.Nanoseconds())
	}
}

// decode a positive integer option or exit
func intOption(program string, name string, value string) int {
	n, err := strconv.Atoi(value)
	if nil != err || n <= 0 {
		exitwithstatus.Message("%s: invalid %s: %q", program, name, value)
	}
	return n
}
