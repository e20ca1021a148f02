// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/benchmark"
	"github.com/bitmark-inc/bst/configuration"
)

// basic defaults
const (
	defaultSize    = 100000
	defaultSeed    = 1
	defaultLookups = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "bst-bench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"benchmark":       "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - everything read from the Lua file
type Configuration struct {
	Benchmark benchmark.Configuration `gluamapper:"benchmark" json:"benchmark"`
	Logging   logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// defaults, used directly if there is no configuration file
func defaultConfiguration() *Configuration {
	return &Configuration{
		Benchmark: benchmark.Configuration{
			Size:    defaultSize,
			Seed:    defaultSeed,
			Lookups: defaultLookups,
			Balance: true,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}
}

// will read and decode the configuration, a relative log directory
// is taken from the configuration file's directory
func getConfiguration(configurationFileName string) (*Configuration, error) {
	options := defaultConfiguration()
	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	dataDirectory, _ := filepath.Split(configurationFileName)
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	return options, nil
}
