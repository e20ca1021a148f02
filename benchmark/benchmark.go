// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"math"
	"slices"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/rand"

	"github.com/bitmark-inc/bst/fault"
)

// Configuration - parameters of a run
type Configuration struct {
	Size    int    `gluamapper:"size" json:"size"`
	Seed    uint64 `gluamapper:"seed" json:"seed"`
	Lookups int    `gluamapper:"lookups" json:"lookups"`
	Balance bool   `gluamapper:"balance" json:"balance"`
}

// Timing - average lookup time for one container
type Timing struct {
	Name    string        `json:"name"`
	Average time.Duration `json:"average"`
}

// Result - outcome of a run
type Result struct {
	Count   int      `json:"count"`  // distinct keys
	Height  int      `json:"height"` // of the bst tree when timed
	Timings []Timing `json:"timings"`
}

// Run - fill the containers from rng, verify them and time lookups
func Run(configuration Configuration, rng *rand.Rand, log *logger.L) (*Result, error) {
	if configuration.Size <= 0 {
		return nil, fault.ErrInvalidSize
	}
	lookups := configuration.Lookups
	if lookups <= 0 {
		lookups = 1
	}

	tree := newTreeContainer()
	containers := []container{
		tree,
		newBTreeContainer(),
		newMemDBContainer(configuration.Size * 16),
	}

	maximum := 0
	for i := 0; i < configuration.Size; i += 1 {
		key := rng.Intn(math.MaxInt32)
		for _, c := range containers {
			if err := c.Insert(key, valueOf(key)); nil != err {
				log.Errorf("%s: insert: %d  error: %s", c.Name(), key, err)
				return nil, err
			}
		}
		if key > maximum {
			maximum = key
		}
	}
	log.Infof("inserted: %d  distinct: %d  height: %d", configuration.Size, tree.tree.Count(), tree.tree.Height())

	if configuration.Balance {
		if err := tree.tree.Balance(); nil != err {
			return nil, err
		}
		log.Infof("balanced height: %d", tree.tree.Height())
	}
	if err := tree.tree.Check(); nil != err {
		log.Criticalf("tree check error: %s", err)
		return nil, err
	}

	if err := verify(configuration.Size, containers, log); nil != err {
		return nil, err
	}

	result := &Result{
		Count:   tree.tree.Count(),
		Height:  tree.tree.Height(),
		Timings: make([]Timing, 0, len(containers)),
	}
	for _, c := range containers {
		start := time.Now()
		for i := 0; i < lookups; i += 1 {
			c.Get(maximum + 1)
		}
		average := time.Since(start) / time.Duration(lookups)
		log.Debugf("%s: lookups: %d  average: %s", c.Name(), lookups, average)
		result.Timings = append(result.Timings, Timing{
			Name:    c.Name(),
			Average: average,
		})
	}
	return result, nil
}

// value stored with each key
func valueOf(key int) int {
	return key % 1000
}

// all containers must agree on every small key and on the complete
// ordered key list
func verify(size int, containers []container, log *logger.L) error {
	reference := containers[0]
	for n := 0; n < size; n += 1 {
		v, ok := reference.Get(n)
		for _, c := range containers[1:] {
			cv, cok := c.Get(n)
			if ok != cok || v != cv {
				log.Errorf("key: %d  %s: %d/%v  %s: %d/%v", n, reference.Name(), v, ok, c.Name(), cv, cok)
				return fault.ErrVerificationFailed
			}
		}
	}

	keys := reference.Keys()
	for _, c := range containers[1:] {
		if !slices.Equal(keys, c.Keys()) {
			log.Errorf("%s and %s key lists differ", reference.Name(), c.Name())
			return fault.ErrVerificationFailed
		}
	}
	return nil
}
