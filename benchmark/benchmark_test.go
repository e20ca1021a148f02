// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"math/bits"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/bitmark-inc/bst/fault"
)

const testingDirName = "testing"

// Test main entrypoint
func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func TestRunBalanced(t *testing.T) {
	configuration := Configuration{
		Size:    2000,
		Seed:    1,
		Lookups: 10,
		Balance: true,
	}
	result, err := Run(configuration, rand.New(rand.NewSource(configuration.Seed)), logger.New("test"))
	require.NoError(t, err, "run")

	assert.LessOrEqual(t, result.Count, configuration.Size, "count")
	assert.Greater(t, result.Count, 0, "count")
	assert.LessOrEqual(t, result.Height, bits.Len(uint(result.Count)), "height")

	names := []string{}
	for _, timing := range result.Timings {
		names = append(names, timing.Name)
		assert.GreaterOrEqual(t, int64(timing.Average), int64(0), "%s average", timing.Name)
	}
	assert.Equal(t, []string{"bst", "btree", "memdb"}, names, "containers")
}

func TestRunRepeatable(t *testing.T) {
	configuration := Configuration{
		Size:    500,
		Seed:    99,
		Balance: false,
	}
	log := logger.New("test")

	r1, err := Run(configuration, rand.New(rand.NewSource(configuration.Seed)), log)
	require.NoError(t, err, "first run")
	r2, err := Run(configuration, rand.New(rand.NewSource(configuration.Seed)), log)
	require.NoError(t, err, "second run")

	assert.Equal(t, r1.Count, r2.Count, "count")
	assert.Equal(t, r1.Height, r2.Height, "height")
}

func TestRunInvalidSize(t *testing.T) {
	_, err := Run(Configuration{Size: 0}, rand.New(rand.NewSource(1)), logger.New("test"))
	assert.Equal(t, fault.ErrInvalidSize, err)
}

func TestContainers(t *testing.T) {
	containers := []container{
		newTreeContainer(),
		newBTreeContainer(),
		newMemDBContainer(1024),
	}
	for _, c := range containers {
		for _, k := range []int{40, 10, 30, 20, 10} {
			require.NoError(t, c.Insert(k, k+1), "%s: insert", c.Name())
		}
		require.NoError(t, c.Insert(30, 0), "%s: insert again", c.Name())

		assert.Equal(t, []int{10, 20, 30, 40}, c.Keys(), "%s: keys", c.Name())

		v, ok := c.Get(30)
		assert.True(t, ok, "%s: get", c.Name())
		assert.Equal(t, 31, v, "%s: first value kept", c.Name())

		_, ok = c.Get(25)
		assert.False(t, ok, "%s: absent key", c.Name())
	}
}

func TestVerifyDetectsDifference(t *testing.T) {
	a := newTreeContainer()
	b := newBTreeContainer()
	require.NoError(t, a.Insert(1, 1))
	require.NoError(t, b.Insert(1, 2))

	err := verify(5, []container{a, b}, logger.New("test"))
	assert.Equal(t, fault.ErrVerificationFailed, err, "value differs")

	c := newTreeContainer()
	d := newMemDBContainer(1024)
	require.NoError(t, c.Insert(100, 0))
	err = verify(5, []container{c, d}, logger.New("test"))
	assert.Equal(t, fault.ErrVerificationFailed, err, "key list differs")
}
