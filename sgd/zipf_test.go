// SPDX-License-Identifier: MIT
package sgd_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Overcraft90/odgi/sgd"
)

func TestZipfDrawStaysInRange(t *testing.T) {
	z := sgd.NewZipf(50, 0.99)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := z.Draw(rng)
		require.GreaterOrEqual(t, v, uint64(1))
		require.LessOrEqual(t, v, uint64(50))
	}
}

func TestZipfSkewsTowardOne(t *testing.T) {
	z := sgd.NewZipf(20, 1.5)
	rng := rand.New(rand.NewSource(42))
	counts := make(map[uint64]int)
	const draws = 5000
	for i := 0; i < draws; i++ {
		counts[z.Draw(rng)]++
	}
	require.Greater(t, counts[1], counts[20], "a high theta should draw small values far more often than large ones")
}

func TestZipfSingleValueSpace(t *testing.T) {
	z := sgd.NewZipf(1, 0.99)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		require.Equal(t, uint64(1), z.Draw(rng))
	}
}
