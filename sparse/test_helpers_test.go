// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by unit tests and benchmarks.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ratings/sparse"
	"github.com/stretchr/testify/require"
)

// mustNew builds a rows×cols matrix or fails the test.
func mustNew[T sparse.Rating](tb testing.TB, rows, cols int, opts ...sparse.Option) *sparse.Matrix[T] {
	tb.Helper()
	m, err := sparse.New[T](rows, cols, opts...)
	require.NoError(tb, err)
	return m
}

// mustSet writes every triplet or fails the test.
func mustSet[T sparse.Rating](tb testing.TB, m *sparse.Matrix[T], entries ...sparse.Entry[T]) {
	tb.Helper()
	for _, e := range entries {
		require.NoError(tb, m.Set(e.Row, e.Col, e.Value))
	}
}

// entry is a short constructor for sparse.Entry.
func entry[T sparse.Rating](row, col int, v T) sparse.Entry[T] {
	return sparse.Entry[T]{Row: row, Col: col, Value: v}
}

// randomRatings fills about density*rows*cols cells with ratings in 1..5.
// The seed makes the fill reproducible.
func randomRatings(tb testing.TB, rows, cols int, density float64, seed int64) *sparse.Matrix[float64] {
	tb.Helper()
	m := mustNew[float64](tb, rows, cols)
	rng := rand.New(rand.NewSource(seed))
	n := int(density * float64(rows*cols))
	for i := 0; i < n; i++ {
		require.NoError(tb, m.Set(rng.Intn(rows), rng.Intn(cols), float64(1+rng.Intn(5))))
	}
	return m
}
