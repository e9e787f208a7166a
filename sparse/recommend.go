// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Recommend computes the matrix–vector product M·user.
// result[r] = Σ_c M[r,c]·user[c]; the result has length Rows().
//
// Implementation:
//   - Stage 1: len(user) must equal Cols().
//   - Stage 2: mark the columns with a non-zero weight in a bitset.
//   - Stage 3: walk stored cells row-major, skipping unmarked columns.
//
// The walk order is fixed, so float results do not depend on map order.
// Complexity: O(NNZ log NNZ + Cols).
func (m *Matrix[T]) Recommend(user []T) ([]T, error) {
	if err := checkVecLen(user, m.cols); err != nil {
		return nil, fmt.Errorf("Matrix.Recommend: vector length %d, want %d: %w",
			len(user), m.cols, err)
	}

	active := bitset.New(uint(m.cols))
	for c, w := range user {
		if w != 0 {
			active.Set(uint(c))
		}
	}

	result := make([]T, m.rows)
	if active.None() {
		return result, nil
	}
	for _, k := range m.sortedKeys() {
		if active.Test(uint(k.Col)) {
			result[k.Row] += m.entries[k] * user[k.Col]
		}
	}

	return result, nil
}

// ColumnScores returns score(c) = Σ_r M[r,c] for every column.
// Complexity: O(NNZ log NNZ + Cols).
func (m *Matrix[T]) ColumnScores() []T {
	scores := make([]T, m.cols)
	for _, k := range m.sortedKeys() {
		scores[k.Col] += m.entries[k]
	}

	return scores
}

// rankColumns returns every column index ordered by descending score.
// Equal scores keep ascending index order (stable sort over 0..cols-1).
func (m *Matrix[T]) rankColumns() []int {
	scores := m.ColumnScores()
	order := lo.Range(m.cols)
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	return order
}

// RecommendTopN returns the n most-rated columns by total score.
// Ties are broken by ascending column index. When n > Cols() every column
// is returned in ranked order.
// Complexity: O(NNZ log NNZ + Cols log Cols).
func (m *Matrix[T]) RecommendTopN(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Matrix.RecommendTopN(%d): %w", n, ErrNonPositive)
	}
	order := m.rankColumns()

	return order[:min(n, len(order))], nil
}

// RatedItems returns the set of columns the given row has a stored rating for.
// Complexity: O(NNZ).
func (m *Matrix[T]) RatedItems(row int) (mapset.Set[int], error) {
	if err := m.checkRow(row); err != nil {
		return nil, fmt.Errorf("Matrix.RatedItems(%d): %w", row, err)
	}

	rated := mapset.NewThreadUnsafeSet[int]()
	for k := range m.entries {
		if k.Row == row {
			rated.Add(k.Col)
		}
	}

	return rated, nil
}

// RecommendUnseen ranks columns like RecommendTopN but drops the columns
// the row has already rated. Fewer than n indices are returned when the row
// has rated most of the catalogue.
func (m *Matrix[T]) RecommendUnseen(row, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Matrix.RecommendUnseen(%d,%d): %w", row, n, ErrNonPositive)
	}
	rated, err := m.RatedItems(row)
	if err != nil {
		return nil, err
	}

	unseen := lo.Filter(m.rankColumns(), func(c int, _ int) bool {
		return !rated.Contains(c)
	})

	return unseen[:min(n, len(unseen))], nil
}
