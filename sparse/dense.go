// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ToDense materializes the full rows×cols grid, zero-filled where empty.
// The declared shape is always allocated, so an empty 2×2 matrix yields
// [[0 0] [0 0]] and a 0×n matrix yields an empty, non-nil slice.
// Complexity: O(rows*cols + NNZ).
func (m *Matrix[T]) ToDense() [][]T {
	dense := lo.Times(m.rows, func(int) []T { return make([]T, m.cols) })
	for k, v := range m.entries {
		dense[k.Row][k.Col] = v
	}

	return dense
}

// FromDense builds a matrix from a rectangular grid; zero cells stay unstored.
// Stage 1 (Validate): rectangular shape, then every cell against the numeric
// policy resolved from opts.
// Stage 2 (Execute): store non-zero cells.
// Complexity: O(rows*cols).
func FromDense[T Rating](dense [][]T, opts ...Option) (*Matrix[T], error) {
	rows, cols := len(dense), 0
	if rows > 0 {
		cols = len(dense[0])
	}
	m, err := New[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	for i, row := range dense {
		if len(row) != cols {
			return nil, fmt.Errorf("FromDense: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.checkValue(v); err != nil {
				return nil, fmt.Errorf("FromDense(%d,%d): %w", i, j, err)
			}
		}
	}

	for i, row := range dense {
		for j, v := range row {
			m.store(Key{Row: i, Col: j}, v)
		}
	}
	m.opts.logger.Debug("import dense matrix",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("nnz", m.NNZ()))

	return m, nil
}
