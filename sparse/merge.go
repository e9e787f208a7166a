// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"go.uber.org/zap"
)

// Merge folds other into m cell by cell under m's MergePolicy.
//
//   - MergeAdd:       m[r,c] = m[r,c] + other[r,c]
//   - MergeOverwrite: m[r,c] = other[r,c]
//
// Cells absent from other are untouched. The whole result is computed and
// validated before the first write, so a failing Merge leaves m unchanged.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNegativeValue, ErrNaNInf
// (e.g. a float sum overflowing to +Inf), ErrOverflow (an integer sum that
// does not fit in T).
// Complexity: O(NNZ(other) log NNZ(other)).
func (m *Matrix[T]) Merge(other *Matrix[T]) error {
	if err := m.checkNotNil(); err != nil {
		return matrixErrorf("Merge", err)
	}
	if err := m.checkSameShape(other); err != nil {
		m.opts.logger.Debug("reject merge", zap.Error(err))
		return fmt.Errorf("Matrix.Merge: %dx%d into %dx%d: %w",
			dimOrZero(other, true), dimOrZero(other, false), m.rows, m.cols, err)
	}

	staged := make(map[Key]T, len(other.entries))
	for _, k := range other.sortedKeys() {
		v := other.entries[k]
		if err := m.checkValue(v); err != nil {
			m.opts.logger.Debug("reject merge", zap.Error(err))
			return indexErrorf("Merge", k.Row, k.Col, err)
		}
		next, err := m.combine(m.entries[k], v)
		if err == nil {
			err = m.checkValue(next)
		}
		if err != nil {
			m.opts.logger.Debug("reject merge", zap.Error(err))
			return indexErrorf("Merge", k.Row, k.Col, err)
		}
		staged[k] = next
	}

	m.apply(staged, "merge matrix")

	return nil
}

// MergeEntries folds loose triplets into m under m's MergePolicy.
// Duplicate keys are folded in slice order. A zero Value is a no-op under
// MergeAdd and clears the cell under MergeOverwrite (like Set).
// Every triplet is validated before the first write.
// Errors: ErrNilMatrix, ErrIndexOutOfRange, ErrNegativeValue, ErrNaNInf, ErrOverflow.
// Complexity: O(len(entries)).
func (m *Matrix[T]) MergeEntries(entries []Entry[T]) error {
	if err := m.checkNotNil(); err != nil {
		return matrixErrorf("MergeEntries", err)
	}

	staged := make(map[Key]T, len(entries))
	for i, e := range entries {
		err := m.checkIndex(e.Row, e.Col)
		if err == nil {
			err = m.checkValue(e.Value)
		}
		if err != nil {
			m.opts.logger.Debug("reject merge entries", zap.Int("index", i), zap.Error(err))
			return fmt.Errorf("Matrix.MergeEntries[%d](%d,%d): %w", i, e.Row, e.Col, err)
		}

		k := Key{Row: e.Row, Col: e.Col}
		current, ok := staged[k]
		if !ok {
			current = m.entries[k]
		}
		next, err := m.combine(current, e.Value)
		if err == nil {
			err = m.checkValue(next)
		}
		if err != nil {
			m.opts.logger.Debug("reject merge entries", zap.Int("index", i), zap.Error(err))
			return fmt.Errorf("Matrix.MergeEntries[%d](%d,%d): %w", i, e.Row, e.Col, err)
		}
		staged[k] = next
	}

	m.apply(staged, "merge entries")

	return nil
}

// combine resolves one colliding cell under the configured MergePolicy.
// Under MergeAdd an integer sum that wraps fails with ErrOverflow.
func (m *Matrix[T]) combine(current, incoming T) (T, error) {
	if m.opts.mergePolicy == MergeOverwrite {
		return incoming, nil
	}
	sum := current + incoming
	if err := checkSum(current, incoming, sum); err != nil {
		return current, err
	}
	return sum, nil
}

// apply writes validated results, pruning zeros.
func (m *Matrix[T]) apply(staged map[Key]T, msg string) {
	pruned := 0
	for k, v := range staged {
		if v == 0 {
			pruned++
		}
		m.store(k, v)
	}
	m.opts.logger.Debug(msg,
		zap.Stringer("policy", m.opts.mergePolicy),
		zap.Int("n_cells", len(staged)),
		zap.Int("n_pruned", pruned),
		zap.Int("nnz", len(m.entries)))
}

// dimOrZero reports other's rows (or cols) for error messages; 0 when nil.
func dimOrZero[T Rating](other *Matrix[T], rows bool) int {
	switch {
	case other == nil:
		return 0
	case rows:
		return other.rows
	default:
		return other.cols
	}
}
