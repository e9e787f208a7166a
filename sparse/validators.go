// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for index, value and shape checks.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing.

package sparse

import "math"

// checkNotNil rejects a nil receiver before any field access.
func (m *Matrix[T]) checkNotNil() error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// checkRow ensures 0 ≤ row < rows.
func (m *Matrix[T]) checkRow(row int) error {
	if row < 0 || row >= m.rows {
		return ErrIndexOutOfRange
	}
	return nil
}

// checkIndex ensures 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix[T]) checkIndex(row, col int) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if col < 0 || col >= m.cols {
		return ErrIndexOutOfRange
	}
	return nil
}

// checkValue applies the numeric policy to one rating.
// Order: NaN -> ±Inf (when validating) -> negative.
func (m *Matrix[T]) checkValue(v T) error {
	if math.IsNaN(float64(v)) {
		return ErrNaNInf
	}
	if m.opts.validateNaNInf && math.IsInf(float64(v), 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeValue
	}
	return nil
}

// checkSum detects integer wraparound in an additive merge.
// Both operands are already validated non-negative, so a sum smaller than
// either operand can only come from overflow. Float sums saturate to +Inf
// instead and are left to checkValue.
func checkSum[T Rating](current, incoming, sum T) error {
	if sum < current || sum < incoming {
		return ErrOverflow
	}
	return nil
}

// checkSameShape ensures other is non-nil and has identical dimensions.
func (m *Matrix[T]) checkSameShape(other *Matrix[T]) error {
	if other == nil {
		return ErrNilMatrix
	}
	if m.rows != other.rows || m.cols != other.cols {
		return ErrDimensionMismatch
	}
	return nil
}

// checkVecLen ensures len(x) == n.
func checkVecLen[T Rating](x []T, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}
	return nil
}
