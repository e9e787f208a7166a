// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every public operation returns one of these sentinels, optionally wrapped
// with call-site context. Tests and callers match them via errors.Is.
// No operation panics on user-triggered error conditions; panics are
// reserved for nonsensical Option values (programmer error).

package sparse

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> negative value -> overflow -> dimension mismatch.

var (
	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrIndexOutOfRange indicates a row or column outside [0,rows)×[0,cols).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrNegativeValue signals an attempt to store or merge a negative rating.
	ErrNegativeValue = errors.New("sparse: negative values are not allowed in the matrix")

	// ErrDimensionMismatch indicates incompatible operands, e.g. a user vector
	// whose length differs from Cols(), or Merge of differently shaped matrices.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonPositive is returned when a count argument (top-N) is <= 0.
	ErrNonPositive = errors.New("sparse: value must be positive")

	// ErrNaNInf signals a NaN or ±Inf rating under the finite-value policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrOverflow signals an additive merge whose sum does not fit in T.
	ErrOverflow = errors.New("sparse: rating sum overflows")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadConfig indicates a Config that failed decoding or validation.
	ErrBadConfig = errors.New("sparse: invalid config")
)

// matrixErrorf wraps err with the method name, keeping the sentinel reachable.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// indexErrorf wraps err with the method name and the offending cell.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
