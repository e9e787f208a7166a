// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the matrix and its operations.
// This file contains ONLY types (rating constraint, keys, triplets, merge
// policy). Errors and options live in errors.go and options.go.
package sparse

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Rating is the set of numeric types a Matrix can store.
// Values are interpreted as non-negative; negative inputs are rejected.
type Rating interface {
	constraints.Integer | constraints.Float
}

// Key addresses one cell of the entry mapping.
type Key struct {
	Row int // user index, 0 ≤ Row < Rows()
	Col int // item index, 0 ≤ Col < Cols()
}

// less orders keys row-major; used to make every scan deterministic.
func (k Key) less(o Key) bool {
	if k.Row != o.Row {
		return k.Row < o.Row
	}
	return k.Col < o.Col
}

// Entry is a (row, col, value) triplet.
// Entries returned by Matrix.Entries always carry Value > 0.
type Entry[T Rating] struct {
	Row   int
	Col   int
	Value T
}

// MergePolicy selects how Merge combines a colliding cell.
//
//   - MergeAdd       — stored = current + incoming (aggregate ratings).
//   - MergeOverwrite — stored = incoming (last writer wins).
type MergePolicy int

const (
	// MergeAdd sums colliding cells. This is the default.
	MergeAdd MergePolicy = iota

	// MergeOverwrite replaces colliding cells with the incoming value.
	MergeOverwrite
)

// String implements fmt.Stringer; the names match the config vocabulary.
func (p MergePolicy) String() string {
	switch p {
	case MergeAdd:
		return "add"
	case MergeOverwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("MergePolicy(%d)", int(p))
	}
}

// valid reports whether p is one of the declared policies.
func (p MergePolicy) valid() bool {
	return p == MergeAdd || p == MergeOverwrite
}

// ParseMergePolicy maps "add" / "overwrite" (case-insensitive) to a MergePolicy.
// An empty string yields the default MergeAdd.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "add":
		return MergeAdd, nil
	case "overwrite":
		return MergeOverwrite, nil
	default:
		return 0, fmt.Errorf("ParseMergePolicy(%q): %w", s, ErrBadConfig)
	}
}
