// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Matrix is a fixed-shape sparse rating matrix: rows are users, columns are
// items. Only non-zero cells are stored; every stored value is > 0.
// The dimensions are set once by New and never change.
//
// A Matrix is not safe for concurrent use. Callers sharing one across
// goroutines must guard every call (including reads) with their own lock.
type Matrix[T Rating] struct {
	rows, cols int
	entries    map[Key]T
	opts       Options
}

// New creates an empty rows×cols matrix.
// Stage 1 (Validate): rows, cols ≥ 0.
// Stage 2 (Prepare): resolve options, allocate the entry map.
// Complexity: O(1).
func New[T Rating](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix[T]{
		rows:    rows,
		cols:    cols,
		entries: make(map[Key]T),
		opts:    gatherOptions(opts...),
	}, nil
}

// Rows returns the declared number of rows (users).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the declared number of columns (items).
func (m *Matrix[T]) Cols() int { return m.cols }

// Dims returns (Rows(), Cols()).
func (m *Matrix[T]) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) cells.
func (m *Matrix[T]) NNZ() int { return len(m.entries) }

// MergePolicy reports the policy this matrix was built with.
func (m *Matrix[T]) MergePolicy() MergePolicy { return m.opts.mergePolicy }

// Set stores v at (row, col). A zero v removes the cell.
// Stage 1 (Validate): receiver, bounds, then numeric policy.
// Stage 2 (Execute): insert/overwrite, or delete on zero.
// Complexity: O(1) amortized.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.checkNotNil(); err != nil {
		return matrixErrorf("Set", err)
	}
	if err := m.checkIndex(row, col); err != nil {
		return indexErrorf("Set", row, col, err)
	}
	if err := m.checkValue(v); err != nil {
		return indexErrorf("Set", row, col, err)
	}

	m.store(Key{Row: row, Col: col}, v)

	return nil
}

// store writes v under k, keeping the "present iff non-zero" invariant.
// The caller has validated k and v.
func (m *Matrix[T]) store(k Key, v T) {
	if v == 0 {
		delete(m.entries, k)
		return
	}
	m.entries[k] = v
}

// Get returns the value at (row, col), or 0 when the cell is empty.
// Complexity: O(1).
func (m *Matrix[T]) Get(row, col int) (T, error) {
	if err := m.checkNotNil(); err != nil {
		return 0, matrixErrorf("Get", err)
	}
	if err := m.checkIndex(row, col); err != nil {
		return 0, indexErrorf("Get", row, col, err)
	}

	return m.entries[Key{Row: row, Col: col}], nil
}

// Has reports whether (row, col) holds a stored (non-zero) value.
func (m *Matrix[T]) Has(row, col int) (bool, error) {
	if err := m.checkNotNil(); err != nil {
		return false, matrixErrorf("Has", err)
	}
	if err := m.checkIndex(row, col); err != nil {
		return false, indexErrorf("Has", row, col, err)
	}
	_, ok := m.entries[Key{Row: row, Col: col}]

	return ok, nil
}

// Clone returns a deep copy with the same shape and options.
// Complexity: O(NNZ).
func (m *Matrix[T]) Clone() *Matrix[T] {
	entries := make(map[Key]T, len(m.entries))
	for k, v := range m.entries {
		entries[k] = v
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, entries: entries, opts: m.opts}
}

// sortedKeys returns the stored keys in row-major order.
// Every aggregate walks this order so float sums are reproducible.
// Complexity: O(NNZ log NNZ).
func (m *Matrix[T]) sortedKeys() []Key {
	keys := lo.Keys(m.entries)
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	return keys
}

// Entries returns a row-major snapshot of the stored cells.
// The slice is owned by the caller; mutating it does not affect m.
func (m *Matrix[T]) Entries() []Entry[T] {
	return lo.Map(m.sortedKeys(), func(k Key, _ int) Entry[T] {
		return Entry[T]{Row: k.Row, Col: k.Col, Value: m.entries[k]}
	})
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(rows*cols).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for _, row := range m.ToDense() {
		sb.WriteString("[")
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
