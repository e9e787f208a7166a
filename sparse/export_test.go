// SPDX-License-Identifier: MIT

package sparse

// Test bridge (white-box) into unexported state.
// Lives in a _test.go file of package sparse, so it is invisible in
// production builds but visible to package sparse_test.

// StoredLen reports the size of the internal entry map.
func StoredLen[T Rating](m *Matrix[T]) int { return len(m.entries) }

// StoredKey reports whether k is physically present in the entry map.
func StoredKey[T Rating](m *Matrix[T], row, col int) bool {
	_, ok := m.entries[Key{Row: row, Col: col}]
	return ok
}

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	MergePolicy    MergePolicy
	ValidateNaNInf bool
	HasLogger      bool
}

// SnapshotOptions resolves opts exactly like New does.
func SnapshotOptions(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		MergePolicy:    o.mergePolicy,
		ValidateNaNInf: o.validateNaNInf,
		HasLogger:      o.logger != nil,
	}
}
