// Package sparse provides a fixed-shape sparse rating matrix for user×item
// data (e.g. a movie recommender) and the small set of linear-algebra-style
// recommendations built on it.
//
// The package provides:
//
//   - Matrix[T], a dictionary-of-keys store holding only non-zero cells.
//     A cell is present iff its value is non-zero; stored values are > 0.
//   - Set/Get with strict bounds against the dimensions declared in New.
//   - Recommend, the matrix–vector product M·user.
//   - Merge/MergeEntries, cell-wise aggregation under a MergePolicy
//     (MergeAdd by default, MergeOverwrite on request).
//   - ToDense/FromDense conversion to and from a rows×cols grid.
//   - RecommendTopN/RecommendUnseen, columns ranked by total score with a
//     stable ascending-index tie-break.
//
// Errors are package sentinels (ErrIndexOutOfRange, ErrNegativeValue,
// ErrDimensionMismatch, ErrNonPositive, ...) matched with errors.Is.
// Mutating calls validate fully before writing, so a failed call leaves the
// matrix unchanged.
//
// A Matrix is not safe for concurrent use; wrap it in a mutex if it is shared.
//
// Quick example:
//
//	m, _ := sparse.New[int](3, 3)
//	_ = m.Set(0, 0, 2)
//	_ = m.Set(1, 1, 5)
//	scores, _ := m.Recommend([]int{2, 0, 0}) // [4 0 0]
package sparse
