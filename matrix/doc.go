// Package matrix offers a dense complex128 matrix for linear solvers.
//
// The matrix package provides:
//
//   - Dense, a size-tagged row-major container with bounds-checked At/Set,
//     an optional finite-value policy, and no-copy row access for hot loops.
//   - MatVec, backed by gonum's cblas128.Gemv for *Dense operands.
//   - Structural measurements (MaxAbs, MaxSubDiagonal, IsUpperTriangular)
//     used to verify triangularizing solvers.
//
// Errors are package-level sentinels (see errors.go); match them with errors.Is.
package matrix
