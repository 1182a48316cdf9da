// SPDX-License-Identifier: MIT
// Package matrix provides numeric kernels over any Matrix implementation:
// matrix-vector products and the structural measurements used to verify
// triangular solvers. All functions validate inputs fail-fast and return
// sentinel errors wrapped with an operation tag.
//
// Notes:
//   - *Dense inputs take a fast path (gonum cblas128 or flat indexing).
//   - Other implementations fall back to At with fixed i→j loop order.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// ZeroSum is the initial sum value for products and substitutions.
const ZeroSum complex128 = 0

// Operation name constants for unified error wrapping.
const (
	opMatVec         = "MatVec"
	opMaxAbs         = "MaxAbs"
	opMaxSubDiagonal = "MaxSubDiagonal"
	opUpperTri       = "IsUpperTriangular"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Only call with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense is handed to cblas128.Gemv (alpha=1, beta=0) over the
// shared storage. Fallback: fixed i→j dot products via At.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]complex128, rows)

	if d, ok := m.(*Dense); ok {
		cblas128.Gemv(blas.NoTrans, 1, d.General(),
			cblas128.Vector{N: cols, Inc: 1, Data: x},
			0, cblas128.Vector{N: rows, Inc: 1, Data: y})

		return y, nil
	}

	var i, j int
	var mv complex128
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// MaxAbs returns max |m[i,j]| over all entries (0 for an all-zero matrix).
// NaN entries propagate as NaN.
// Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	var best float64
	visit := func(_, _ int, v complex128) bool {
		a := cmplx.Abs(v)
		if math.IsNaN(a) {
			best = a
			return false
		}
		if a > best {
			best = a
		}
		return true
	}
	if d, ok := m.(*Dense); ok {
		d.Do(visit)
		return best, nil
	}
	if err := walk(m, visit); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	return best, nil
}

// MaxSubDiagonal returns max |m[i,j]| over the strictly lower triangle (i > j)
// of a square matrix; 0 for a 1×1 matrix.
// Complexity: O(n²).
func MaxSubDiagonal(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opMaxSubDiagonal, err)
	}

	var best float64
	visit := func(i, j int, v complex128) bool {
		if i <= j {
			return true
		}
		a := cmplx.Abs(v)
		if math.IsNaN(a) {
			best = a
			return false
		}
		if a > best {
			best = a
		}
		return true
	}
	if d, ok := m.(*Dense); ok {
		d.Do(visit)
		return best, nil
	}
	if err := walk(m, visit); err != nil {
		return 0, matrixErrorf(opMaxSubDiagonal, err)
	}

	return best, nil
}

// IsUpperTriangular reports whether every strictly-lower entry of the square
// matrix m has magnitude <= eps (DefaultEpsilon unless WithEpsilon is given).
func IsUpperTriangular(m Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	sub, err := MaxSubDiagonal(m)
	if err != nil {
		return false, matrixErrorf(opUpperTri, err)
	}

	return sub <= o.eps, nil
}

// walk is the interface fallback of Dense.Do.
func walk(m Matrix, f func(i, j int, v complex128) bool) error {
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if !f(i, j, v) {
				return nil
			}
		}
	}

	return nil
}
