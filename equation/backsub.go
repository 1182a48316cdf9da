// SPDX-License-Identifier: MIT

package equation

import (
	"math/cmplx"

	"github.com/katalvlaran/givens/matrix"
)

// BackSubstitute solves the triangular system left by Eliminate:
//
//	X[N-1] = F[N-1] / A[N-1][N-1]
//	X[i]   = (F[i] − Σ_{j>i} X[j]·A[i][j]) / A[i][i],  i = N-2..0
//
// with the sum taken in ascending j. Returns a copy of X_Found.
//
// Errors: ErrNotEliminated before Eliminate; under PolicyAbort a pivot with
// |A[i][i]| == 0 or |A[i][i]| <= eps·max_{r,k}|A[r][k]| or a non-finite
// quotient returns *DegenerateError and the System enters StateFailed.
// The scale is the largest magnitude of the triangular A, so the last
// row is measured like every other row.
//
// Complexity: O(N²).
func (s *System) BackSubstitute() ([]complex128, error) {
	switch s.state {
	case StateFailed:
		return nil, s.err
	case StateGenerated:
		return nil, equationErrorf(opBackSubstitute, ErrNotEliminated)
	case StateSolved:
		return cloneVec(s.xFound), nil
	}

	abort := s.opts.policy == PolicyAbort
	var scale float64
	if abort {
		scale, _ = matrix.MaxAbs(s.a)
	}
	var i, j int
	var row []complex128
	var sum complex128
	for i = s.n - 1; i >= 0; i-- {
		row, _ = s.a.RawRow(i)
		sum = matrix.ZeroSum
		for j = i + 1; j < s.n; j++ {
			sum += s.xFound[j] * row[j]
		}
		if abort && pivotDegenerate(row[i], scale, s.opts.eps) {
			return nil, s.degeneratePivot(i, row[i])
		}
		s.xFound[i] = (s.f[i] - sum) / row[i]
		if abort && !matrix.IsFinite(s.xFound[i]) {
			return nil, s.degeneratePivot(i, row[i])
		}
	}
	s.state = StateSolved
	s.log.Debug("Back-substitution complete", "size", s.n)

	return cloneVec(s.xFound), nil
}

func (s *System) degeneratePivot(i int, d complex128) error {
	err := &DegenerateError{Stage: StageBackSubstitution, Pivot: i, Row: -1, Value: d}
	s.log.Warn("Diagonal pivot degenerate", "pivot", i, "err", err)

	return s.fail(equationErrorf(opBackSubstitute, err))
}

// pivotDegenerate reports d == 0 or |d| <= eps·scale.
func pivotDegenerate(d complex128, scale, eps float64) bool {
	a := cmplx.Abs(d)

	return a == 0 || a <= eps*scale
}
