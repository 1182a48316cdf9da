// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot complex128 = 0

const (
	opLU      = "LU"
	opLUSolve = "LUSolve"
)

// LU performs Doolittle LU decomposition without pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - No row exchanges, so the kernel is deterministic but unstable for
//     matrices with small leading minors. Solvers use it as an independent
//     cross-check on well-conditioned inputs.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	L, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1
	}

	var a *Dense
	if d, ok := m.(*Dense); ok {
		a = d
	} else {
		// copy through At once so the loops below stay on flat slices
		if a, err = NewDense(n, n, WithNoValidateNaNInf()); err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
		if err = walk(m, func(i, j int, v complex128) bool {
			a.data[i*n+j] = v
			return true
		}); err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
	}

	var i, j, k, baseI, baseJ int
	var sum complex128
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		if U.data[baseI+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}

		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / U.data[baseI+i]
		}
	}

	return L, U, nil
}

// LUSolve solves m·x = b via LU: forward substitution with unit-diagonal L,
// then back-substitution with U.
//
// Errors: those of LU, plus ErrDimensionMismatch when len(b) != m.Rows().
// Complexity: O(n^3) for the factorization, O(n^2) for the solves.
func LUSolve(m Matrix, b []complex128) ([]complex128, error) {
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	n := L.r
	if err = ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	y := make([]complex128, n)
	var i, j int
	var sum complex128
	for i = 0; i < n; i++ {
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= L.data[i*n+j] * y[j]
		}
		y[i] = sum
	}

	x := make([]complex128, n)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum -= U.data[i*n+j] * x[j]
		}
		x[i] = sum / U.data[i*n+i]
	}

	return x, nil
}
