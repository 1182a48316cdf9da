// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/givens/matrix"
)

// TestLU_Reconstructs checks L·U == A on both paths.
func TestLU_Reconstructs(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 9} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := MustDense(t, n, n)
			RandomFill(t, a, int64(31+n))

			for _, m := range []matrix.Matrix{a, hide{a}} {
				L, U, err := matrix.LU(m)
				require.NoError(t, err)

				var i, j, k int
				for i = 0; i < n; i++ {
					for j = 0; j < n; j++ {
						var sum complex128
						for k = 0; k < n; k++ {
							sum += MustAt(t, L, i, k) * MustAt(t, U, k, j)
						}
						require.InDelta(t, 0, absC(sum-MustAt(t, a, i, j)), 1e-10, "(%d,%d)", i, j)
						if j > i {
							require.Equal(t, complex128(0), MustAt(t, L, i, j))
						}
						if j < i {
							require.Equal(t, complex128(0), MustAt(t, U, i, j))
						}
					}
					require.Equal(t, complex128(1), MustAt(t, L, i, i))
				}
			}
		})
	}
}

// TestLUSolve_Known solves [[2,0],[1,1]]·x = [2,2].
func TestLUSolve_Known(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]complex128{{2, 0}, {1, 1}})
	x, err := matrix.LUSolve(a, []complex128{2, 2})
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 1}, x)

	// complex: [[1, i], [i, 3]]·[1, 1-i] = [2+i, 3-2i]
	c := MustRows(t, [][]complex128{{1, 1i}, {1i, 3}})
	x, err = matrix.LUSolve(c, []complex128{2 + 1i, 3 - 2i})
	require.NoError(t, err)
	require.True(t, sliceClose(x, []complex128{1, 1 - 1i}, 1e-14), "x=%v", x)
}

// TestLU_Errors covers the sentinel set.
func TestLU_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.LU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = matrix.LU(MustRows(t, [][]complex128{{0, 0}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.LUSolve(MustRows(t, [][]complex128{{1}}), []complex128{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
