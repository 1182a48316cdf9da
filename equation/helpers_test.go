// SPDX-License-Identifier: MIT
// Package equation_test contains shared fixtures for the solver tests.

package equation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/givens/equation"
	"github.com/katalvlaran/givens/matrix"
)

// mustRows builds a *matrix.Dense from a literal or fails the test.
func mustRows(t testing.TB, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustLooseRows is mustRows without the finite-value policy.
func mustLooseRows(t testing.TB, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	return m
}

// mustSystem generates a random system or fails the test.
func mustSystem(t testing.TB, n int, opts ...equation.Option) *equation.System {
	t.Helper()
	s, err := equation.New(n, opts...)
	require.NoError(t, err)
	require.Equal(t, equation.StateGenerated, s.State())

	return s
}

// mustFromData builds a literal system or fails the test.
func mustFromData(t testing.TB, a [][]complex128, x []complex128, opts ...equation.Option) *equation.System {
	t.Helper()
	s, err := equation.NewFromData(mustRows(t, a), x, opts...)
	require.NoError(t, err)

	return s
}

// realEmbeddingSolve solves A·X = F with gonum/mat through the real 2N×2N
// embedding [[Re A, −Im A], [Im A, Re A]]·[Re X; Im X] = [Re F; Im F].
func realEmbeddingSolve(t testing.TB, a *matrix.Dense, f []complex128) []complex128 {
	t.Helper()
	n := a.Rows()
	m := mat.NewDense(2*n, 2*n, nil)
	b := mat.NewVecDense(2*n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			m.Set(i, j, real(v))
			m.Set(i, n+j, -imag(v))
			m.Set(n+i, j, imag(v))
			m.Set(n+i, n+j, real(v))
		}
		b.SetVec(i, real(f[i]))
		b.SetVec(n+i, imag(f[i]))
	}

	var x mat.VecDense
	require.NoError(t, x.SolveVec(m, b))

	out := make([]complex128, n)
	for i = 0; i < n; i++ {
		out[i] = complex(x.AtVec(i), x.AtVec(n+i))
	}

	return out
}

// isIntegral reports whether v has no fractional part.
func isIntegral(v float64) bool {
	return v == math.Trunc(v)
}

// seqSource returns 1, 2, 3, ... from both methods, recording every call.
type seqSource struct {
	next  float64
	calls []string
}

func (s *seqSource) Float64(_, _ float64) float64 {
	s.next++
	s.calls = append(s.calls, "f")

	return s.next
}

func (s *seqSource) Int(_, _ int) int {
	s.next++
	s.calls = append(s.calls, "i")

	return int(s.next)
}

// zeroSource always returns zero.
type zeroSource struct{}

func (zeroSource) Float64(_, _ float64) float64 { return 0 }
func (zeroSource) Int(_, _ int) int             { return 0 }
