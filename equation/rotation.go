// SPDX-License-Identifier: MIT

// Package equation - rotation coefficients.
//
// Rotation is the algebraic variant used by the eliminator:
//
//	norm = √(a² + b²)   (complex square, complex principal root)
//	C = a / norm,  S = b / norm
//	[x', y'] = [C·x + S·y, C·y − S·x]
//
// It annihilates b (C·b − S·a = 0) and satisfies C² + S² = 1, so the 2×2
// transform has determinant 1 and preserves the solution set. It is unitary
// only when a and b share a phase; UnitaryRotation is the textbook
// conjugate-modulus rotation, kept for comparison.
package equation

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/givens/matrix"
)

// Rotation holds the coefficients of one algebraic plane rotation.
type Rotation struct {
	C, S complex128
}

// identityRotation leaves both rows untouched.
var identityRotation = Rotation{C: 1, S: 0}

// NewRotation computes the literal coefficients for pivot a and target b.
// No checks are made: a²+b² == 0 yields non-finite coefficients.
func NewRotation(a, b complex128) Rotation {
	norm := cmplx.Sqrt(a*a + b*b)

	return Rotation{C: a / norm, S: b / norm}
}

// Apply rotates the pair (x, y) of pivot-row and target-row values.
// Both outputs are computed from the inputs before either is returned.
func (r Rotation) Apply(x, y complex128) (complex128, complex128) {
	return r.C*x + r.S*y, r.C*y - r.S*x
}

// Matrix returns the 2×2 transform [[C, S], [−S, C]].
func (r Rotation) Matrix() [2][2]complex128 {
	return [2][2]complex128{{r.C, r.S}, {-r.S, r.C}}
}

// checkedRotation is NewRotation with the degeneracy checks of PolicyAbort.
//
//   - a == b == 0: nothing to annihilate; identity.
//   - a²+b² == 0 or |a²+b²| <= eps·(|a|²+|b|²): cancellation, degenerate.
//   - non-finite C or S: degenerate.
//
// ok == false carries q = a²+b² for diagnostics.
func checkedRotation(a, b complex128, eps float64) (rot Rotation, q complex128, ok bool) {
	if a == 0 && b == 0 {
		return identityRotation, 0, true
	}
	q = a*a + b*b
	if q == 0 || cmplx.Abs(q) <= eps*(abs2(a)+abs2(b)) {
		return Rotation{}, q, false
	}
	rot = NewRotation(a, b)
	if !matrix.IsFinite(rot.C) || !matrix.IsFinite(rot.S) {
		return Rotation{}, q, false
	}

	return rot, q, true
}

// UnitaryRotation is the conjugate-modulus Givens rotation
//
//	r = √(|a|² + |b|²),  c = |a|/r,  s = (a/|a|)·conj(b)/r
//	[x', y'] = [c·x + s·y, −conj(s)·x + c·y]
//
// which is unitary for every (a, b).
type UnitaryRotation struct {
	C float64
	S complex128
}

// NewUnitaryRotation computes the textbook coefficients. For a == 0 it
// degenerates to the swap-like rotation c = 0, s = conj(b)/|b|
// (or the identity when b is also 0).
func NewUnitaryRotation(a, b complex128) UnitaryRotation {
	absA, absB := cmplx.Abs(a), cmplx.Abs(b)
	if absA == 0 {
		if absB == 0 {
			return UnitaryRotation{C: 1}
		}
		return UnitaryRotation{C: 0, S: cmplx.Conj(b) / complex(absB, 0)}
	}
	r := math.Hypot(absA, absB)

	return UnitaryRotation{
		C: absA / r,
		S: (a / complex(absA, 0)) * cmplx.Conj(b) / complex(r, 0),
	}
}

// Apply rotates the pair (x, y).
func (u UnitaryRotation) Apply(x, y complex128) (complex128, complex128) {
	c := complex(u.C, 0)

	return c*x + u.S*y, -cmplx.Conj(u.S)*x + c*y
}

// Matrix returns the 2×2 transform [[c, s], [−conj(s), c]].
func (u UnitaryRotation) Matrix() [2][2]complex128 {
	c := complex(u.C, 0)

	return [2][2]complex128{{c, u.S}, {-cmplx.Conj(u.S), c}}
}

// abs2 returns |z|² without a square root.
func abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
