// SPDX-License-Identifier: MIT

package equation

import (
	"math"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/givens/matrix"
)

// Verification summarizes how well a solved System reproduces its inputs.
// All norms are ∞-norms.
type Verification struct {
	Residual          float64 // ‖A₀·X_Found − F₀‖
	RelativeResidual  float64 // Residual / ‖F₀‖ (Residual when ‖F₀‖ = 0)
	Agreement         float64 // ‖X_Found − X_Generated‖
	RelativeAgreement float64 // Agreement / ‖X_Generated‖
	MaxSubDiagonal    float64 // max |A[i][j]|, i > j, after elimination
	NonFinite         bool    // X_Found holds NaN or Inf (PolicyPropagate)
}

// Within reports whether both relative errors are at most tol.
// A non-finite solution never is.
func (v Verification) Within(tol float64) bool {
	if v.NonFinite {
		return false
	}

	return v.RelativeResidual <= tol && v.RelativeAgreement <= tol
}

// Verify measures the solved System against the pristine A₀, F₀ and the
// known solution. Returns ErrNotSolved before a successful solve, or the
// recorded failure.
func (s *System) Verify() (Verification, error) {
	switch s.state {
	case StateFailed:
		return Verification{}, s.err
	case StateSolved:
	default:
		return Verification{}, equationErrorf(opVerify, ErrNotSolved)
	}

	ax, err := matrix.MatVec(s.a0, s.xFound)
	if err != nil {
		return Verification{}, equationErrorf(opVerify, err)
	}
	sub, err := matrix.MaxSubDiagonal(s.a)
	if err != nil {
		return Verification{}, equationErrorf(opVerify, err)
	}

	inf := math.Inf(1)
	v := Verification{
		Residual:       cmplxs.Distance(ax, s.f0, inf),
		Agreement:      cmplxs.Distance(s.xFound, s.xGen, inf),
		MaxSubDiagonal: sub,
		NonFinite:      matrix.HasNonFinite(s.xFound),
	}
	v.RelativeResidual = relative(v.Residual, cmplxs.Norm(s.f0, inf))
	v.RelativeAgreement = relative(v.Agreement, cmplxs.Norm(s.xGen, inf))

	return v, nil
}

func relative(abs, ref float64) float64 {
	if ref == 0 {
		return abs
	}

	return abs / ref
}
