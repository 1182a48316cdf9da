// SPDX-License-Identifier: MIT
// Package equation: sentinel errors and the structured degeneracy error.
//
// Every message is prefixed with "equation: ..." so it can be grepped in logs.
// Stages wrap with fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is
// and extract details with errors.As(*DegenerateError).

package equation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive system size.
	ErrInvalidSize = errors.New("equation: system size must be > 0")

	// ErrInvalidRange indicates a value range that yields no samples,
	// e.g. an empty integer range in ModeInteger.
	ErrInvalidRange = errors.New("equation: empty sampling range")

	// ErrDimensionMismatch indicates NewFromData operands of incompatible shape.
	ErrDimensionMismatch = errors.New("equation: dimension mismatch")

	// ErrSingular indicates a vanishing rotation norm or diagonal pivot.
	ErrSingular = errors.New("equation: singular or ill-conditioned system")

	// ErrNotEliminated is returned by BackSubstitute before Eliminate.
	ErrNotEliminated = errors.New("equation: system is not triangular yet")

	// ErrNotSolved is returned by Verify before a successful solve.
	ErrNotSolved = errors.New("equation: system is not solved yet")
)

// Stage names the solver stage that detected a degeneracy.
type Stage int

const (
	// StageElimination is the rotation stage.
	StageElimination Stage = iota
	// StageBackSubstitution is the triangular solve.
	StageBackSubstitution
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageElimination:
		return "elimination"
	case StageBackSubstitution:
		return "back-substitution"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// DegenerateError describes where a solve broke down.
//
//   - Pivot is the pivot column (elimination) or the row being solved
//     (back-substitution).
//   - Row is the target row of the rotation; -1 in back-substitution.
//   - Value is the offending quantity: a²+b² for a rotation, the diagonal
//     entry for back-substitution.
type DegenerateError struct {
	Stage Stage
	Pivot int
	Row   int
	Value complex128
}

// Error implements error.
func (e *DegenerateError) Error() string {
	if e.Stage == StageElimination {
		return fmt.Sprintf("%v: %s at pivot %d, row %d (a²+b²=%g)",
			ErrSingular, e.Stage, e.Pivot, e.Row, e.Value)
	}

	return fmt.Sprintf("%v: %s at pivot %d (diagonal=%g)",
		ErrSingular, e.Stage, e.Pivot, e.Value)
}

// Unwrap lets errors.Is(err, ErrSingular) match.
func (e *DegenerateError) Unwrap() error { return ErrSingular }

// equationErrorf wraps err with an operation tag. Only call with err != nil.
func equationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
