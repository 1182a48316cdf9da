// SPDX-License-Identifier: MIT

// Package equation - System lifecycle and inspection.
//
// State machine:
//
//	StateGenerated ──Eliminate──▶ StateTriangular ──BackSubstitute──▶ StateSolved
//	      │                              │
//	      └──────────── degeneracy ──────┴──▶ StateFailed (terminal)
//
// A failed System replays its error on every later Eliminate/BackSubstitute/
// Solve/Verify call. Accessors return copies and never expose internal buffers.
package equation

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/katalvlaran/givens/matrix"
)

// State is the lifecycle stage of a System.
type State int

const (
	// StateGenerated: A, F and X_Generated are populated.
	StateGenerated State = iota
	// StateTriangular: elimination finished; A is upper-triangular.
	StateTriangular
	// StateSolved: X_Found is populated.
	StateSolved
	// StateFailed: a stage reported an error; the System is unusable.
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateGenerated:
		return "generated"
	case StateTriangular:
		return "triangular"
	case StateSolved:
		return "solved"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Operation tags for error wrapping.
const (
	opNew            = "New"
	opNewFromData    = "NewFromData"
	opEliminate      = "Eliminate"
	opBackSubstitute = "BackSubstitute"
	opVerify         = "Verify"
)

// System is one dense complex linear system A·X = F with a known solution.
// It is not safe for concurrent use.
type System struct {
	n      int
	a      *matrix.Dense // mutated by Eliminate
	f      []complex128  // mutated by Eliminate
	a0     *matrix.Dense // pristine copy of A
	f0     []complex128  // pristine copy of F
	xGen   []complex128  // immutable
	xFound []complex128  // valid in StateSolved
	state  State
	err    error // set in StateFailed
	opts   Options
	log    log.Logger
}

// New generates a random system of the given size.
//
// Defaults: range [DefaultMin, DefaultMax), uniform samples from
// NewUniformSource(DefaultSeed), PolicyAbort. size <= 0 returns ErrInvalidSize.
//
// Complexity: O(N²).
func New(size int, opts ...Option) (*System, error) {
	if size <= 0 {
		return nil, equationErrorf(opNew, fmt.Errorf("%w: got %d", ErrInvalidSize, size))
	}
	o := gatherOptions(opts...)
	a, x, err := generate(size, o)
	if err != nil {
		return nil, equationErrorf(opNew, err)
	}
	s, err := newSystem(a, x, o)
	if err != nil {
		return nil, equationErrorf(opNew, err)
	}
	s.log.Debug("Generated equation system", "size", size, "mode", o.mode, "min", o.min, "max", o.max)

	return s, nil
}

// NewFromData builds a system from a literal square matrix and solution.
// F is computed as A·X. Both inputs are copied.
//
// Errors: ErrDimensionMismatch (nil, non-square, len(x) != N),
// matrix.ErrNaNInf under PolicyAbort when A or X holds NaN/Inf.
func NewFromData(a *matrix.Dense, x []complex128, opts ...Option) (*System, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, equationErrorf(opNewFromData, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	if err := matrix.ValidateVecLen(x, a.Rows()); err != nil {
		return nil, equationErrorf(opNewFromData, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	o := gatherOptions(opts...)
	if o.policy == PolicyAbort {
		var bad bool
		a.Do(func(_, _ int, v complex128) bool {
			bad = !matrix.IsFinite(v)
			return !bad
		})
		if bad || matrix.HasNonFinite(x) {
			return nil, equationErrorf(opNewFromData, matrix.ErrNaNInf)
		}
	}
	xs := make([]complex128, len(x))
	copy(xs, x)

	s, err := newSystem(a.CloneDense(), xs, o)
	if err != nil {
		return nil, equationErrorf(opNewFromData, err)
	}

	return s, nil
}

// newSystem computes F = A·X and the pristine copies.
func newSystem(a *matrix.Dense, x []complex128, o Options) (*System, error) {
	f, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, err
	}
	f0 := make([]complex128, len(f))
	copy(f0, f)

	return &System{
		n:      a.Rows(),
		a:      a,
		f:      f,
		a0:     a.CloneDense(),
		f0:     f0,
		xGen:   x,
		xFound: make([]complex128, a.Rows()),
		state:  StateGenerated,
		opts:   o,
		log:    o.logger,
	}, nil
}

// Solve runs Eliminate and BackSubstitute and returns a copy of X_Found.
// Calling Solve again after success returns the same values without work.
func (s *System) Solve() ([]complex128, error) {
	if err := s.Eliminate(); err != nil {
		return nil, err
	}

	return s.BackSubstitute()
}

// fail moves the System to StateFailed and records err.
func (s *System) fail(err error) error {
	s.state = StateFailed
	s.err = err

	return err
}

// Size returns N.
func (s *System) Size() int { return s.n }

// State returns the lifecycle stage.
func (s *System) State() State { return s.state }

// Err returns the recorded failure, or nil.
func (s *System) Err() error { return s.err }

// Options returns the effective configuration.
func (s *System) Options() Options { return s.opts }

// A returns a copy of the current (possibly triangularized) matrix.
func (s *System) A() *matrix.Dense { return s.a.CloneDense() }

// F returns a copy of the current right-hand side.
func (s *System) F() []complex128 { return cloneVec(s.f) }

// OriginalA returns a copy of A as generated.
func (s *System) OriginalA() *matrix.Dense { return s.a0.CloneDense() }

// OriginalF returns a copy of F as generated.
func (s *System) OriginalF() []complex128 { return cloneVec(s.f0) }

// XGenerated returns a copy of the known solution.
func (s *System) XGenerated() []complex128 { return cloneVec(s.xGen) }

// XFound returns a copy of the recovered solution, or nil before a
// successful solve.
func (s *System) XFound() []complex128 {
	if s.state != StateSolved {
		return nil
	}

	return cloneVec(s.xFound)
}

func cloneVec(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	copy(out, v)

	return out
}
