// SPDX-License-Identifier: MIT

// Package equation - rotation-based elimination.
//
// MAIN DESCRIPTION:
//   For pivot column i = 0..N-2 and target row j = i+1..N-1, compute the
//   rotation from (A[i][i], A[j][i]) and apply it jointly to rows i, j of A
//   and to F[i], F[j]. After the step A[j][i] is zero up to rounding.
//
// Implementation stages:
//   1. Coefficients: checkedRotation (PolicyAbort) or NewRotation (PolicyPropagate).
//   2. Right-hand side: F[i], F[j] rotated from their snapshots.
//   3. Columns k = 0..N-1: A[i][k], A[j][k] rotated from their snapshots,
//      serially or in column blocks on an errgroup.
//
// Ordering:
//   - Column i finishes (all j) before column i+1; (i, j) steps are strictly
//     sequential. Only stage 3 of one step may run concurrently, since each
//     column reads and writes its own pair.
//
// Complexity: O(N³) time, O(1) extra space (serial path).
package equation

import (
	"golang.org/x/sync/errgroup"
)

// Eliminate triangularizes A in place, applying the same rotations to F.
//
// Returns nil immediately when already triangular or solved. Under
// PolicyAbort a vanishing norm returns *DegenerateError (errors.Is
// ErrSingular) and the System enters StateFailed.
func (s *System) Eliminate() error {
	switch s.state {
	case StateFailed:
		return s.err
	case StateTriangular, StateSolved:
		return nil
	}

	var i, j int
	var err error
	for i = 0; i < s.n-1; i++ {
		for j = i + 1; j < s.n; j++ {
			if err = s.eliminateEntry(i, j); err != nil {
				s.log.Warn("Rotation degenerate", "pivot", i, "row", j, "err", err)
				return s.fail(equationErrorf(opEliminate, err))
			}
		}
		s.log.Debug("Eliminated pivot column", "pivot", i, "size", s.n)
	}
	s.state = StateTriangular

	return nil
}

// eliminateEntry annihilates A[j][i] against pivot row i.
func (s *System) eliminateEntry(i, j int) error {
	ri, _ := s.a.RawRow(i)
	rj, _ := s.a.RawRow(j)

	var rot Rotation
	if s.opts.policy == PolicyPropagate {
		rot = NewRotation(ri[i], rj[i])
	} else {
		var q complex128
		var ok bool
		rot, q, ok = checkedRotation(ri[i], rj[i], s.opts.eps)
		if !ok {
			return &DegenerateError{Stage: StageElimination, Pivot: i, Row: j, Value: q}
		}
	}
	s.log.Trace("Applying rotation", "pivot", i, "row", j, "c", rot.C, "s", rot.S)

	return s.applyRotation(i, j, rot, ri, rj)
}

// applyRotation rewrites F[i], F[j] and rows ri, rj as one transactional
// step: every output is computed from the values before the step.
func (s *System) applyRotation(i, j int, rot Rotation, ri, rj []complex128) error {
	s.f[i], s.f[j] = rot.Apply(s.f[i], s.f[j])

	if s.opts.workers > 1 && s.n >= s.opts.threshold {
		return rotateColumnsParallel(ri, rj, rot, s.opts.workers)
	}
	rotateColumns(ri, rj, rot, 0, len(ri))

	return nil
}

// rotateColumns rotates the pairs (ri[k], rj[k]) for k in [lo, hi).
func rotateColumns(ri, rj []complex128, rot Rotation, lo, hi int) {
	for k := lo; k < hi; k++ {
		ri[k], rj[k] = rot.Apply(ri[k], rj[k])
	}
}

// rotateColumnsParallel splits [0, N) into contiguous blocks, one per worker.
// Each column is computed exactly as in the serial loop, so results are
// bit-identical.
func rotateColumnsParallel(ri, rj []complex128, rot Rotation, workers int) error {
	n := len(ri)
	block := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += block {
		lo, hi := lo, min(lo+block, n)
		g.Go(func() error {
			rotateColumns(ri, rj, rot, lo, hi)
			return nil
		})
	}

	return g.Wait()
}
