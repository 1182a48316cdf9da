// SPDX-License-Identifier: MIT

// Package store records solver runs.
//
// Two implementations share the Store interface:
//   - Postgres: table solve_runs, created on first connect.
//   - Memory: mutex-guarded slice for tests and runs without a database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/givens/equation"
)

var (
	// ErrConnectionFailed indicates the database could not be opened or pinged.
	ErrConnectionFailed = errors.New("store: database connection failed")

	// ErrNilRun indicates SaveRun was called with a nil run.
	ErrNilRun = errors.New("store: nil run")

	// ErrClosed indicates use of a closed store.
	ErrClosed = errors.New("store: closed")
)

// Store persists runs. Implementations are safe for concurrent use.
type Store interface {
	SaveRun(ctx context.Context, r *Run) (int64, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

// Ensure implementations satisfy Store.
var (
	_ Store = (*Postgres)(nil)
	_ Store = (*Memory)(nil)
)

// Run is one generate-and-solve attempt.
type Run struct {
	ID        int64
	Size      int
	Seed      uint64
	Mode      string
	Policy    string
	State     string
	Residual  float64 // relative, 0 unless solved
	Agreement float64 // relative, 0 unless solved
	NonFinite bool
	Elapsed   time.Duration
	Error     string

	XGenerated []complex128
	XFound     []complex128 // nil unless solved

	CreatedAt time.Time
}

// NewRun snapshots sys after a solve attempt. solveErr is the error Solve
// returned, if any; verification figures are filled only for solved systems.
func NewRun(sys *equation.System, seed uint64, elapsed time.Duration, solveErr error) *Run {
	o := sys.Options()
	r := &Run{
		Size:       sys.Size(),
		Seed:       seed,
		Mode:       modeName(o.Mode()),
		Policy:     o.Policy().String(),
		State:      sys.State().String(),
		Elapsed:    elapsed,
		XGenerated: sys.XGenerated(),
		XFound:     sys.XFound(),
	}
	if solveErr != nil {
		r.Error = solveErr.Error()
	}
	if v, err := sys.Verify(); err == nil {
		r.Residual = v.RelativeResidual
		r.Agreement = v.RelativeAgreement
		r.NonFinite = v.NonFinite
	}

	return r
}

func modeName(m equation.Mode) string {
	if m == equation.ModeInteger {
		return "integer"
	}

	return "uniform"
}
