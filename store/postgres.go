// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/lib/pq"
	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/givens/matrix"
)

// Pool and connect settings.
const (
	maxOpenConns    = 10
	maxIdleConns    = 2
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 1 * time.Minute
	connectTimeout  = 10 * time.Second
)

// Postgres stores runs in the solve_runs table.
type Postgres struct {
	conn *sql.DB
}

// NewPostgres opens dsn with lib/pq, pings it and creates the schema.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(connMaxLifetime)
	conn.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	p := &Postgres{conn: conn}
	if err := p.migrate(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return p, nil
}

func (p *Postgres) migrate(ctx context.Context) error {
	_, err := p.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS solve_runs (
			id BIGSERIAL PRIMARY KEY,
			size INTEGER NOT NULL,
			seed BIGINT NOT NULL,
			mode TEXT NOT NULL,
			policy TEXT NOT NULL,
			state TEXT NOT NULL,
			residual DOUBLE PRECISION NOT NULL DEFAULT 0,
			agreement DOUBLE PRECISION NOT NULL DEFAULT 0,
			non_finite BOOLEAN NOT NULL DEFAULT FALSE,
			elapsed_ns BIGINT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			-- vectors are NULL when absent or not finite
			x_generated_re DOUBLE PRECISION[],
			x_generated_im DOUBLE PRECISION[],
			x_found_re DOUBLE PRECISION[],
			x_found_im DOUBLE PRECISION[],
			created_at TIMESTAMPTZ DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_solve_runs_created_at ON solve_runs(created_at DESC);
	`)

	return err
}

// SaveRun inserts r and returns the new row ID.
func (p *Postgres) SaveRun(ctx context.Context, r *Run) (int64, error) {
	if r == nil {
		return 0, ErrNilRun
	}
	genRe, genIm := splitVector(r.XGenerated)
	foundRe, foundIm := splitVector(r.XFound)

	var id int64
	err := p.conn.QueryRowContext(ctx, `
		INSERT INTO solve_runs (size, seed, mode, policy, state, residual, agreement,
			non_finite, elapsed_ns, error, x_generated_re, x_generated_im, x_found_re, x_found_im)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		r.Size, int64(r.Seed), r.Mode, r.Policy, r.State, finiteOrZero(r.Residual), finiteOrZero(r.Agreement),
		r.NonFinite, r.Elapsed.Nanoseconds(), r.Error,
		pq.Array(genRe), pq.Array(genIm), pq.Array(foundRe), pq.Array(foundIm)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	return id, nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (p *Postgres) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	q := `
		SELECT id, size, seed, mode, policy, state, residual, agreement, non_finite,
			elapsed_ns, error, x_generated_re, x_generated_im, x_found_re, x_found_im, created_at
		FROM solve_runs
		ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := p.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var seed, elapsed int64
		var genRe, genIm, foundRe, foundIm []float64
		if err := rows.Scan(&r.ID, &r.Size, &seed, &r.Mode, &r.Policy, &r.State,
			&r.Residual, &r.Agreement, &r.NonFinite, &elapsed, &r.Error,
			pq.Array(&genRe), pq.Array(&genIm), pq.Array(&foundRe), pq.Array(&foundIm),
			&r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Seed = uint64(seed)
		r.Elapsed = time.Duration(elapsed)
		if r.XGenerated, err = joinVector(genRe, genIm); err != nil {
			return nil, err
		}
		if r.XFound, err = joinVector(foundRe, foundIm); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.conn.Close()
}

// splitVector returns the real and imaginary parts of v, or (nil, nil) when
// v is nil or holds NaN/Inf, which float8[] text encoding cannot round-trip.
func splitVector(v []complex128) (re, im []float64) {
	if v == nil || matrix.HasNonFinite(v) {
		return nil, nil
	}
	re = cmplxs.Real(make([]float64, len(v)), v)
	im = cmplxs.Imag(make([]float64, len(v)), v)

	return re, im
}

// joinVector is the inverse of splitVector.
func joinVector(re, im []float64) ([]complex128, error) {
	if re == nil && im == nil {
		return nil, nil
	}
	if len(re) != len(im) {
		return nil, fmt.Errorf("store: vector parts differ in length (%d, %d)", len(re), len(im))
	}

	return cmplxs.Complex(make([]complex128, len(re)), re, im), nil
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return x
}
