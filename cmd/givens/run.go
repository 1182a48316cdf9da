// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/katalvlaran/givens/equation"
	"github.com/katalvlaran/givens/report"
	"github.com/katalvlaran/givens/store"
)

// errRunsFailed is returned when at least one run did not solve.
var errRunsFailed = errors.New("one or more runs failed")

// runner solves cfg.Runs systems, prints each and records it in st.
type runner struct {
	cfg     *config
	st      store.Store
	printer *report.Printer
	log     log.Logger
}

func newRunner(cfg *config, st store.Store, out io.Writer, logger log.Logger) *runner {
	return &runner{
		cfg:     cfg,
		st:      st,
		printer: report.NewPrinter(out, cfg.Precision),
		log:     logger,
	}
}

// runAll stops early only on context cancellation or output/store errors;
// numerical failures are counted and reported as errRunsFailed at the end.
func (r *runner) runAll(ctx context.Context) error {
	var failed int
	for k := 0; k < r.cfg.Runs; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := r.runOne(ctx, k)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if r.cfg.Runs > 1 && r.st != nil {
		runs, err := r.st.ListRuns(ctx, r.cfg.Runs)
		if err != nil {
			return err
		}
		r.printer.PrintRuns(runs)
	}
	if failed > 0 {
		r.log.Error("Runs finished with failures", "failed", failed, "runs", r.cfg.Runs)
		return fmt.Errorf("%w: %d of %d", errRunsFailed, failed, r.cfg.Runs)
	}
	r.log.Info("Runs finished", "runs", r.cfg.Runs)

	return nil
}

func (r *runner) runOne(ctx context.Context, k int) (bool, error) {
	seed := r.cfg.runSeed(k)
	logger := r.log.With("run", k, "seed", seed)

	sys, err := equation.New(r.cfg.Size, append(r.cfg.solverOptions(seed), equation.WithLogger(logger))...)
	if err != nil {
		return false, err
	}
	if r.cfg.PrintSystem {
		if err = r.printer.PrintSystem(sys); err != nil {
			return false, err
		}
	}

	start := time.Now()
	_, solveErr := sys.Solve()
	elapsed := time.Since(start)

	if r.cfg.PrintSystem {
		if err = r.printer.PrintSolutions(sys.XGenerated(), sys.XFound()); err != nil {
			return false, err
		}
	}

	if solveErr != nil {
		logger.Warn("Solve failed", "size", r.cfg.Size, "err", solveErr)
	} else {
		v, err := sys.Verify()
		if err != nil {
			return false, err
		}
		logger.Info("Solved system", "size", r.cfg.Size, "elapsed", elapsed,
			"residual", v.RelativeResidual, "agreement", v.RelativeAgreement)
		r.printer.PrintComparison(sys.XGenerated(), sys.XFound())
		r.printer.PrintVerification(v)
		if v.NonFinite {
			solveErr = errors.New("solution holds NaN or Inf")
		}
	}

	if r.st != nil {
		id, err := r.st.SaveRun(ctx, store.NewRun(sys, seed, elapsed, solveErr))
		if err != nil {
			return false, err
		}
		logger.Debug("Recorded run", "id", id)
	}

	return solveErr == nil, nil
}
