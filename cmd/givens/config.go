// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/givens/equation"
	"github.com/katalvlaran/givens/report"
)

const envPrefix = "GIVENS_"

var (
	sizeFlag = &cli.IntFlag{
		Name:    "size",
		Aliases: []string{"n"},
		Usage:   "number of equations N",
		Value:   5,
		EnvVars: []string{envPrefix + "SIZE"},
	}
	minFlag = &cli.Float64Flag{
		Name:    "min",
		Usage:   "lower bound of sampled real and imaginary parts",
		Value:   equation.DefaultMin,
		EnvVars: []string{envPrefix + "MIN"},
	}
	maxFlag = &cli.Float64Flag{
		Name:    "max",
		Usage:   "upper bound (exclusive) of sampled parts",
		Value:   equation.DefaultMax,
		EnvVars: []string{envPrefix + "MAX"},
	}
	seedFlag = &cli.Uint64Flag{
		Name:    "seed",
		Usage:   "base seed; run k uses a seed derived from it (0 = default)",
		Value:   equation.DefaultSeed,
		EnvVars: []string{envPrefix + "SEED"},
	}
	runsFlag = &cli.IntFlag{
		Name:    "runs",
		Usage:   "number of independent systems to solve",
		Value:   1,
		EnvVars: []string{envPrefix + "RUNS"},
	}
	integerFlag = &cli.BoolFlag{
		Name:    "integer",
		Usage:   "draw integral samples in [min, max)",
		EnvVars: []string{envPrefix + "INTEGER"},
	}
	unitSolutionFlag = &cli.BoolFlag{
		Name:    "unit-solution",
		Usage:   "fix every X entry to 1+1i",
		EnvVars: []string{envPrefix + "UNIT_SOLUTION"},
	}
	workersFlag = &cli.IntFlag{
		Name:    "workers",
		Usage:   "goroutines per rotation column update (large N only)",
		Value:   equation.DefaultWorkers,
		EnvVars: []string{envPrefix + "WORKERS"},
	}
	policyFlag = &cli.StringFlag{
		Name:    "policy",
		Usage:   "degeneracy policy: abort or propagate",
		Value:   equation.PolicyAbort.String(),
		EnvVars: []string{envPrefix + "POLICY"},
	}
	epsFlag = &cli.Float64Flag{
		Name:    "eps",
		Usage:   "relative degeneracy tolerance",
		Value:   equation.DefaultEpsilon,
		EnvVars: []string{envPrefix + "EPS"},
	}
	precisionFlag = &cli.IntFlag{
		Name:    "precision",
		Usage:   "significant digits per printed component",
		Value:   report.DefaultPrecision,
		EnvVars: []string{envPrefix + "PRECISION"},
	}
	printSystemFlag = &cli.BoolFlag{
		Name:    "print-system",
		Usage:   "print A and F before solving",
		EnvVars: []string{envPrefix + "PRINT_SYSTEM"},
	}
	dsnFlag = &cli.StringFlag{
		Name:    "dsn",
		Usage:   "PostgreSQL connection string for recording runs",
		EnvVars: []string{envPrefix + "DATABASE_URL", "DATABASE_URL"},
	}
	verbosityFlag = &cli.IntFlag{
		Name:    "verbosity",
		Usage:   "log level: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value:   3,
		EnvVars: []string{envPrefix + "VERBOSITY"},
	}
)

var appFlags = []cli.Flag{
	sizeFlag, minFlag, maxFlag, seedFlag, runsFlag, integerFlag, unitSolutionFlag,
	workersFlag, policyFlag, epsFlag, precisionFlag, printSystemFlag, dsnFlag, verbosityFlag,
}

// config is the validated command-line configuration.
type config struct {
	Size         int
	Min, Max     float64
	Seed         uint64
	Runs         int
	Integer      bool
	UnitSolution bool
	Workers      int
	Policy       equation.DegeneracyPolicy
	Eps          float64
	Precision    int
	PrintSystem  bool
	DSN          string
	Verbosity    int
}

// configFromContext reads and validates flags. Invalid values are returned
// as errors here so the option constructors never panic.
func configFromContext(c *cli.Context) (*config, error) {
	cfg := &config{
		Size:         c.Int(sizeFlag.Name),
		Min:          c.Float64(minFlag.Name),
		Max:          c.Float64(maxFlag.Name),
		Seed:         c.Uint64(seedFlag.Name),
		Runs:         c.Int(runsFlag.Name),
		Integer:      c.Bool(integerFlag.Name),
		UnitSolution: c.Bool(unitSolutionFlag.Name),
		Workers:      c.Int(workersFlag.Name),
		Eps:          c.Float64(epsFlag.Name),
		Precision:    c.Int(precisionFlag.Name),
		PrintSystem:  c.Bool(printSystemFlag.Name),
		DSN:          c.String(dsnFlag.Name),
		Verbosity:    c.Int(verbosityFlag.Name),
	}

	switch p := c.String(policyFlag.Name); p {
	case "abort":
		cfg.Policy = equation.PolicyAbort
	case "propagate":
		cfg.Policy = equation.PolicyPropagate
	default:
		return nil, fmt.Errorf("invalid --policy %q (want abort or propagate)", p)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *config) validate() error {
	switch {
	case cfg.Size <= 0:
		return fmt.Errorf("invalid --size %d: %w", cfg.Size, equation.ErrInvalidSize)
	case !finite(cfg.Min) || !finite(cfg.Max) || cfg.Min >= cfg.Max:
		return fmt.Errorf("invalid range [%g, %g)", cfg.Min, cfg.Max)
	case cfg.Runs <= 0:
		return fmt.Errorf("invalid --runs %d", cfg.Runs)
	case cfg.Workers <= 0:
		return fmt.Errorf("invalid --workers %d", cfg.Workers)
	case !finite(cfg.Eps) || cfg.Eps < 0:
		return fmt.Errorf("invalid --eps %g", cfg.Eps)
	}

	return nil
}

// solverOptions builds the equation options for one run.
func (cfg *config) solverOptions(seed uint64) []equation.Option {
	opts := []equation.Option{
		equation.WithRange(cfg.Min, cfg.Max),
		equation.WithSeed(seed),
		equation.WithEpsilon(cfg.Eps),
		equation.WithDegeneracyPolicy(cfg.Policy),
		equation.WithWorkers(cfg.Workers),
	}
	if cfg.Integer {
		opts = append(opts, equation.WithIntegerValues())
	}
	if cfg.UnitSolution {
		opts = append(opts, equation.WithUnitSolution())
	}

	return opts
}

// runSeed returns the seed of run k: the base seed for a single run,
// a derived stream otherwise.
func (cfg *config) runSeed(k int) uint64 {
	if cfg.Runs == 1 {
		return cfg.Seed
	}

	return equation.DeriveSeed(cfg.Seed, uint64(k))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
