// SPDX-License-Identifier: MIT

// Package equation: functional configuration for generation and solving.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package equation

import (
	"math"

	"github.com/ethereum/go-ethereum/log"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMin and DefaultMax bound every sampled real or imaginary part.
	DefaultMin = -10.0
	DefaultMax = 10.0

	// DefaultEpsilon is the relative tolerance of the degeneracy checks:
	// a rotation is degenerate when |a²+b²| <= eps·(|a|²+|b|²), a pivot when
	// |A[i][i]| <= eps·max_{r,k}|A[r][k]| over the triangular A.
	DefaultEpsilon = 1e-12

	// DefaultWorkers runs the column update serially.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the smallest N for which WithWorkers(n>1)
	// fans the column update out.
	DefaultParallelThreshold = 256
)

// Mode selects how raw samples are drawn.
type Mode int

const (
	// ModeUniform draws real samples from Source.Float64 (default).
	ModeUniform Mode = iota
	// ModeInteger draws integral samples from Source.Int over [min, max).
	ModeInteger
)

// DegeneracyPolicy selects what happens on a vanishing norm or pivot.
type DegeneracyPolicy int

const (
	// PolicyAbort stops the solve with *DegenerateError (default).
	PolicyAbort DegeneracyPolicy = iota
	// PolicyPropagate performs no checks; NaN/Inf flow into X_Found.
	PolicyPropagate
)

// String implements fmt.Stringer.
func (p DegeneracyPolicy) String() string {
	if p == PolicyPropagate {
		return "propagate"
	}

	return "abort"
}

const (
	panicRangeInvalid     = "equation: WithRange: min and max must be finite with min < max"
	panicEpsilonInvalid   = "equation: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid   = "equation: WithWorkers: n must be >= 1"
	panicThresholdInvalid = "equation: WithParallelThreshold: n must be >= 1"
	panicPolicyInvalid    = "equation: WithDegeneracyPolicy: unknown policy"
	panicSourceNil        = "equation: WithSource: nil source"
	panicLoggerNil        = "equation: WithLogger: nil logger"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	min, max  float64          // sampling range; DefaultMin/DefaultMax
	seed      uint64           // seed for the default source; DefaultSeed
	src       Source           // nil ⇒ NewUniformSource(seed)
	mode      Mode             // ModeUniform
	unitX     bool             // X_Generated = 1+1i
	eps       float64          // DefaultEpsilon
	policy    DegeneracyPolicy // PolicyAbort
	workers   int              // DefaultWorkers
	threshold int              // DefaultParallelThreshold
	logger    log.Logger       // log.Root()
}

// Range reports the sampling range.
func (o Options) Range() (minValue, maxValue float64) { return o.min, o.max }

// Seed reports the seed used when no explicit Source is configured.
func (o Options) Seed() uint64 { return o.seed }

// Mode reports the sampling mode.
func (o Options) Mode() Mode { return o.mode }

// Epsilon reports the degeneracy tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Policy reports the degeneracy policy.
func (o Options) Policy() DegeneracyPolicy { return o.policy }

// Workers reports the column-update concurrency limit.
func (o Options) Workers() int { return o.workers }

// WithRange sets the sampling range [minValue, maxValue).
// Panics unless both are finite and minValue < maxValue.
func WithRange(minValue, maxValue float64) Option {
	if math.IsNaN(minValue) || math.IsNaN(maxValue) ||
		math.IsInf(minValue, 0) || math.IsInf(maxValue, 0) || minValue >= maxValue {
		panic(panicRangeInvalid)
	}

	return func(o *Options) { o.min, o.max = minValue, maxValue }
}

// WithSeed seeds the default uniform source. Seed 0 maps to DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithSource replaces the default source entirely; WithSeed is then ignored.
func WithSource(src Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.src = src }
}

// WithIntegerValues switches generation to ModeInteger.
func WithIntegerValues() Option {
	return func(o *Options) { o.mode = ModeInteger }
}

// WithUnitSolution fixes X_Generated[i] = 1+1i; no samples are drawn for X.
func WithUnitSolution() Option {
	return func(o *Options) { o.unitX = true }
}

// WithEpsilon sets the relative degeneracy tolerance. Zero keeps only the
// exact-zero and non-finite checks. Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDegeneracyPolicy selects PolicyAbort or PolicyPropagate.
func WithDegeneracyPolicy(p DegeneracyPolicy) Option {
	if p != PolicyAbort && p != PolicyPropagate {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithWorkers bounds the goroutines used for one rotation's column update.
// n == 1 keeps the serial loop.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the smallest N that uses the worker fan-out.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithLogger sets the logger used for stage progress and degeneracy reports.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user options in order over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		min:       DefaultMin,
		max:       DefaultMax,
		seed:      DefaultSeed,
		mode:      ModeUniform,
		eps:       DefaultEpsilon,
		policy:    PolicyAbort,
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = log.Root()
	}

	return o
}
