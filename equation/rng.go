// SPDX-License-Identifier: MIT

// Package equation - random sources for the system generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical systems across platforms.
//   - Encapsulation: no process-wide state; every System owns its Source.
//
// Concurrency:
//   - A Source is NOT goroutine-safe. Use DeriveSeed to build independent
//     streams for independent systems.
package equation

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is the fixed seed used when callers pass seed == 0.
const DefaultSeed uint64 = 1

// Source supplies raw samples to the generator.
//
// Float64 returns a value in [lo, hi); Int returns an integer in [lo, hi)
// and is only called in ModeInteger with hi > lo. The generator itself
// replaces a raw 0 with 1.
type Source interface {
	Float64(lo, hi float64) float64
	Int(lo, hi int) int
}

// UniformSource draws from gonum's distuv.Uniform over a PCG stream.
type UniformSource struct {
	src rand.Source
	rng *rand.Rand
}

// NewUniformSource returns a reproducible source.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewUniformSource(seed uint64) *UniformSource {
	if seed == 0 {
		seed = DefaultSeed
	}
	src := rand.NewSource(seed)

	return &UniformSource{src: src, rng: rand.New(src)}
}

// Float64 implements Source.
func (u *UniformSource) Float64(lo, hi float64) float64 {
	d := distuv.Uniform{Min: lo, Max: hi, Src: u.src}

	return d.Rand()
}

// Int implements Source.
func (u *UniformSource) Int(lo, hi int) int {
	return lo + u.rng.Intn(hi-lo)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// the SplitMix64 finalizer, so per-run streams are decorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return DefaultSeed
	}

	return x
}
