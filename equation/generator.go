// SPDX-License-Identifier: MIT

package equation

import (
	"github.com/katalvlaran/givens/matrix"
)

// fallbackSample replaces a raw sample that is exactly zero.
const fallbackSample = 1.0

// unitSolution is the X_Generated entry under WithUnitSolution.
const unitSolution complex128 = 1 + 1i

// sampler draws one real or imaginary part according to the configured mode.
type sampler struct {
	src      Source
	mode     Mode
	min, max float64
	imin     int
	imax     int
}

func newSampler(o Options) (*sampler, error) {
	s := &sampler{src: o.src, mode: o.mode, min: o.min, max: o.max}
	if s.src == nil {
		s.src = NewUniformSource(o.seed)
	}
	if s.mode == ModeInteger {
		s.imin, s.imax = int(o.min), int(o.max)
		if s.imax <= s.imin {
			return nil, ErrInvalidRange
		}
	}

	return s, nil
}

func (s *sampler) next() float64 {
	var v float64
	if s.mode == ModeInteger {
		v = float64(s.src.Int(s.imin, s.imax))
	} else {
		v = s.src.Float64(s.min, s.max)
	}
	if v == 0 {
		return fallbackSample
	}

	return v
}

// complexSample draws the imaginary part first, then the real part.
func (s *sampler) complexSample() complex128 {
	im := s.next()
	re := s.next()

	return complex(re, im)
}

// generate fills a (N×N) and x (N) row by row: x[i] first, then a[i][0..N-1].
//
// Complexity: O(N²) samples.
func generate(n int, o Options) (*matrix.Dense, []complex128, error) {
	s, err := newSampler(o)
	if err != nil {
		return nil, nil, err
	}
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	x := make([]complex128, n)

	var i, j int
	var row []complex128
	for i = 0; i < n; i++ {
		if o.unitX {
			x[i] = unitSolution
		} else {
			x[i] = s.complexSample()
		}
		row, _ = a.RawRow(i)
		for j = 0; j < n; j++ {
			row[j] = s.complexSample()
		}
	}

	return a, x, nil
}
