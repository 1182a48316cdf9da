// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/givens/equation"
	"github.com/katalvlaran/givens/matrix"
	"github.com/katalvlaran/givens/report"
	"github.com/katalvlaran/givens/store"
)

// literal implements report.SystemView over fixed data.
type literal struct {
	a *matrix.Dense
	f []complex128
}

func (l literal) A() *matrix.Dense { return l.a }
func (l literal) F() []complex128  { return l.f }

func TestFormat(t *testing.T) {
	p := report.NewPrinter(nil, 3)
	require.Equal(t, "(1.23,-4)", p.Format(1.23456-4i))
	require.Equal(t, 11, p.Width())

	d := report.NewPrinter(nil, 0)
	require.Equal(t, report.DefaultPrecision, d.Precision())
	require.Equal(t, "(0.333333,1e+06)", d.Format(complex(1.0/3, 1e6)))
}

func TestPrintSystem(t *testing.T) {
	a, err := matrix.FromRows([][]complex128{{2, 0}, {1, 1i}})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.NewPrinter(&buf, 1)
	require.NoError(t, p.PrintSystem(literal{a: a, f: []complex128{2, 1 + 1i}}))

	want := "  (2,0)  (0,0)\t\t(2,0)\n\n" +
		"  (1,0)  (0,1)\t\t(1,1)\n\n" +
		"\n\n\n"
	require.Equal(t, want, buf.String())
}

func TestPrintVector(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, 2)
	require.NoError(t, p.PrintVector([]complex128{1 + 1i, -0.5}))
	require.Equal(t, "    (1,1) (-0.5,0)\n\n", buf.String())
}

func TestPrintSolutions(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, 1)
	require.NoError(t, p.PrintSolutions([]complex128{1 + 1i}, []complex128{1}))
	require.Equal(t, "Generated X:\n  (1,1)\n\nFound X:\n  (1,0)\n\n", buf.String())

	buf.Reset()
	require.NoError(t, p.PrintSolutions([]complex128{2}, nil))
	require.Equal(t, "Generated X:\n  (2,0)\n\nFound X:\n\n\n", buf.String())
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, 4)
	p.PrintComparison([]complex128{1, 2i}, []complex128{1})

	out := buf.String()
	require.Contains(t, out, "GENERATED")
	require.Contains(t, out, "(0,2)")
	require.Contains(t, out, "0.00e+00")
	require.Contains(t, out, " - ")
}

func TestPrintVerification(t *testing.T) {
	var buf bytes.Buffer
	report.NewPrinter(&buf, 6).PrintVerification(equation.Verification{Residual: 1.5e-13, NonFinite: true})

	out := buf.String()
	require.Contains(t, out, "1.500e-13")
	require.Contains(t, out, "true")
}

func TestPrintSolvedSystem(t *testing.T) {
	sys, err := equation.New(3, equation.WithSeed(11))
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.NewPrinter(&buf, 6)
	require.NoError(t, p.PrintSystem(sys))
	require.Equal(t, 3, strings.Count(buf.String(), "\t\t"))
}

func TestPrintRuns(t *testing.T) {
	var buf bytes.Buffer
	report.NewPrinter(&buf, 6).PrintRuns([]store.Run{
		{ID: 7, Size: 4, Seed: 99, State: "solved", Residual: 2e-15, Elapsed: 1500 * time.Microsecond},
		{ID: 8, Size: 4, Seed: 100, State: "failed"},
	})

	out := buf.String()
	require.Contains(t, out, "SEED")
	require.Contains(t, out, "2.00e-15")
	require.Contains(t, out, "1.5ms")
	require.Contains(t, out, "failed")
}
