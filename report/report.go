// SPDX-License-Identifier: MIT

// Package report renders equation systems for the console.
//
// Complex values print as "(re,im)" with re and im in %g form at the
// configured number of significant digits, right-aligned in a field of
// precision*2+5 characters. A Printer only reads what it is given.
package report

import (
	"fmt"
	"io"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/givens/equation"
	"github.com/katalvlaran/givens/matrix"
	"github.com/katalvlaran/givens/store"
)

// DefaultPrecision is the number of significant digits per component.
const DefaultPrecision = 6

// SystemView is the read-only surface PrintSystem needs.
// *equation.System satisfies it.
type SystemView interface {
	A() *matrix.Dense
	F() []complex128
}

// Printer writes formatted systems and vectors to w.
type Printer struct {
	w         io.Writer
	precision int
}

// NewPrinter returns a Printer; precision <= 0 selects DefaultPrecision.
func NewPrinter(w io.Writer, precision int) *Printer {
	if precision <= 0 {
		precision = DefaultPrecision
	}

	return &Printer{w: w, precision: precision}
}

// Precision reports the configured significant digits.
func (p *Printer) Precision() int { return p.precision }

// Width is the field width of one formatted value.
func (p *Printer) Width() int { return p.precision*2 + 5 }

// Format renders v as "(re,im)" without padding.
func (p *Printer) Format(v complex128) string {
	return "(" + strconv.FormatFloat(real(v), 'g', p.precision, 64) +
		"," + strconv.FormatFloat(imag(v), 'g', p.precision, 64) + ")"
}

func (p *Printer) cell(v complex128) string {
	return fmt.Sprintf("%*s", p.Width(), p.Format(v))
}

// PrintSystem writes one line per equation: the row of A, two tabs, then
// F[i], each followed by a blank line; three newlines close the block.
func (p *Printer) PrintSystem(s SystemView) error {
	a, f := s.A(), s.F()
	var sb strings.Builder
	var i, j int
	var row []complex128
	for i = 0; i < a.Rows(); i++ {
		row, _ = a.RawRow(i)
		for j = range row {
			sb.WriteString(p.cell(row[j]))
		}
		sb.WriteString("\t\t")
		sb.WriteString(p.Format(f[i]))
		sb.WriteString("\n\n")
	}
	sb.WriteString("\n\n\n")

	_, err := io.WriteString(p.w, sb.String())

	return err
}

// PrintVector writes v on one line followed by a blank line.
func (p *Printer) PrintVector(v []complex128) error {
	var sb strings.Builder
	for _, x := range v {
		sb.WriteString(p.cell(x))
	}
	sb.WriteString("\n\n")

	_, err := io.WriteString(p.w, sb.String())

	return err
}

// PrintSolutions writes the generated and found vectors under the
// "Generated X:" and "Found X:" headings. A nil found vector prints an
// empty line.
func (p *Printer) PrintSolutions(generated, found []complex128) error {
	if _, err := io.WriteString(p.w, "Generated X:\n"); err != nil {
		return err
	}
	if err := p.PrintVector(generated); err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, "Found X:\n"); err != nil {
		return err
	}

	return p.PrintVector(found)
}

// PrintComparison writes a table of X_Generated against X_Found with the
// per-entry error magnitude. Missing found entries render as "-".
func (p *Printer) PrintComparison(generated, found []complex128) {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader([]string{"i", "generated", "found", "|Δ|"})
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, g := range generated {
		fs, ds := "-", "-"
		if i < len(found) {
			fs = p.Format(found[i])
			ds = strconv.FormatFloat(cmplx.Abs(found[i]-g), 'e', 2, 64)
		}
		t.Append([]string{strconv.Itoa(i), p.Format(g), fs, ds})
	}
	t.Render()
}

// PrintVerification writes a two-column summary of v.
func (p *Printer) PrintVerification(v equation.Verification) {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader([]string{"measure", "value"})
	t.SetAlignment(tablewriter.ALIGN_LEFT)

	sci := func(x float64) string { return strconv.FormatFloat(x, 'e', 3, 64) }
	t.AppendBulk([][]string{
		{"residual ‖A·X−F‖∞", sci(v.Residual)},
		{"relative residual", sci(v.RelativeResidual)},
		{"agreement ‖X−X₀‖∞", sci(v.Agreement)},
		{"relative agreement", sci(v.RelativeAgreement)},
		{"max sub-diagonal", sci(v.MaxSubDiagonal)},
		{"non-finite", strconv.FormatBool(v.NonFinite)},
	})
	t.Render()
}

// PrintRuns writes one table row per recorded run, in the order given.
func (p *Printer) PrintRuns(runs []store.Run) {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader([]string{"id", "n", "seed", "state", "residual", "agreement", "elapsed"})
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range runs {
		t.Append([]string{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Size),
			strconv.FormatUint(r.Seed, 10),
			r.State,
			strconv.FormatFloat(r.Residual, 'e', 2, 64),
			strconv.FormatFloat(r.Agreement, 'e', 2, 64),
			r.Elapsed.String(),
		})
	}
	t.Render()
}
