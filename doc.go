// Package givens solves dense complex linear systems A·X = F by plane
// rotations and back-substitution, and checks the recovered X against a
// known generated solution.
//
// The module is organized as:
//
//	matrix/      complex128 Dense container, MatVec (gonum cblas128), structural checks
//	equation/    System: random generator, rotation eliminator, back-substitution, Verify
//	report/      console rendering of systems, vectors and comparison tables
//	store/       run recording in PostgreSQL (lib/pq) or memory
//	cmd/givens/  command-line driver
//
// Quick start:
//
//	sys, err := equation.New(8, equation.WithSeed(42))
//	if err != nil { ... }
//	x, err := sys.Solve()
//	if errors.Is(err, equation.ErrSingular) { ... }
//	v, _ := sys.Verify()
//	fmt.Println(x, v.RelativeAgreement)
//
// Degenerate pivots are reported as *equation.DegenerateError rather than
// propagated as NaN, unless equation.PolicyPropagate is selected.
package givens
