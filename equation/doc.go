// Package equation generates and solves dense complex linear systems A·X = F
// with a known solution, using plane rotations followed by back-substitution.
//
// A System owns four structures of fixed size N: the matrix A, the right-hand
// side F, the generated solution X_Generated and the recovered X_Found. The
// pipeline is
//
//	New / NewFromData  →  Eliminate  →  BackSubstitute  →  Verify
//
// and Solve runs the two middle stages in one call.
//
// Rotation coefficients follow the algebraic formula
//
//	norm = √(a² + b²),  C = a/norm,  S = b/norm
//
// where a = A[i][i], b = A[j][i] and the square is the complex square, not
// the modulus. Rows i and j of A and F are rewritten as one transactional
// step from snapshots of the old values. NewUnitaryRotation provides the
// conjugate-modulus Givens rotation for comparison.
//
// Numerical degeneracy (a vanishing rotation norm or diagonal pivot) is
// reported as *DegenerateError, which matches ErrSingular via errors.Is.
// PolicyPropagate disables the checks and lets NaN/Inf flow into X_Found.
//
// Randomness comes from an explicit Source; NewUniformSource is reproducible
// for a given seed. A System is not safe for concurrent use.
package equation
