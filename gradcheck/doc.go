// Package gradcheck estimates Jacobians by central finite differences and
// compares them with analytic ones.
//
// It is the harness layered on top of closed-form derivatives such as
// perspective.Jacobian: wrap the function under test as a Func from a flat
// parameter vector to a flat output vector, supply the analytic Jacobian
// J[out][in], and call Check.
//
// ⚙️ Usage:
//
//	err := gradcheck.Check(f, x, analytic, gradcheck.DefaultStep, gradcheck.DefaultTolerance)
//	if errors.Is(err, gradcheck.ErrMismatch) {
//	  // err names the (output, input) pair and both values
//	}
//
// Differences come from gonum's diff/fd with the central formula. Step size
// is relative: input i is perturbed by step·max(1, |x[i]|).
// Tolerance is mixed: |a - n| ≤ tol·max(1, |a|, |n|).
package gradcheck
