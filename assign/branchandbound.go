// SPDX-License-Identifier: MIT
package assign

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// BranchAndBoundOptions configures BranchAndBoundSolver.
type BranchAndBoundOptions struct {
	// ReproduceLegacyObjective selects the original, documented-buggy
	// linear objective (squared Fiedler values as single-variable
	// coefficients, which discards the sign information the split
	// actually needs) instead of the corrected one (raw Fiedler values,
	// which biases the balanced assignment toward the same sign split
	// DirectSignCut produces directly).
	ReproduceLegacyObjective bool

	// Tolerance is the simplex feasibility tolerance passed to lp.BNB.
	// Zero selects DefaultTolerance.
	Tolerance float64
}

// DefaultTolerance is the simplex feasibility tolerance used when
// BranchAndBoundOptions.Tolerance is left at zero.
const DefaultTolerance = 1e-9

// BranchAndBoundSolver reproduces the original assignment step as a
// 0/1-integer program solved by gonum's lp.BNB: variable y_i represents the
// label of vertex i directly (0 or 1, non-negative-integer form lp.BNB
// requires), bounded above by the inequality system G,h, and balanced by
// the equality constraint sum(y_i) == target.
type BranchAndBoundSolver struct {
	Options BranchAndBoundOptions
}

// Compile-time assertion: BranchAndBoundSolver implements AssignmentSolver.
var _ AssignmentSolver = BranchAndBoundSolver{}

// Solve implements AssignmentSolver.
//
// Complexity: exponential worst case (branch-and-bound over n binary
// variables), as documented by spec.md for the original MILP step.
func (s BranchAndBoundSolver) Solve(fiedler []float64) ([]int, error) {
	n := len(fiedler)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n == 1 {
		return []int{0}, nil
	}

	tol := s.Options.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	target := float64(n / 2)

	c := make([]float64, n)
	for i, f := range fiedler {
		if s.Options.ReproduceLegacyObjective {
			c[i] = f * f
		} else {
			c[i] = f
		}
	}

	// Equality constraint: sum(y_i) == target.
	aData := make([]float64, n)
	for i := range aData {
		aData[i] = 1
	}
	a := mat.NewDense(1, n, aData)
	b := []float64{target}

	// Inequality constraints: y_i <= 1 for every i (non-negativity is
	// implicit in the simplex's standard form).
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		g.Set(i, i, 1)
	}
	h := make([]float64, n)
	for i := range h {
		h[i] = 1
	}

	whole := make([]bool, n)
	for i := range whole {
		whole[i] = true
	}

	_, x, err := lp.BNB(c, a, b, g, h, whole, tol)
	if err != nil {
		if err == lp.ErrInfeasible {
			return nil, ErrNoSolution
		}
		return nil, ErrSolverUnavailable
	}
	if x == nil {
		return nil, ErrNoSolution
	}

	labels := make([]int, n)
	for i, v := range x {
		if v >= 0.5 {
			labels[i] = 1
		} else {
			labels[i] = 0
		}
	}
	return labels, nil
}
