// SPDX-License-Identifier: MIT
package assign

import "errors"

// Sentinel errors for the assign package.
var (
	// ErrEmptyInput indicates an empty Fiedler vector.
	ErrEmptyInput = errors.New("assign: empty fiedler vector")

	// ErrSolverUnavailable indicates the MILP backend failed with an error
	// other than infeasibility (e.g. the equality/inequality system is
	// degenerate). An empty input is reported as ErrEmptyInput instead.
	ErrSolverUnavailable = errors.New("assign: solver unavailable for this problem shape")

	// ErrNoSolution indicates the MILP backend ran but found no
	// integer-feasible point (lp.ErrInfeasible, or BNB exhausted its queue).
	ErrNoSolution = errors.New("assign: no feasible integer solution found")
)
