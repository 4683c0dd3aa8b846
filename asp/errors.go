// SPDX-License-Identifier: MIT
package asp

import "errors"

// Sentinel errors for the asp package.
var (
	// ErrInvalidInput indicates n mod k != 0 (ASP's strict equal-size
	// balance constraint makes any other split unsatisfiable), or k <= 0.
	ErrInvalidInput = errors.New("asp: n must be divisible by k")

	// ErrSolverUnavailable indicates the external solver binary could not
	// be invoked (missing, not executable, scratch file unwritable).
	ErrSolverUnavailable = errors.New("asp: solver unavailable")

	// ErrSolverOutputMalformed indicates the solver's stdout contained no
	// recognizable part(v,p) answer-set atoms.
	ErrSolverOutputMalformed = errors.New("asp: solver output malformed")
)
