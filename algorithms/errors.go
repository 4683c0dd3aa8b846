// SPDX-License-Identifier: MIT
package algorithms

import "errors"

// Sentinel errors for the algorithms package.
var (
	// ErrInvalidK indicates k <= 0 or k > n.
	ErrInvalidK = errors.New("algorithms: invalid k")

	// ErrMissingWeights indicates a weight-sensitive algorithm (Inertial,
	// Geometric, BruteForceWeighted) was constructed without a WeightsMatrix.
	ErrMissingWeights = errors.New("algorithms: weights matrix required")

	// ErrUnknownAlgorithm indicates New was asked for a name not
	// present in the factory registry.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm name")

	// ErrDisconnectedSeed indicates Greedy's pseudo-peripheral seeding could
	// not find an unused vertex to grow a new partition from.
	ErrDisconnectedSeed = errors.New("algorithms: no unused vertex available for seeding")

	// ErrCombinatoriallyInfeasible indicates BruteForce/BruteForceWeighted
	// finished its enumeration without finding any balanced assignment.
	// k > n is reported as ErrInvalidK instead, and no search-space size
	// limit is enforced.
	ErrCombinatoriallyInfeasible = errors.New("algorithms: k exceeds n or search space too large")
)
