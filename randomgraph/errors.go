// SPDX-License-Identifier: MIT
package randomgraph

import "errors"

// Sentinel errors for the randomgraph package.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("randomgraph: n must be >= 1")

	// ErrInvalidDegree indicates maxDegree < 1 or maxDegree >= n.
	ErrInvalidDegree = errors.New("randomgraph: maxDegree must be in [1, n)")

	// ErrInvalidWeightRange indicates minWeight > maxWeight.
	ErrInvalidWeightRange = errors.New("randomgraph: minWeight must be <= maxWeight")
)
