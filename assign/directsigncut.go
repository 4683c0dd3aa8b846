// SPDX-License-Identifier: MIT
package assign

import "sort"

// DirectSignCut assigns labels by a median split over the Fiedler values:
// the ⌊n/2⌋ vertices with the smallest values get label 0, the remaining
// ⌈n/2⌉ get label 1, ties broken by original index so the result is
// deterministic. This replaces the original quadratic-objective MILP
// formulation with an O(n log n) sort — the recommended fix, since the cut
// it produces is exactly the sign-split of the Fiedler vector that spectral
// partitioning theory calls for, without any solver dependency.
type DirectSignCut struct{}

// Compile-time assertion: DirectSignCut implements AssignmentSolver.
var _ AssignmentSolver = DirectSignCut{}

// Solve implements AssignmentSolver. Complexity: O(n log n).
func (DirectSignCut) Solve(fiedler []float64) ([]int, error) {
	n := len(fiedler)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fiedler[order[a]] < fiedler[order[b]]
	})

	lowCount := n / 2
	labels := make([]int, n)
	for rank, idx := range order {
		if rank < lowCount {
			labels[idx] = 0
		} else {
			labels[idx] = 1
		}
	}
	return labels, nil
}
