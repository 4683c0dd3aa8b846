// SPDX-License-Identifier: MIT
// Package assign implements the "black-box assignment solver" spectral
// partitioning delegates to after computing a Fiedler vector: given the
// Fiedler values, produce a balanced {0,1}-labeling of vertices.
//
// Two backends are provided behind the AssignmentSolver interface:
//
//   - DirectSignCut, an O(n log n) median split on the Fiedler values. This
//     is the recommended replacement for the original MILP-shaped step and
//     is what SpectralAlgorithm uses by default.
//   - BranchAndBoundSolver, which reproduces the original mixed-integer
//     formulation on top of gonum's lp.BNB, including (optionally) the
//     documented buggy linear objective, for callers that need the legacy
//     behavior reproduced exactly.
package assign
