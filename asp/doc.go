// Package asp emits the logic program spec.md §4.8 specifies for the
// LogicalProgramming (Answer-Set Programming) partitioning variant, and
// parses the chosen answer set back out of an external solver's stdout.
// The solver itself (clingo or equivalent) is an external collaborator this
// package invokes via os/exec — it is never vendored or reimplemented.
//
// Emit's balance constraint is strict equality (n mod k == 0 required),
// diverging from every other algorithm's ±1 balance tolerance; this mirrors
// the reference program verbatim rather than "fixing" it, per spec.md
// §4.8's closing note. Weighted mode truncates edge weights to integers,
// the same documented divergence.
package asp
