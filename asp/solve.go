// SPDX-License-Identifier: MIT
package asp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/katalvlaran/graphpart/config"
	"github.com/katalvlaran/graphpart/partition"
)

// Solve emits the logic program for (n, edges, weighted, k), writes it to
// scratchPath, invokes binPath as an external ASP solver, and parses its
// stdout for the final answer set.
//
// The scratch file is removed via defer immediately after the solver
// process exits, regardless of outcome — the reference implementation
// leaks this file; spec.md §9 calls that a bug to fix.
func Solve(ctx context.Context, binPath, scratchPath string, n int, edges []Edge, weighted bool, k int) (partition.Partition, error) {
	program, err := Emit(n, edges, weighted, k)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	if err := os.WriteFile(scratchPath, []byte(program), 0o600); err != nil {
		return nil, fmt.Errorf("Solve: %w", ErrSolverUnavailable)
	}
	defer os.Remove(scratchPath)

	cmd := exec.CommandContext(ctx, binPath, scratchPath)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	// clingo (and most ASP solvers) exit non-zero on SATISFIABLE-with-
	// optimum-found under some flag combinations, so a non-nil Run error is
	// only fatal if stdout never produced a usable answer set; try parsing
	// first and only report SolverUnavailable if that also fails.
	runErr := cmd.Run()

	p, parseErr := ParseAnswer(stdout.String(), n, k)
	if parseErr != nil {
		if runErr != nil {
			return nil, fmt.Errorf("Solve: %w", ErrSolverUnavailable)
		}
		return nil, fmt.Errorf("Solve: %w", parseErr)
	}
	return p, nil
}

// SolveWithConfig is Solve with the solver binary path and scratch-file
// path taken from cfg (cfg.ASPSolverPath, cfg.ASPScratchPath) instead of
// passed directly — the entry point callers use with config.FromEnv()
// rather than hard-coding either path themselves.
func SolveWithConfig(ctx context.Context, cfg config.Config, n int, edges []Edge, weighted bool, k int) (partition.Partition, error) {
	return Solve(ctx, cfg.ASPSolverPath, cfg.ASPScratchPath, n, edges, weighted, k)
}
