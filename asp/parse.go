// SPDX-License-Identifier: MIT
package asp

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/graphpart/partition"
)

// partAtom matches a single part(V, P) answer-set atom, tolerating the
// optional space after the comma most ASP solvers emit.
var partAtom = regexp.MustCompile(`part\((\d+),\s*(\d+)\)`)

// ParseAnswer scans solver stdout for part(v,p) atoms and returns the
// partition they encode. clingo-style solvers print successive improving
// answer sets as optimization proceeds; the last line containing part/2
// atoms is the best (final) one, so later matches overwrite earlier ones.
//
// k must match the k passed to Emit for this run; it sizes the returned
// partition (p ranges 1..k in the emitted program, reindexed to 0..k-1).
func ParseAnswer(stdout string, n, k int) (partition.Partition, error) {
	matches := partAtom.FindAllStringSubmatch(stdout, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("ParseAnswer: %w", ErrSolverOutputMalformed)
	}

	// Successive Answer: blocks are complete restatements of every part/2
	// atom, not incremental diffs, so the LAST n matches form the final
	// (best) answer set.
	if len(matches) > n {
		matches = matches[len(matches)-n:]
	}

	groups := make([][]int, k)
	for i := range groups {
		groups[i] = make([]int, 0)
	}
	for _, m := range matches {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("ParseAnswer: %w", ErrSolverOutputMalformed)
		}
		p, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("ParseAnswer: %w", ErrSolverOutputMalformed)
		}
		if p < 1 || p > k {
			return nil, fmt.Errorf("ParseAnswer: %w", ErrSolverOutputMalformed)
		}
		groups[p-1] = append(groups[p-1], v)
	}

	p := partition.Partition(groups)
	if err := p.Validate(n); err != nil {
		return nil, fmt.Errorf("ParseAnswer: %w", ErrSolverOutputMalformed)
	}
	return p, nil
}
