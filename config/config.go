// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// DefaultASPSolverPath is the binary name FromEnv always sets; no
// environment variable overrides it. Callers on a machine with a
// differently-named or located solver should set Config.ASPSolverPath
// directly rather than relying on PATH resolution.
const DefaultASPSolverPath = "clingo"

// DefaultASPScratchFile names the scratch file FromEnv places under
// os.TempDir(); Solve is responsible for removing it after each run.
const DefaultASPScratchFile = "graphpart-asp.lp"

// Config holds the settings that would otherwise be hard-coded constants:
// where the ASP solver binary lives, where its scratch program is written,
// and the RNG seed read from the environment.
type Config struct {
	// ASPSolverPath is the path (or PATH-resolvable name) of the external
	// ASP solver binary invoked by the asp package.
	ASPSolverPath string

	// ASPScratchPath is the filesystem path the asp package writes its
	// emitted logic program to before invoking the solver.
	ASPScratchPath string

	// RNGSeed holds the RNG_SEED value for callers to seed their own
	// *rand.Rand with. The algorithms and randomgraph packages do not read
	// it: a nil *rand.Rand there selects each package's fixed default seed.
	RNGSeed int64
}

// FromEnv returns a Config with default solver/scratch paths and an RNGSeed
// read from the RNG_SEED environment variable (0 if unset or unparsable).
func FromEnv() Config {
	cfg := Config{
		ASPSolverPath:  DefaultASPSolverPath,
		ASPScratchPath: filepath.Join(os.TempDir(), DefaultASPScratchFile),
	}
	if v := os.Getenv("RNG_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.RNGSeed = seed
		}
	}
	return cfg
}
