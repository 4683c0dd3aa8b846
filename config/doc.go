// Package config centralizes the small set of externally-tunable settings
// this module needs: the ASP solver binary path, its scratch-file path, and
// the RNG seed, following builder/config.go's "explicit fields, never
// hard-coded constants" convention. FromEnv reads RNG_SEED, per spec.md
// §6's "random seed... implementer addition" note.
package config
