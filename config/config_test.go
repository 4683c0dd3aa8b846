// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphpart/config"
)

func TestFromEnv_DefaultsWithoutRNGSeed(t *testing.T) {
	t.Setenv("RNG_SEED", "")
	cfg := config.FromEnv()
	assert.Equal(t, config.DefaultASPSolverPath, cfg.ASPSolverPath)
	assert.NotEmpty(t, cfg.ASPScratchPath)
	assert.Equal(t, int64(0), cfg.RNGSeed)
}

func TestFromEnv_ReadsRNGSeed(t *testing.T) {
	t.Setenv("RNG_SEED", "12345")
	cfg := config.FromEnv()
	assert.Equal(t, int64(12345), cfg.RNGSeed)
}

func TestFromEnv_IgnoresUnparsableSeed(t *testing.T) {
	t.Setenv("RNG_SEED", "not-a-number")
	cfg := config.FromEnv()
	assert.Equal(t, int64(0), cfg.RNGSeed)
}
