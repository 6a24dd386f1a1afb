// SPDX-License-Identifier: MIT
// Package: raintrap/profile
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil  (resolved to a source seeded with defaultSeed)
//   • maxHeight = 10
//   • period    = 4

package profile

import (
	"math/rand"
)

const (
	defaultSeed      = int64(1)
	defaultMaxHeight = 10
	defaultPeriod    = 4
)

// profileConfig aggregates all knobs used by generators.
// Passed by value so generators cannot leak changes back to callers.
type profileConfig struct {
	rng       *rand.Rand // nil means "seed with defaultSeed"
	maxHeight int        // ≥ 0
	period    int        // ≥ 2
}

// newProfileConfig applies opts in order over the defaults; last wins.
func newProfileConfig(opts ...Option) profileConfig {
	cfg := profileConfig{
		maxHeight: defaultMaxHeight,
		period:    defaultPeriod,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present, else a local source seeded with defaultSeed.
func rngFrom(cfg profileConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(defaultSeed))
}
