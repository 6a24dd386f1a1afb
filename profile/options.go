// SPDX-License-Identifier: MIT
// Package: raintrap/profile
//
// options.go — functional options for the profile generators.
//
// Contract:
//   • Options are functional (type Option func(*profileConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package profile

import (
	"math/rand"
)

// Option customizes a generator by mutating a profileConfig before use.
type Option func(*profileConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *profileConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG, e.g. to share one stream across calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("profile: WithRand(nil)")
	}
	return func(c *profileConfig) {
		c.rng = r
	}
}

// WithMaxHeight sets the tallest bar a generator may emit.
// Panics if h < 0; negative bars are outside the model.
func WithMaxHeight(h int) Option {
	if h < 0 {
		panic("profile: WithMaxHeight(h<0)")
	}
	return func(c *profileConfig) {
		c.maxHeight = h
	}
}

// WithPeriod sets the wall spacing for Pulse. Panics if p < 2,
// since walls must leave room for at least one basin bar.
func WithPeriod(p int) Option {
	if p < 2 {
		panic("profile: WithPeriod(p<2)")
	}
	return func(c *profileConfig) {
		c.period = p
	}
}
