// SPDX-License-Identifier: MIT
// Package: raintrap/profile
//
// generators.go — deterministic height-profile generators.
//
// Contract:
//   • Every generator returns a fresh slice of length n (empty for n == 0).
//   • n < 0 → ErrBadSize wrapped with the generator name.
//   • Values always lie in [0, maxHeight].

package profile

import (
	"math"
	"math/bits"
	"sort"
)

// Generator names, usable with ByKind.
const (
	KindRandom    = "random"
	KindPulse     = "pulse"
	KindStaircase = "staircase"
	KindValley    = "valley"
)

type generatorFn func(n int, opts ...Option) ([]int, error)

var generators = map[string]generatorFn{
	KindRandom:    Random,
	KindPulse:     Pulse,
	KindStaircase: Staircase,
	KindValley:    Valley,
}

// Kinds lists the generator names accepted by ByKind, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}

// ByKind dispatches to the generator registered under kind.
func ByKind(kind string, n int, opts ...Option) ([]int, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, profileErrorf("ByKind", "%q: %w", kind, ErrUnknownKind)
	}

	return gen(n, opts...)
}

// Random returns n heights drawn uniformly from [0, maxHeight].
func Random(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, profileErrorf(KindRandom, "n=%d: %w", n, ErrBadSize)
	}
	cfg := newProfileConfig(opts...)
	rng := rngFrom(cfg)

	// maxHeight+1 must not overflow; at MaxInt64 every non-negative value is in range.
	bound := int64(cfg.maxHeight)
	out := make([]int, n)
	for i := range out {
		if bound == math.MaxInt64 {
			out[i] = int(rng.Int63())
		} else {
			out[i] = int(rng.Int63n(bound + 1))
		}
	}

	return out, nil
}

// Pulse returns a rectangular wave: bar i is maxHeight when i%period == 0
// and 0 otherwise. Every complete basin holds (period-1)·maxHeight units.
func Pulse(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, profileErrorf(KindPulse, "n=%d: %w", n, ErrBadSize)
	}
	cfg := newProfileConfig(opts...)

	out := make([]int, n)
	for i := 0; i < n; i += cfg.period {
		out[i] = cfg.maxHeight
	}

	return out, nil
}

// Staircase returns a non-decreasing ramp from 0 up to maxHeight.
func Staircase(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, profileErrorf(KindStaircase, "n=%d: %w", n, ErrBadSize)
	}
	cfg := newProfileConfig(opts...)

	out := make([]int, n)
	if n < 2 {
		return out, nil
	}
	for i := range out {
		out[i] = scale(i, cfg.maxHeight, n-1)
	}

	return out, nil
}

// Valley returns a V-shaped profile: maxHeight at both ends, falling
// linearly towards the middle.
func Valley(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, profileErrorf(KindValley, "n=%d: %w", n, ErrBadSize)
	}
	cfg := newProfileConfig(opts...)

	out := make([]int, n)
	if n == 1 {
		out[0] = cfg.maxHeight
	}
	if n < 2 {
		return out, nil
	}
	span := n - 1
	for i := range out {
		d := 2*i - span
		if d < 0 {
			d = -d
		}
		out[i] = scale(d, cfg.maxHeight, span)
	}

	return out, nil
}

// scale returns num·top/den for 0 ≤ num ≤ den and top ≥ 0 without overflow.
// The 128-bit product keeps the quotient in [0, top].
func scale(num, top, den int) int {
	hi, lo := bits.Mul64(uint64(num), uint64(top))
	q, _ := bits.Div64(hi, lo, uint64(den))

	return int(q)
}
