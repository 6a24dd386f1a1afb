// Package profile generates deterministic bar-height profiles for tests,
// benchmarks, demos and the `raintrap generate` command.
//
// What:
//
//   - Random:    uniform heights in [0, maxHeight]
//   - Pulse:     walls of maxHeight every `period` bars, floor 0 between them
//   - Staircase: non-decreasing ramp 0 → maxHeight (holds no water)
//   - Valley:    V shape, maxHeight at both ends falling to the middle
//
// Options:
//
//   - WithSeed / WithRand: RNG for stochastic generators (Random).
//   - WithMaxHeight:       tallest bar (≥ 0).
//   - WithPeriod:          wall spacing for Pulse (≥ 2).
//
// Contract:
//
//   - Output is a pure function of (kind, n, options); same inputs, same slice.
//   - n < 0 → ErrBadSize; n == 0 → empty slice.
//   - Generators never panic. Option constructors panic on meaningless values.
//
// Complexity: every generator is O(n) time and O(n) memory.
package profile
