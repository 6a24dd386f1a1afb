// Package trap computes how much rainwater a row of bars holds.
//
// 🚀 What is it?
//
//	Given bar heights h[0..n-1] of unit width, the water above bar i is
//
//	  min(max(h[0..i]), max(h[i..n-1])) - h[i]
//
//	and the trapped volume is the sum over all bars. For example
//
//	              █
//	      █ ≈ ≈ ≈ █ █ ≈ █
//	  █ ≈ █ █ ≈ █ █ █ █ █ █
//	  0 1 0 2 1 0 1 3 2 1 2 1   → 6 units
//
// ✨ Key features:
//   - Trap:        two-pointer scan, O(n) time, O(1) extra memory
//   - TrapChecked: rejects negative heights before scanning
//   - Levels:      water above every bar (same scan, O(n) memory)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/raintrap/trap"
//
//	units := trap.Trap([]int{4, 2, 0, 3, 2, 5}) // 9
//
//	units, err := trap.TrapChecked(heights)
//	if errors.Is(err, trap.ErrNegativeHeight) { ... }
//
// Guarantees:
//   - The input slice is never modified.
//   - The result is never negative and is 0 for n ≤ 2 or monotone profiles.
//   - Stateless and safe for concurrent use on independent inputs.
package trap
