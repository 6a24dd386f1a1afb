package trap

import "fmt"

// Trap — trapped rainwater by two-pointer scan
//
// Description:
//
//	Returns the units of water held between the bars of height.
//	Whichever side has the lower current bar is bounded by its own
//	running maximum, because the opposite cursor already guarantees a
//	wall at least that tall. That side is resolved and its cursor moves
//	inward.
//
// Algorithm Outline:
//  1. left = 0, right = n-1, leftMax = rightMax = 0.
//  2. While left ≤ right:
//     if h[left] ≤ h[right]:
//     h[left] ≥ leftMax → leftMax = h[left]
//     otherwise        → water += leftMax - h[left]
//     left++
//     else the mirror image on right with rightMax, right--.
//  3. Return water.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Trap does not validate its input; see TrapChecked.
func Trap(height []int) int {
	left, right := 0, len(height)-1
	leftMax, rightMax := 0, 0
	water := 0

	for left <= right {
		if height[left] <= height[right] {
			if height[left] >= leftMax {
				leftMax = height[left]
			} else {
				water += leftMax - height[left]
			}
			left++
		} else {
			if height[right] >= rightMax {
				rightMax = height[right]
			} else {
				water += rightMax - height[right]
			}
			right--
		}
	}

	return water
}

// Validate reports the first negative height, wrapped around ErrNegativeHeight.
func Validate(height []int) error {
	for i, h := range height {
		if h < 0 {
			return fmt.Errorf("bar %d has height %d: %w", i, h, ErrNegativeHeight)
		}
	}

	return nil
}

// TrapChecked validates height and then computes Trap.
//
// Errors:
//   - ErrNegativeHeight — if any bar is below zero.
func TrapChecked(height []int) (int, error) {
	if err := Validate(height); err != nil {
		return 0, err
	}

	return Trap(height), nil
}
