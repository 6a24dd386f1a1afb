package trap

// Levels returns the water standing above each bar.
// It runs the same scan as Trap, so the sum of the result equals Trap(height).
// The returned slice is freshly allocated; nil for an empty profile.
//
// Complexity: O(n) time, O(n) memory.
func Levels(height []int) []int {
	if len(height) == 0 {
		return nil
	}

	levels := make([]int, len(height))
	left, right := 0, len(height)-1
	leftMax, rightMax := 0, 0

	for left <= right {
		if height[left] <= height[right] {
			if height[left] >= leftMax {
				leftMax = height[left]
			} else {
				levels[left] = leftMax - height[left]
			}
			left++
		} else {
			if height[right] >= rightMax {
				rightMax = height[right]
			} else {
				levels[right] = rightMax - height[right]
			}
			right--
		}
	}

	return levels
}
