package layout

import "golang.org/x/exp/constraints"

// MaxCell is the largest representable cell coordinate or dimension.
const MaxCell = 65535

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp[T constraints.Ordered](v, minVal, maxVal T) T {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// satSub subtracts b from a, saturating at zero.
func satSub[T constraints.Integer](a, b T) T {
	if b >= a {
		return 0
	}
	return a - b
}

// cell converts an intermediate integer to a u16 cell coordinate,
// clamping to [0, MaxCell] so that overflow can neither wrap nor go
// negative.
func cell(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > MaxCell {
		return MaxCell
	}
	return uint16(v)
}
