package utils

import "math"

// floorEpsilon absorbs float drift such as 100*1.1 = 110.00000000000001
// or 0.2+0.2+0.2+0.2+0.2 landing a hair under 1.
const floorEpsilon = 1e-9

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min3 returns the minimum of three integers.
func Min3(a, b, c int) int {
	return Min(Min(a, b), c)
}

// FloorToInt floors v, tolerating values a rounding error below an integer.
func FloorToInt(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Floor(v + floorEpsilon))
}

// AtLeast reports whether v >= target within float tolerance.
func AtLeast(v, target float64) bool {
	return v+floorEpsilon >= target
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
