package terrain

import "math"

// falloffCenter recenters the gradient so the middle of the grid maps to zero.
const falloffCenter = 16

// Falloff returns the island bias subtracted from raw noise at (x, y). It is
// zero at the grid center and grows toward the border.
//
// The raw formula divides by zero on row and column 0, so x and y are clamped
// into [1, size-1] first. A grid of size 1 has no interior and yields +Inf.
// The clamp only keeps the value finite: the border ring turns to water when
// the bias there outweighs the summed noise, which holds for positive
// islandSize on grids of a few dozen cells or more but not on tiny grids.
func Falloff(x, y float64, size int, islandSize float64) float64 {
	s := float64(size)
	x = clamp(x, 1, s-1)
	y = clamp(y, 1, s-1)

	denom := (x * y) / (s * s) * (1 - x/s) * (1 - y/s)
	if denom <= 0 {
		return math.Inf(1)
	}
	gradient := 1 / denom
	gradient = (gradient - falloffCenter) / islandSize
	return gradient
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
