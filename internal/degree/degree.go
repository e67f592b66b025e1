// Package degree implements circular (mod 360) arithmetic on ecliptic
// longitudes expressed in degrees.
package degree

import "math"

// epsilon absorbs floating point noise at the 0/360 boundary.
const epsilon = 1e-13

// Normalize reduces d to [0, 360).
func Normalize(d float64) float64 {
	d = math.Mod(d, 360.0)
	if math.Abs(d) < epsilon {
		d = 0
	}
	if d < 0 {
		d += 360.0
	}
	return d
}

// Add returns a + b wrapped past 360. Inputs are expected in [0, 360).
func Add(a, b float64) float64 {
	if a+b >= 360.0 {
		return a - 360.0 + b
	}
	return a + b
}

// Subtract returns a - b wrapped below 0. Inputs are expected in [0, 360).
func Subtract(a, b float64) float64 {
	if a-b < 0 {
		return a + 360.0 - b
	}
	return a - b
}

// SignedDifference returns the shortest signed path from b to a in degrees.
// The result lies in [-180, 180); a separation of exactly 180 reports -180.
func SignedDifference(a, b float64) float64 {
	d := Normalize(a - b)
	if d >= 180.0 {
		return d - 360.0
	}
	return d
}
