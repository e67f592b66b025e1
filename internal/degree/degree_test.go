package degree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 123.5, 123.5},
		{"full turn", 360, 0},
		{"many turns", 7200, 0},
		{"negative", -30, 330},
		{"negative full turn", -720, 0},
		{"past full turn", 725, 5},
		{"noise above zero", 1e-14, 0},
		{"noise below zero", -1e-14, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalize(tt.in), 1e-9)
		})
	}
}

func TestNormalizeIdempotentAndInRange(t *testing.T) {
	inputs := []float64{-1e9, -720.25, -360, -180, -0.5, 0, 0.5, 179.99, 180, 359.999, 360, 361, 1e9, math.Pi * 1000}
	for _, x := range inputs {
		n := Normalize(x)
		assert.GreaterOrEqual(t, n, 0.0, "x=%v", x)
		assert.Less(t, n, 360.0, "x=%v", x)
		assert.Equal(t, n, Normalize(n), "x=%v", x)
	}
}

func TestAdd(t *testing.T) {
	assert.InDelta(t, 10.0, Add(350, 20), 1e-12)
	assert.InDelta(t, 30.0, Add(10, 20), 1e-12)
	assert.InDelta(t, 0.0, Add(180, 180), 1e-12)
}

func TestSubtract(t *testing.T) {
	assert.InDelta(t, 350.0, Subtract(10, 20), 1e-12)
	assert.InDelta(t, 10.0, Subtract(20, 10), 1e-12)
	assert.InDelta(t, 0.0, Subtract(42, 42), 1e-12)
}

func TestSignedDifference(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{10, 350, 20},
		{350, 10, -20},
		{90, 0, 90},
		{0, 90, -90},
		{180, 0, -180},
		{0, 180, -180},
		{45, 45, 0},
		{720, 0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SignedDifference(tt.a, tt.b), 1e-9, "a=%v b=%v", tt.a, tt.b)
	}
}

func TestSignedDifferenceRange(t *testing.T) {
	for a := -400.0; a <= 400; a += 17.3 {
		for b := -400.0; b <= 400; b += 23.9 {
			d := SignedDifference(a, b)
			assert.GreaterOrEqual(t, d, -180.0)
			assert.Less(t, d, 180.0)
		}
		assert.Equal(t, 0.0, SignedDifference(a, a))
	}
}
