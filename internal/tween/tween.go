// Package tween provides the numeric interpolation helpers that every
// counter-driven entity uses to derive its visual properties.
package tween

import "math"

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Smoothstep interpolates between a and b along the cubic 3t²-2t³.
// t is clamped to [0, 1].
func Smoothstep(a, b, t float64) float64 {
	t = Clamp01(t)
	return Lerp(a, b, t*t*(3-2*t))
}

// High maps the upper half of a ratio onto [0, 1].
func High(t float64) float64 {
	return Clamp01(2*t - 1)
}

// Low maps the lower half of a ratio onto [0, 1].
func Low(t float64) float64 {
	return Clamp01(2 * t)
}
