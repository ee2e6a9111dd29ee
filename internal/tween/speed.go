package tween

import "math"

// SpeedTable is a monotonic curve sampled at fixed points, used to shape how a
// 0..1 control amount maps onto a value range (e.g. perceived loudness).
type SpeedTable struct {
	samples []float64
}

// NewSpeedTable precomputes the normalised cumulative sum of (i/(n-1))^exponent
// for n samples. Exponent 0 gives a uniform (linear) curve.
func NewSpeedTable(n int, exponent float64) *SpeedTable {
	if n < 2 {
		panic("tween: speed table needs at least 2 samples")
	}

	samples := make([]float64, n)
	sum := 0.0
	for i := 1; i < n; i++ {
		sum += math.Pow(float64(i)/float64(n-1), exponent)
		samples[i] = sum
	}
	for i := range samples {
		samples[i] /= sum
	}
	return &SpeedTable{samples: samples}
}

// Len returns the number of samples.
func (t *SpeedTable) Len() int {
	return len(t.samples)
}

// index returns the nearest sample index for an amount.
func (t *SpeedTable) index(amount float64) int {
	return int(math.Round(Clamp01(amount) * float64(len(t.samples)-1)))
}

// Value maps amount onto [low, high] through the curve.
// When low > high the bounds are swapped and the amount inverted.
func (t *SpeedTable) Value(amount, low, high float64) float64 {
	if low > high {
		low, high = high, low
		amount = 1 - amount
	}
	return low + t.samples[t.index(amount)]*(high-low)
}

// Amount is the inverse of Value: it returns the amount of the sample whose
// value lies closest to v, applying the same swap rule.
func (t *SpeedTable) Amount(v, low, high float64) float64 {
	swapped := false
	if low > high {
		low, high = high, low
		swapped = true
	}

	target := 0.0
	if high > low {
		target = Clamp01((v - low) / (high - low))
	}

	best := 0
	for i, s := range t.samples {
		if math.Abs(s-target) < math.Abs(t.samples[best]-target) {
			best = i
		}
	}

	amount := float64(best) / float64(len(t.samples)-1)
	if swapped {
		amount = 1 - amount
	}
	return amount
}
