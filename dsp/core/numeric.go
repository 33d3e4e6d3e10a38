package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClipInPlace limits every sample of buf to [-limit, limit].
func ClipInPlace(buf []float64, limit float64) {
	limit = math.Abs(limit)
	for i, v := range buf {
		buf[i] = Clamp(v, -limit, limit)
	}
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// PeakAbs returns max(|x|) over buf, or 0 for an empty buffer.
func PeakAbs(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}

	return floats.Norm(buf, math.Inf(1))
}

// IsSilent reports whether every sample of buf is exactly zero.
func IsSilent(buf []float64) bool {
	for _, v := range buf {
		if v != 0 {
			return false
		}
	}

	return true
}

// AllFinite reports whether buf contains neither NaN nor Inf.
func AllFinite(buf []float64) bool {
	for _, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
