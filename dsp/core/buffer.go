package core

// Clone returns an independent copy of buf. A nil input yields nil.
func Clone(buf []float64) []float64 {
	if buf == nil {
		return nil
	}

	out := make([]float64, len(buf))
	copy(out, buf)
	return out
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Equal reports whether a and b hold exactly the same samples.
func Equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
