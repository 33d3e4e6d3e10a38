package iir

import (
	"errors"
	"fmt"
)

// Errors returned by New.
var (
	ErrEmptyCoefficients = errors.New("iir: empty coefficients")
	ErrZeroLeading       = errors.New("iir: leading denominator coefficient is zero")
)

// Filter is a direct-form II transposed IIR filter with internal state.
//
// The difference equation is
//
//	y[n] = b[0]x[n] + ... + b[M]x[n-M] - a[1]y[n-1] - ... - a[M]y[n-M]
//
// with both polynomials normalised by a[0] and zero-padded to a common
// length M+1.
type Filter struct {
	b, a  []float64
	state []float64
}

// New returns a Filter for numerator b and denominator a. The slices are
// copied.
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, ErrEmptyCoefficients
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("%w: a = %v", ErrZeroLeading, a)
	}

	n := max(len(b), len(a))
	f := &Filter{
		b: make([]float64, n),
		a: make([]float64, n),
	}

	a0 := a[0]
	for i, v := range b {
		f.b[i] = v / a0
	}
	for i, v := range a {
		f.a[i] = v / a0
	}
	f.state = make([]float64, n-1)

	return f, nil
}

// Order returns the filter order (number of delay elements).
func (f *Filter) Order() int {
	return len(f.state)
}

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float64) float64 {
	s := f.state
	y := f.b[0]*x
	if len(s) == 0 {
		return y
	}

	y += s[0]
	last := len(s) - 1
	for i := 0; i < last; i++ {
		s[i] = f.b[i+1]*x - f.a[i+1]*y + s[i+1]
	}
	s[last] = f.b[last+1]*x - f.a[last+1]*y

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	for i := range f.state {
		f.state[i] = 0
	}
}

// State returns a copy of the delay-line state.
func (f *Filter) State() []float64 {
	out := make([]float64, len(f.state))
	copy(out, f.state)
	return out
}

// LFilter filters x with a fresh zero-state filter in a single forward
// pass and returns a new slice of the same length.
func LFilter(b, a, x []float64) ([]float64, error) {
	f, err := New(b, a)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	f.ProcessBlockTo(out, x)
	return out, nil
}
