package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/audiofx/dsp/filter/butter"
	"github.com/cwbudde/audiofx/dsp/filter/iir"
)

// DefaultOrder is the prototype order used when Spec.Order is zero.
const DefaultOrder = 4

// MaxOrder is the highest accepted prototype order.
const MaxOrder = 32

// Errors returned by Apply and Spec validation.
var (
	ErrInvalidParameter = errors.New("filter: invalid parameter")
	ErrUnknownKind      = errors.New("filter: unknown kind")
)

// Kind selects the filter response.
type Kind = butter.Kind

// Supported responses.
const (
	Lowpass  = butter.Lowpass
	Highpass = butter.Highpass
	Bandpass = butter.Bandpass
	Bandstop = butter.Bandstop
)

// Spec describes one filter application.
type Spec struct {
	Kind Kind

	// Cutoff is the -3 dB frequency in Hz for Lowpass and Highpass.
	Cutoff float64

	// Low and High are the band edges in Hz for Bandpass and Bandstop.
	Low, High float64

	// Order is the prototype order. Zero selects DefaultOrder.
	Order int
}

// EffectiveOrder returns Order, or DefaultOrder when unset.
func (s Spec) EffectiveOrder() int {
	if s.Order == 0 {
		return DefaultOrder
	}
	return s.Order
}

// Edges returns the cutoff frequencies in Hz that apply to s.Kind.
func (s Spec) Edges() []float64 {
	if s.Kind.IsBand() {
		return []float64{s.Low, s.High}
	}
	return []float64{s.Cutoff}
}

// Validate checks s against sampleRate without designing the filter.
func (s Spec) Validate(sampleRate float64) error {
	_, err := s.normalized(sampleRate)
	return err
}

// normalized returns the cutoffs divided by the Nyquist frequency.
func (s Spec) normalized(sampleRate float64) ([]float64, error) {
	if s.Kind.Edges() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, s.Kind)
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidParameter, sampleRate)
	}
	if order := s.EffectiveOrder(); order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("%w: order must be in [1, %d]: %d", ErrInvalidParameter, MaxOrder, s.Order)
	}

	nyquist := sampleRate / 2
	edges := s.Edges()
	wn := make([]float64, len(edges))
	for i, f := range edges {
		w := f / nyquist
		if !(w > 0 && w < 1) {
			return nil, fmt.Errorf("%w: %s cutoff %v Hz outside (0, %v) Hz", ErrInvalidParameter, s.Kind, f, nyquist)
		}
		wn[i] = w
	}

	if len(wn) == 2 && s.Low >= s.High {
		return nil, fmt.Errorf("%w: %s low cut %v Hz must be below high cut %v Hz", ErrInvalidParameter, s.Kind, s.Low, s.High)
	}

	return wn, nil
}

// Design returns the digital transfer function for s at sampleRate.
func (s Spec) Design(sampleRate float64) (butter.TransferFunction, error) {
	wn, err := s.normalized(sampleRate)
	if err != nil {
		return butter.TransferFunction{}, err
	}

	tf, err := butter.Design(s.Kind, s.EffectiveOrder(), wn...)
	if err != nil {
		return butter.TransferFunction{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return tf, nil
}

// String formats s for logs.
func (s Spec) String() string {
	if s.Kind.IsBand() {
		return fmt.Sprintf("%s(%g-%g Hz, order %d)", s.Kind, s.Low, s.High, s.EffectiveOrder())
	}
	return fmt.Sprintf("%s(%g Hz, order %d)", s.Kind, s.Cutoff, s.EffectiveOrder())
}

// Apply designs the filter described by spec and runs it once over samples
// with zero initial conditions. The input is not modified; the result has
// the same length.
func Apply(samples []float64, sampleRate float64, spec Spec) ([]float64, error) {
	tf, err := spec.Design(sampleRate)
	if err != nil {
		return nil, err
	}

	out, err := iir.LFilter(tf.B, tf.A, samples)
	if err != nil {
		return nil, fmt.Errorf("filter: %s: %w", spec, err)
	}

	return out, nil
}
