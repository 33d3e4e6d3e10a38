package butter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Errors returned by the design functions.
var (
	ErrInvalidOrder  = errors.New("butter: order must be >= 1")
	ErrInvalidCutoff = errors.New("butter: normalised cutoff must be in (0, 1)")
	ErrInvalidBand   = errors.New("butter: band edges must be ascending")
	ErrEdgeCount     = errors.New("butter: wrong number of band edges")
	ErrUnknownKind   = errors.New("butter: unknown filter kind")
)

// Kind selects the response type of a design.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
	Bandpass
	Bandstop
)

// String returns the lower-case response name.
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsBand reports whether k takes two edge frequencies.
func (k Kind) IsBand() bool {
	return k == Bandpass || k == Bandstop
}

// Edges returns the number of cutoff frequencies k expects, or 0 for an
// unknown kind.
func (k Kind) Edges() int {
	switch k {
	case Lowpass, Highpass:
		return 1
	case Bandpass, Bandstop:
		return 2
	default:
		return 0
	}
}

// TransferFunction holds digital filter polynomials in descending powers of
// z^-1 with A[0] normalised to 1:
//
//	H(z) = (B[0] + B[1] z^-1 + ...) / (1 + A[1] z^-1 + ...)
type TransferFunction struct {
	B []float64
	A []float64
}

// Order returns the filter order (len(A) - 1).
func (tf TransferFunction) Order() int {
	return len(tf.A) - 1
}

// Response evaluates H(e^{jw}) at normalised angular frequency w in
// radians per sample (0 is DC, pi is Nyquist).
func (tf TransferFunction) Response(w float64) complex128 {
	return evalPoly(tf.B, w) / evalPoly(tf.A, w)
}

// Magnitude returns |H(e^{jw})|.
func (tf TransferFunction) Magnitude(w float64) float64 {
	return cmplx.Abs(tf.Response(w))
}

func evalPoly(c []float64, w float64) complex128 {
	var sum complex128
	for k, v := range c {
		sum += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return sum
}

// Design returns the transfer function of an order-N digital Butterworth
// filter. wn holds one normalised cutoff for Lowpass/Highpass and two
// ascending edges for Bandpass/Bandstop, each in (0, 1) relative to Nyquist.
func Design(kind Kind, order int, wn ...float64) (TransferFunction, error) {
	zpk, err := DesignZPK(kind, order, wn...)
	if err != nil {
		return TransferFunction{}, err
	}

	return zpk.TransferFunction(), nil
}

// DesignZPK is Design in zero-pole-gain form (z-plane).
func DesignZPK(kind Kind, order int, wn ...float64) (ZPK, error) {
	if err := validate(kind, order, wn); err != nil {
		return ZPK{}, err
	}

	// Digital design with fs = 2 so that wn maps straight onto [0, 1].
	const fs = 2.0
	warped := make([]float64, len(wn))
	for i, w := range wn {
		warped[i] = 2 * fs * math.Tan(math.Pi*w/fs)
	}

	proto := Prototype(order)

	var analog ZPK
	switch kind {
	case Lowpass:
		analog = proto.toLowpass(warped[0])
	case Highpass:
		analog = proto.toHighpass(warped[0])
	case Bandpass:
		bw := warped[1] - warped[0]
		wo := math.Sqrt(warped[0] * warped[1])
		analog = proto.toBandpass(wo, bw)
	case Bandstop:
		bw := warped[1] - warped[0]
		wo := math.Sqrt(warped[0] * warped[1])
		analog = proto.toBandstop(wo, bw)
	}

	return analog.Bilinear(fs), nil
}

func validate(kind Kind, order int, wn []float64) error {
	edges := kind.Edges()
	if edges == 0 {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if order < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if len(wn) != edges {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrEdgeCount, kind, edges, len(wn))
	}
	for _, w := range wn {
		if !(w > 0 && w < 1) {
			return fmt.Errorf("%w: %v", ErrInvalidCutoff, w)
		}
	}
	if edges == 2 && wn[0] >= wn[1] {
		return fmt.Errorf("%w: low %v >= high %v", ErrInvalidBand, wn[0], wn[1])
	}
	return nil
}
