package butter

import (
	"math"
	"math/cmplx"
)

// ZPK is a filter in zero-pole-gain form. Depending on context the roots
// live in the analog s-plane or the digital z-plane.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Prototype returns the analog Butterworth lowpass prototype of the given
// order: no zeros, poles evenly spaced on the left half of the unit circle
// and unity gain.
func Prototype(order int) ZPK {
	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / float64(2*order)
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}

	return ZPK{Poles: poles, Gain: 1}
}

// degree is the relative degree (excess of poles over zeros).
func (f ZPK) degree() int {
	return len(f.Poles) - len(f.Zeros)
}

// toLowpass moves the prototype cutoff from 1 rad/s to wo.
func (f ZPK) toLowpass(wo float64) ZPK {
	w := complex(wo, 0)
	return ZPK{
		Zeros: scaleRoots(f.Zeros, w),
		Poles: scaleRoots(f.Poles, w),
		Gain:  f.Gain * math.Pow(wo, float64(f.degree())),
	}
}

// toHighpass maps s -> wo/s. Zeros at infinity land at the origin.
func (f ZPK) toHighpass(wo float64) ZPK {
	w := complex(wo, 0)
	zeros := invertRoots(f.Zeros, w)
	zeros = appendRepeated(zeros, 0, f.degree())

	return ZPK{
		Zeros: zeros,
		Poles: invertRoots(f.Poles, w),
		Gain:  f.Gain * real(prodNeg(f.Zeros)/prodNeg(f.Poles)),
	}
}

// toBandpass maps s -> (s^2 + wo^2) / (s*bw). Each root splits into a pair
// and zeros at infinity land at the origin.
func (f ZPK) toBandpass(wo, bw float64) ZPK {
	half := complex(bw/2, 0)
	zeros := splitRoots(scaleRoots(f.Zeros, half), wo)
	zeros = appendRepeated(zeros, 0, f.degree())

	return ZPK{
		Zeros: zeros,
		Poles: splitRoots(scaleRoots(f.Poles, half), wo),
		Gain:  f.Gain * math.Pow(bw, float64(f.degree())),
	}
}

// toBandstop maps s -> (s*bw) / (s^2 + wo^2). Zeros at infinity land on
// +-j*wo.
func (f ZPK) toBandstop(wo, bw float64) ZPK {
	half := complex(bw/2, 0)
	zeros := splitRoots(invertRoots(f.Zeros, half), wo)
	zeros = appendRepeated(zeros, complex(0, wo), f.degree())
	zeros = appendRepeated(zeros, complex(0, -wo), f.degree())

	return ZPK{
		Zeros: zeros,
		Poles: splitRoots(invertRoots(f.Poles, half), wo),
		Gain:  f.Gain * real(prodNeg(f.Zeros)/prodNeg(f.Poles)),
	}
}

// Bilinear discretises an analog ZPK with the bilinear transform at sample
// rate fs. Zeros at infinity map to z = -1 (Nyquist).
func (f ZPK) Bilinear(fs float64) ZPK {
	fs2 := complex(2*fs, 0)

	zeros := make([]complex128, 0, len(f.Poles))
	num := complex(1, 0)
	for _, z := range f.Zeros {
		zeros = append(zeros, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}
	zeros = appendRepeated(zeros, -1, f.degree())

	poles := make([]complex128, len(f.Poles))
	den := complex(1, 0)
	for i, p := range f.Poles {
		poles[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}

	return ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  f.Gain * real(num/den),
	}
}

// TransferFunction expands the roots into polynomials. Imaginary residue
// from conjugate pairs is discarded.
func (f ZPK) TransferFunction() TransferFunction {
	b := poly(f.Zeros)
	a := poly(f.Poles)

	tf := TransferFunction{
		B: make([]float64, len(b)),
		A: make([]float64, len(a)),
	}
	for i, v := range b {
		tf.B[i] = real(v) * f.Gain
	}
	for i, v := range a {
		tf.A[i] = real(v)
	}

	// Pad the numerator so B and A share a length.
	if pad := len(tf.A) - len(tf.B); pad > 0 {
		tf.B = append(make([]float64, pad), tf.B...)
	}

	return tf
}

// poly returns the monic polynomial with the given roots, highest power
// first.
func poly(roots []complex128) []complex128 {
	c := make([]complex128, 1, len(roots)+1)
	c[0] = 1
	for _, r := range roots {
		c = append(c, 0)
		for i := len(c) - 1; i > 0; i-- {
			c[i] -= r * c[i-1]
		}
	}
	return c
}

func scaleRoots(roots []complex128, s complex128) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = r * s
	}
	return out
}

func invertRoots(roots []complex128, s complex128) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = s / r
	}
	return out
}

// splitRoots returns r +- sqrt(r^2 - wo^2) for every root, all "+"
// branches first.
func splitRoots(roots []complex128, wo float64) []complex128 {
	wo2 := complex(wo*wo, 0)
	out := make([]complex128, 2*len(roots))
	for i, r := range roots {
		d := cmplx.Sqrt(r*r - wo2)
		out[i] = r + d
		out[len(roots)+i] = r - d
	}
	return out
}

func appendRepeated(roots []complex128, v complex128, n int) []complex128 {
	for range n {
		roots = append(roots, v)
	}
	return roots
}

// prodNeg returns prod(-r) over roots (1 for none).
func prodNeg(roots []complex128) complex128 {
	p := complex(1, 0)
	for _, r := range roots {
		p *= -r
	}
	return p
}
