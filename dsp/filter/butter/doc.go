// Package butter designs digital Butterworth IIR filters.
//
// Designs start from the analog Butterworth prototype, are mapped to the
// requested response (lowpass, highpass, bandpass or bandstop) in the
// zero-pole-gain domain, prewarped and discretised with the bilinear
// transform, and finally expanded into transfer-function polynomials:
//
//	tf, err := butter.Design(butter.Lowpass, 4, 0.1)
//	// tf.B, tf.A hold order+1 coefficients, tf.A[0] == 1
//
// Cutoffs are normalised to the Nyquist frequency, so every edge must lie
// strictly inside (0, 1). Band designs take two ascending edges and produce
// a filter of twice the requested order.
//
// Runtime processing of the resulting coefficients lives in dsp/filter/iir.
package butter
