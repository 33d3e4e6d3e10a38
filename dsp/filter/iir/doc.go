// Package iir runs arbitrary-order IIR filters given as transfer-function
// polynomials.
//
// A [Filter] implements Direct Form II Transposed processing, the
// arbitrary-order counterpart of a biquad section. It starts from zero
// state, and [Filter.Reset] returns it there.
//
// Coefficient design lives in dsp/filter/butter.
package iir
