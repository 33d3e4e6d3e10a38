// Package filter applies Butterworth IIR filters to whole sample buffers.
//
// A [Spec] names the response, its cutoff(s) in Hz and the prototype order.
// [Apply] validates the spec against the sample rate, designs the filter
// with dsp/filter/butter and runs it over the buffer in a single causal
// pass with dsp/filter/iir, starting from zero state:
//
//	out, err := filter.Apply(samples, 44100, filter.Spec{
//		Kind:   filter.Lowpass,
//		Cutoff: 1000,
//	})
//
// Band filters (Bandpass, Bandstop) use Low and High instead of Cutoff and
// end up with twice the requested order.
package filter
