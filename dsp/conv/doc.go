// Package conv provides linear convolution routines.
//
// Three strategies are offered:
//
//   - Direct: O(N*M) time-domain convolution, best for short kernels
//   - FFT: single-block frequency-domain convolution for inputs of similar length
//   - [OverlapAdd]: block-wise FFT convolution for long signals, with working
//     memory bounded by the kernel size
//
// [Convolve] picks between them from the input lengths, and [ConvolveMode]
// trims the full result to one of the [Mode] output shapes:
//
//	full, err := conv.Convolve(signal, kernel)
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// ModeSame returns the centred slice of the full result with the length of
// the first input, which is what a reverb send needs to stay aligned with
// its dry signal.
package conv
