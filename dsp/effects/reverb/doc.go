// Package reverb provides an offline convolution reverb driven by a
// synthetic room impulse response.
//
// The impulse response is Gaussian noise shaped by an exponential decay
// envelope and normalised to unit peak. The dry signal is convolved with it
// in "same" mode, the wet result is rescaled to the dry peak and the two are
// blended linearly:
//
//	rng := reverb.NewRand(42)
//	out, err := reverb.Apply(dry, 44100, reverb.Params{DecayTime: 1.5, Mix: 0.3}, rng)
//
// Randomness comes only from the *rand.Rand passed by the caller, so a fixed
// seed reproduces the output exactly.
package reverb
