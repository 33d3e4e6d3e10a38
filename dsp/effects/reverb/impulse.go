package reverb

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/audiofx/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// DecayFactor is the time constant in seconds of the impulse-response
// envelope exp(-t/DecayFactor).
const DecayFactor = 0.5

// Limits on the impulse response. MaxImpulseLength covers MaxDecayTime at
// 192 kHz.
const (
	MaxDecayTime     = 30.0
	MaxImpulseLength = 1 << 23
)

// ErrDegenerateImpulse is returned when the drawn noise has no energy.
var ErrDegenerateImpulse = errors.New("reverb: impulse response is all zeros")

// NewRand returns a random source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ImpulseLength returns round(sampleRate * decayTime).
func ImpulseLength(sampleRate, decayTime float64) int {
	return int(math.Round(sampleRate * decayTime))
}

// ImpulseResponse synthesises a decaying-noise impulse response of
// ImpulseLength(sampleRate, decayTime) samples with peak magnitude 1.
//
// Sample n sits at t = n/(len-1) * decayTime and holds a standard normal
// draw scaled by exp(-t/DecayFactor).
func ImpulseResponse(sampleRate, decayTime float64, rng *rand.Rand) ([]float64, error) {
	if err := validateDecay(sampleRate, decayTime); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}

	n := ImpulseLength(sampleRate, decayTime)

	noise := make([]float64, n)
	for i := range noise {
		noise[i] = rng.NormFloat64()
	}

	envelope := make([]float64, n)
	step := 0.0
	if n > 1 {
		step = decayTime / float64(n-1)
	}
	for i := range envelope {
		envelope[i] = math.Exp(-float64(i) * step / DecayFactor)
	}

	ir := make([]float64, n)
	vecmath.MulBlock(ir, noise, envelope)

	peak := core.PeakAbs(ir)
	if peak == 0 {
		return nil, ErrDegenerateImpulse
	}
	floats.Scale(1/peak, ir)

	return ir, nil
}

func validateDecay(sampleRate, decayTime float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidParameter, sampleRate)
	}
	if !(decayTime > 0) || math.IsInf(decayTime, 0) {
		return fmt.Errorf("%w: decay time must be > 0: %v", ErrInvalidParameter, decayTime)
	}
	if decayTime > MaxDecayTime {
		return fmt.Errorf("%w: decay time must be <= %v s: %v", ErrInvalidParameter, MaxDecayTime, decayTime)
	}
	switch n := ImpulseLength(sampleRate, decayTime); {
	case n < 1:
		return fmt.Errorf("%w: decay time %v s is shorter than one sample", ErrInvalidParameter, decayTime)
	case n > MaxImpulseLength:
		return fmt.Errorf("%w: impulse response of %d samples exceeds %d", ErrInvalidParameter, n, MaxImpulseLength)
	}
	return nil
}
