package reverb

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/audiofx/dsp/conv"
	"github.com/cwbudde/audiofx/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Defaults used when a caller does not specify parameters.
const (
	DefaultDecayTime = 1.0
	DefaultMix       = 0.3
)

// ErrInvalidParameter is returned for out-of-range parameters.
var ErrInvalidParameter = errors.New("reverb: invalid parameter")

// Params configures one reverb application.
type Params struct {
	// DecayTime is the impulse-response length in seconds. Must be > 0.
	DecayTime float64

	// Mix is the wet proportion in [0, 1]: 0 is fully dry, 1 fully wet.
	Mix float64
}

// DefaultParams returns DecayTime 1 s and Mix 0.3.
func DefaultParams() Params {
	return Params{DecayTime: DefaultDecayTime, Mix: DefaultMix}
}

// Validate checks p for a signal at sampleRate.
func (p Params) Validate(sampleRate float64) error {
	if err := validateDecay(sampleRate, p.DecayTime); err != nil {
		return err
	}
	if !(p.Mix >= 0 && p.Mix <= 1) {
		return fmt.Errorf("%w: mix must be in [0, 1]: %v", ErrInvalidParameter, p.Mix)
	}
	return nil
}

// String formats p for logs.
func (p Params) String() string {
	return fmt.Sprintf("reverb(decay %g s, mix %g)", p.DecayTime, p.Mix)
}

// Result holds the intermediate signals of one reverb pass.
type Result struct {
	// Impulse is the synthetic impulse response (nil for silent input).
	Impulse []float64

	// Wet is the convolved signal rescaled to the dry peak, before mixing.
	Wet []float64

	// Output is (1-mix)*dry + mix*wet.
	Output []float64
}

// Process runs the full reverb on dry and returns every stage. dry is not
// modified; all returned slices have len(dry) samples except Impulse.
func Process(dry []float64, sampleRate float64, p Params, rng *rand.Rand) (Result, error) {
	if err := p.Validate(sampleRate); err != nil {
		return Result{}, err
	}

	dryPeak := core.PeakAbs(dry)
	if dryPeak == 0 {
		// Silence stays silence; no noise energy is introduced.
		return Result{
			Wet:    make([]float64, len(dry)),
			Output: make([]float64, len(dry)),
		}, nil
	}

	ir, err := ImpulseResponse(sampleRate, p.DecayTime, rng)
	if err != nil {
		return Result{}, err
	}

	wet, err := conv.ConvolveMode(dry, ir, conv.ModeSame)
	if err != nil {
		return Result{}, fmt.Errorf("reverb: convolution: %w", err)
	}

	wetPeak := core.PeakAbs(wet)
	switch {
	case wetPeak == 0 || math.IsNaN(wetPeak):
		core.Zero(wet)
	default:
		floats.Scale(dryPeak/wetPeak, wet)
	}

	return Result{
		Impulse: ir,
		Wet:     wet,
		Output:  Mix(dry, wet, p.Mix),
	}, nil
}

// Apply runs the reverb and returns only the mixed output. A zero mix
// returns an exact copy of dry without drawing from rng.
func Apply(dry []float64, sampleRate float64, p Params, rng *rand.Rand) ([]float64, error) {
	if err := p.Validate(sampleRate); err != nil {
		return nil, err
	}
	if p.Mix == 0 {
		return core.Clone(dry), nil
	}

	res, err := Process(dry, sampleRate, p, rng)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

// Mix returns (1-mix)*dry + mix*wet. dry and wet must have equal length.
func Mix(dry, wet []float64, mix float64) []float64 {
	out := make([]float64, len(dry))
	floats.ScaleTo(out, 1-mix, dry)
	floats.AddScaled(out, mix, wet)
	return out
}
