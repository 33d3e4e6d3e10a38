package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT computes the full linear convolution of a and b in the frequency
// domain. Both inputs are zero-padded to the next power of two that holds
// len(a)+len(b)-1 samples, transformed, multiplied and transformed back.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	resultLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(resultLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aSpec := make([]complex128, fftSize)
	bSpec := make([]complex128, fftSize)
	for i, v := range a {
		aSpec[i] = complex(v, 0)
	}
	for i, v := range b {
		bSpec[i] = complex(v, 0)
	}

	if err := plan.Forward(aSpec, aSpec); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bSpec, bSpec); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aSpec {
		aSpec[i] *= bSpec[i]
	}

	if err := plan.Inverse(aSpec, aSpec); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, resultLen)
	for i := range result {
		result[i] = real(aSpec[i])
	}

	return result, nil
}
