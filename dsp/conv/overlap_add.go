package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minOverlapAddBlock is the smallest input block used by NewOverlapAdd when
// no block size is given.
const minOverlapAddBlock = 256

// OverlapAdd convolves long signals with a fixed kernel block by block.
// Working memory is proportional to the kernel, not the signal.
type OverlapAdd struct {
	kernelSpec []complex128
	kernelLen  int
	blockSize  int
	fftSize    int

	plan    *algofft.Plan[complex128]
	scratch []complex128
}

// NewOverlapAdd prepares kernel for block convolution. A blockSize <= 0
// selects the next power of two >= len(kernel), at least 256.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minOverlapAddBlock)
	}
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, fftSize)
	for i, v := range kernel {
		spec[i] = complex(v, 0)
	}
	if err := plan.Forward(spec, spec); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return &OverlapAdd{
		kernelSpec: spec,
		kernelLen:  len(kernel),
		blockSize:  blockSize,
		fftSize:    fftSize,
		plan:       plan,
		scratch:    make([]complex128, fftSize),
	}, nil
}

// BlockSize returns the input block length.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the transform length.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.ProcessTo(out, input); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessTo writes the full convolution into dst, which must have length
// len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(dst, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	if want := len(input) + oa.kernelLen - 1; len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	for i := range dst {
		dst[i] = 0
	}

	for start := 0; start < len(input); start += oa.blockSize {
		block := input[start:min(start+oa.blockSize, len(input))]

		for i := range oa.scratch {
			oa.scratch[i] = 0
		}
		for i, v := range block {
			oa.scratch[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i, k := range oa.kernelSpec {
			oa.scratch[i] *= k
		}
		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		tail := dst[start:min(start+len(block)+oa.kernelLen-1, len(dst))]
		for i := range tail {
			tail[i] += real(oa.scratch[i])
		}
	}

	return nil
}

// OverlapAddConvolve is a one-shot overlap-add convolution with an
// automatic block size.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
