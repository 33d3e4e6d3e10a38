package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/audiofx/internal/testutil"
)

func TestOverlapAddMatchesDirect(t *testing.T) {
	tests := []struct {
		name      string
		signalLen int
		kernelLen int
		blockSize int
	}{
		{"auto block", 5000, 300, 0},
		{"block smaller than kernel", 2000, 300, 64},
		{"partial last block", 1001, 17, 128},
		{"signal shorter than block", 100, 50, 0},
		{"single tap", 777, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signal := testutil.DeterministicNoise(1, 1, tc.signalLen)
			kernel := testutil.DeterministicNoise(2, 0.5, tc.kernelLen)

			oa, err := NewOverlapAdd(kernel, tc.blockSize)
			if err != nil {
				t.Fatalf("NewOverlapAdd() error = %v", err)
			}
			if oa.KernelLen() != tc.kernelLen {
				t.Fatalf("KernelLen() = %d, want %d", oa.KernelLen(), tc.kernelLen)
			}
			if oa.FFTSize() < oa.BlockSize()+tc.kernelLen-1 {
				t.Fatalf("FFTSize() = %d too small for block %d", oa.FFTSize(), oa.BlockSize())
			}

			got, err := oa.Process(signal)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			want, _ := Direct(signal, kernel)
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)

			again, err := oa.Process(signal)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceEqual(t, again, got)
		})
	}
}

func TestOverlapAddBlockMemoryFollowsKernel(t *testing.T) {
	oa, err := NewOverlapAdd(make([]float64, 1000), 0)
	if err != nil {
		t.Fatal(err)
	}
	if oa.BlockSize() != 1024 || oa.FFTSize() != 2048 {
		t.Fatalf("block %d, fft %d; want 1024, 2048", oa.BlockSize(), oa.FFTSize())
	}

	small, err := NewOverlapAdd([]float64{1, 2, 3}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if small.BlockSize() != minOverlapAddBlock {
		t.Fatalf("BlockSize() = %d, want %d", small.BlockSize(), minOverlapAddBlock)
	}
}

func TestOverlapAddErrors(t *testing.T) {
	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("error = %v, want ErrEmptyKernel", err)
	}

	oa, err := NewOverlapAdd([]float64{1, 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := oa.Process(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
	if err := oa.ProcessTo(make([]float64, 3), []float64{1, 2, 3}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestConvolveLongSignalUsesBlocks(t *testing.T) {
	signal := testutil.DeterministicNoise(5, 1, 20000)
	kernel := testutil.DeterministicNoise(6, 1, 700)

	got, err := ConvolveMode(kernel, signal, ModeSame)
	if err != nil {
		t.Fatalf("ConvolveMode() error = %v", err)
	}
	if len(got) != len(kernel) {
		t.Fatalf("len = %d, want %d", len(got), len(kernel))
	}

	full, _ := Direct(signal, kernel)
	got, err = Convolve(signal, kernel)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, full, 1e-9)
}
