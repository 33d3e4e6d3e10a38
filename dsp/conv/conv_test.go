package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/audiofx/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}

	err = DirectTo(make([]float64, 2), []float64{1, 2}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestFFTMatchesDirect(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 1, 1500)
	kernel := make([]float64, 300)
	for i := range kernel {
		kernel[i] = math.Exp(-float64(i)/40) * math.Cos(float64(i)/7)
	}

	want, err := Direct(signal, kernel)
	if err != nil {
		t.Fatalf("direct convolution failed: %v", err)
	}

	got, err := FFT(signal, kernel)
	if err != nil {
		t.Fatalf("FFT convolution failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestFFTErrors(t *testing.T) {
	if _, err := FFT(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := FFT([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	for _, kernelLen := range []int{3, 64, 65, 400} {
		kernel := make([]float64, kernelLen)
		for i := range kernel {
			kernel[i] = math.Exp(-float64(i) / 20)
		}

		got, err := Convolve(signal, kernel)
		if err != nil {
			t.Fatalf("kernel %d: convolution failed: %v", kernelLen, err)
		}

		want, _ := Direct(signal, kernel)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-8)
	}
}

func TestConvolveIsCommutative(t *testing.T) {
	a := []float64{1, -2, 3}
	b := testutil.DeterministicNoise(3, 1, 20)

	ab, err := Convolve(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Convolve(b, a)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestConvolveModeSame(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		kernel []float64
		want   []float64
	}{
		// full = [0 1 2 3 4 5 0], centred start (3-1)/2 = 1
		{name: "odd kernel", kernel: []float64{0, 1, 0}, want: []float64{1, 2, 3, 4, 5}},
		// full = [1 3 5 7 9 5], start (2-1)/2 = 0
		{name: "even kernel", kernel: []float64{1, 1}, want: []float64{1, 3, 5, 7, 9}},
		// full length 5+6-1 = 10, start (6-1)/2 = 2
		{name: "kernel longer than signal", kernel: []float64{0, 0, 1, 0, 0, 0}, want: []float64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvolveMode(signal, tt.kernel, ModeSame)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestConvolveModeSameLongKernel(t *testing.T) {
	signal := testutil.DeterministicNoise(11, 1, 256)
	kernel := testutil.Impulse(129, 64)

	got, err := ConvolveMode(signal, kernel, ModeSame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, signal, 1e-9)
}

func TestConvolveModeValidAndFull(t *testing.T) {
	signal := []float64{1, 2, 3, 4}
	kernel := []float64{1, 1}

	full, err := ConvolveMode(signal, kernel, ModeFull)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, full, []float64{1, 3, 5, 7, 4}, 1e-12)

	valid, err := ConvolveMode(signal, kernel, ModeValid)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, valid, []float64{3, 5, 7}, 1e-12)
}

func TestModeString(t *testing.T) {
	if ModeSame.String() != "same" || Mode(9).String() != "unknown" {
		t.Fatalf("unexpected mode names: %s %s", ModeSame, Mode(9))
	}
}
