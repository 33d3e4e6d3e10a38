package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/audiofx/internal/testutil"
)

// referenceFilter evaluates the difference equation directly.
func referenceFilter(b, a, x []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		acc := 0.0
		for k := range b {
			if n-k >= 0 {
				acc += b[k] * x[n-k]
			}
		}
		for k := 1; k < len(a); k++ {
			if n-k >= 0 {
				acc -= a[k] * y[n-k]
			}
		}
		y[n] = acc / a[0]
	}
	return y
}

func TestLFilterMatchesDifferenceEquation(t *testing.T) {
	tests := []struct {
		name string
		b    []float64
		a    []float64
	}{
		{name: "one pole", b: []float64{1}, a: []float64{1, -0.5}},
		{name: "fir moving average", b: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, a: []float64{1}},
		{name: "biquad", b: []float64{0.2929, 0.5858, 0.2929}, a: []float64{1, 0, 0.1716}},
		{name: "unnormalised", b: []float64{2, 1}, a: []float64{2, -0.6, 0.1}},
		{name: "fourth order", b: []float64{0.1, 0.2, 0.3, 0.2, 0.1}, a: []float64{1, -0.9, 0.5, -0.2, 0.05}},
	}

	x := testutil.DeterministicNoise(5, 1, 256)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LFilter(tt.b, tt.a, x)
			if err != nil {
				t.Fatalf("LFilter() error = %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, got, referenceFilter(tt.b, tt.a, x), 1e-12)
		})
	}
}

func TestImpulseResponseOnePole(t *testing.T) {
	out, err := LFilter([]float64{1}, []float64{1, -0.5}, testutil.Impulse(8, 0))
	if err != nil {
		t.Fatal(err)
	}

	for n, v := range out {
		if want := math.Pow(0.5, float64(n)); math.Abs(v-want) > 1e-15 {
			t.Fatalf("h[%d] = %v, want %v", n, v, want)
		}
	}
}

func TestZeroInitialStateAndReset(t *testing.T) {
	f, err := New([]float64{0.5, 0.5}, []float64{1, -0.3})
	if err != nil {
		t.Fatal(err)
	}
	if f.Order() != 1 {
		t.Fatalf("Order() = %d, want 1", f.Order())
	}

	x := testutil.DeterministicNoise(9, 1, 32)
	first := make([]float64, len(x))
	f.ProcessBlockTo(first, x)

	f.Reset()
	testutil.RequireSilent(t, f.State())

	second := make([]float64, len(x))
	copy(second, x)
	f.ProcessBlock(second)

	testutil.RequireSliceEqual(t, second, first)
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, []float64{1}); !errors.Is(err, ErrEmptyCoefficients) {
		t.Fatalf("expected ErrEmptyCoefficients, got %v", err)
	}
	if _, err := New([]float64{1}, []float64{0, 1}); !errors.Is(err, ErrZeroLeading) {
		t.Fatalf("expected ErrZeroLeading, got %v", err)
	}
}

func TestLFilterEmptyInput(t *testing.T) {
	out, err := LFilter([]float64{1}, []float64{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0", len(out))
	}
}
