package core

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	src := []float64{1, 2, 3}

	out := Clone(src)
	out[0] = 42

	if src[0] != 1 {
		t.Fatalf("mutating the clone changed the source: %v", src)
	}

	if Clone(nil) != nil {
		t.Fatal("Clone(nil) should stay nil")
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal([]float64{1, 2}, []float64{1, 2}) {
		t.Fatal("expected equal buffers")
	}
	if Equal([]float64{1, 2}, []float64{1, 2, 3}) {
		t.Fatal("length mismatch must not compare equal")
	}
	if Equal([]float64{1, 2}, []float64{1, 2.0000001}) {
		t.Fatal("comparison must be exact")
	}
}
