package session_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/audiofx/codec"
	"github.com/cwbudde/audiofx/session"
)

func Example() {
	dir, err := os.MkdirTemp("", "audiofx")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.wav")
	if err := codec.Default().Encode(in, []float64{0, 0.5, -0.5, 0.25}, 8000); err != nil {
		fmt.Println(err)
		return
	}

	s := session.New(session.WithSeed(1))
	rate, samples, err := s.Load(in)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rate, samples)

	if _, err := s.ApplyNamed("lowpass", map[string]float64{"cutoff_freq": 4000}); err != nil {
		fmt.Println(err)
	}

	if _, err := s.ApplyNamed("lowpass", map[string]float64{"cutoff_freq": 1000}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.History())
	fmt.Println(s.Reset(), s.Samples())

	// Output:
	// 8000 [0 0.5 -0.5 0.25]
	// session: invalid parameter: filter: invalid parameter: lowpass cutoff 4000 Hz outside (0, 4000) Hz
	// [lowpass(1000 Hz, order 4)]
	// true [0 0.5 -0.5 0.25]
}
