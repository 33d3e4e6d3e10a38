package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/audiofx/dsp/core"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// MaxSpectrumFrames caps the number of leading frames used for the spectral
// fields of Summary.
const MaxSpectrumFrames = 1 << 16

// Summary describes a mono buffer.
type Summary struct {
	Frames   int
	Duration time.Duration

	Peak     float64
	RMS      float64
	PeakDBFS float64
	RMSDBFS  float64

	// DominantHz is the centre frequency of the strongest non-DC bin, or 0
	// for silent or too short input.
	DominantHz float64

	// CentroidHz is the magnitude-weighted mean frequency.
	CentroidHz float64
}

// String formats s on one line.
func (s Summary) String() string {
	return fmt.Sprintf("%d frames (%v), peak %.2f dBFS, rms %.2f dBFS, dominant %.1f Hz, centroid %.1f Hz",
		s.Frames, s.Duration, s.PeakDBFS, s.RMSDBFS, s.DominantHz, s.CentroidHz)
}

// Summarize analyses samples recorded at sampleRate.
func Summarize(samples []float64, sampleRate int) Summary {
	s := Summary{
		Frames:   len(samples),
		PeakDBFS: math.Inf(-1),
		RMSDBFS:  math.Inf(-1),
	}
	if len(samples) == 0 {
		return s
	}

	if sampleRate > 0 {
		s.Duration = time.Duration(len(samples)) * time.Second / time.Duration(sampleRate)
	}

	s.Peak = core.PeakAbs(samples)
	s.RMS = floats.Norm(samples, 2) / math.Sqrt(float64(len(samples)))
	s.PeakDBFS = core.LinearToDB(s.Peak)
	s.RMSDBFS = core.LinearToDB(s.RMS)

	if sampleRate > 0 && s.Peak > 0 {
		mag := Magnitude(samples)
		s.DominantHz = dominant(mag, float64(sampleRate))
		s.CentroidHz = centroid(mag, float64(sampleRate))
	}

	return s
}

// Magnitude returns the one-sided magnitude spectrum of the first
// MaxSpectrumFrames samples after a Hann window, zero-padded to a power of
// two. Bin k lies at k*sampleRate/(2*(len-1)).
func Magnitude(samples []float64) []float64 {
	n := min(len(samples), MaxSpectrumFrames)
	if n < 2 {
		return nil
	}

	size := 1
	for size < n {
		size <<= 1
	}

	frame := make([]float64, size)
	copy(frame, samples[:n])
	vecmath.MulBlockInPlace(frame[:n], hann(n))

	spec := fft.FFTReal(frame)
	bins := size/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func binFreq(k int, sampleRate float64, bins int) float64 {
	return float64(k) * sampleRate / float64(2*(bins-1))
}

func dominant(mag []float64, sampleRate float64) float64 {
	if len(mag) < 2 {
		return 0
	}
	k := floats.MaxIdx(mag[1:]) + 1
	if mag[k] == 0 {
		return 0
	}
	return binFreq(k, sampleRate, len(mag))
}

func centroid(mag []float64, sampleRate float64) float64 {
	total := floats.Sum(mag)
	if total == 0 {
		return 0
	}
	var weighted float64
	for k, m := range mag {
		weighted += binFreq(k, sampleRate, len(mag)) * m
	}
	return weighted / total
}
