package codec

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by codecs.
var (
	ErrInvalidFile = errors.New("codec: not a recognised audio file")
	ErrUnsupported = errors.New("codec: unsupported sample format")
	ErrSampleRate  = errors.New("codec: sample rate must be > 0")
)

// SampleFormat tells whether decoded samples are integers or floats.
type SampleFormat int

const (
	FormatInt SampleFormat = iota
	FormatFloat
)

// String returns "int" or "float".
func (f SampleFormat) String() string {
	if f == FormatFloat {
		return "float"
	}
	return "int"
}

// Decoded is an interleaved, not yet normalised decode result. Exactly one
// of Ints and Floats is populated, selected by Format.
type Decoded struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Format     SampleFormat

	// Ints holds signed integer samples of BitDepth bits.
	Ints []int

	// Floats holds floating-point samples as stored in the file.
	Floats []float64
}

// Len returns the number of interleaved samples.
func (d *Decoded) Len() int {
	if d.Format == FormatFloat {
		return len(d.Floats)
	}
	return len(d.Ints)
}

// Frames returns the number of complete multi-channel frames.
func (d *Decoded) Frames() int {
	if d.Channels <= 0 {
		return 0
	}
	return d.Len() / d.Channels
}

// FullScale returns the magnitude of the most negative value of a signed
// integer of BitDepth bits, 2^(bits-1).
func (d *Decoded) FullScale() float64 {
	return math.Ldexp(1, d.BitDepth-1)
}

// Codec decodes audio files into interleaved samples and encodes mono
// float samples to disk.
type Codec interface {
	Decode(path string) (*Decoded, error)
	Encode(path string, samples []float64, sampleRate int) error
}

// Default returns the WAV codec.
func Default() Codec {
	return WAV{}
}

// pcm16Scale maps [-1, 1) onto the int16 range.
const pcm16Scale = 32768

// PCM16 converts float samples to 16-bit signed integers: clip to [-1, 1],
// scale by 32768, round to nearest and saturate at [-32768, 32767].
func PCM16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		v = math.Max(-1, math.Min(1, v))
		q := int(math.Round(v * pcm16Scale))
		out[i] = max(math.MinInt16, min(math.MaxInt16, q))
	}
	return out
}

func validateDecoded(d *Decoded, path string) error {
	if d.SampleRate <= 0 {
		return fmt.Errorf("%w: %s: sample rate %d", ErrInvalidFile, path, d.SampleRate)
	}
	if d.Channels <= 0 {
		return fmt.Errorf("%w: %s: %d channels", ErrInvalidFile, path, d.Channels)
	}
	return nil
}
