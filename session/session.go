package session

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/cwbudde/audiofx/analysis"
	"github.com/cwbudde/audiofx/codec"
	"github.com/cwbudde/audiofx/dsp/core"
	"github.com/cwbudde/audiofx/dsp/effects/reverb"
	"github.com/cwbudde/audiofx/dsp/filter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Errors returned by Session methods. Engine errors are wrapped so that both
// the session sentinel and the engine cause match with errors.Is.
var (
	ErrDecode           = errors.New("session: decode failed")
	ErrIO               = errors.New("session: write failed")
	ErrNotLoaded        = errors.New("session: no audio loaded")
	ErrUnknownEffect    = errors.New("session: unknown effect")
	ErrInvalidParameter = errors.New("session: invalid parameter")
)

// Session owns an original and a working copy of one mono clip.
type Session struct {
	codec  codec.Codec
	logger *zap.Logger
	rng    *rand.Rand

	loaded     bool
	sampleRate int
	original   []float64
	current    []float64
	history    []Effect
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	s := &Session{
		codec:  codec.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = reverb.NewRand(time.Now().UnixNano())
	}
	return s
}

// Load decodes path, averages all channels to mono and normalises the
// samples to [-1, 1]. It replaces any previously loaded clip and returns the
// sample rate and a copy of the samples.
func (s *Session) Load(path string) (int, []float64, error) {
	d, err := s.codec.Decode(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	mono, err := toMono(d)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	s.loaded = true
	s.sampleRate = d.SampleRate
	s.original = mono
	s.current = core.Clone(mono)
	s.history = nil

	s.logState("loaded audio",
		zap.String("path", path),
		zap.Int("sample_rate", d.SampleRate),
		zap.Int("channels", d.Channels),
		zap.Int("bit_depth", d.BitDepth),
		zap.Stringer("format", d.Format),
	)

	return s.sampleRate, core.Clone(mono), nil
}

// toMono downmixes interleaved decoded samples by the per-frame mean.
// Integer samples are divided by 2^(bitDepth-1); float samples are clipped
// to [-1, 1].
func toMono(d *codec.Decoded) ([]float64, error) {
	if d.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %d", d.SampleRate)
	}
	if d.Channels <= 0 {
		return nil, fmt.Errorf("channel count must be > 0: %d", d.Channels)
	}

	frames := d.Frames()
	if frames == 0 {
		return nil, errors.New("no audio frames")
	}

	ch := d.Channels
	mono := make([]float64, frames)

	switch d.Format {
	case codec.FormatInt:
		if d.BitDepth <= 0 {
			return nil, fmt.Errorf("bit depth must be > 0: %d", d.BitDepth)
		}
		scale := d.FullScale()
		for i := range mono {
			var sum int
			for _, v := range d.Ints[i*ch : (i+1)*ch] {
				sum += v
			}
			mono[i] = float64(sum) / float64(ch) / scale
		}
	case codec.FormatFloat:
		for i := range mono {
			var sum float64
			for _, v := range d.Floats[i*ch : (i+1)*ch] {
				sum += v
			}
			mono[i] = sum / float64(ch)
		}
		if !core.AllFinite(mono) {
			return nil, errors.New("non-finite float samples")
		}
	default:
		return nil, fmt.Errorf("%w: %v", codec.ErrUnsupported, d.Format)
	}

	core.ClipInPlace(mono, 1)
	return mono, nil
}

// Save writes the working copy to path as 16-bit mono PCM.
func (s *Session) Save(path string) error {
	return s.save(path, s.current)
}

// SaveSamples writes samples at the loaded sample rate without touching the
// session's buffers.
func (s *Session) SaveSamples(path string, samples []float64) error {
	return s.save(path, samples)
}

func (s *Session) save(path string, samples []float64) error {
	if !s.loaded {
		return ErrNotLoaded
	}

	out := core.Clone(samples)
	core.ClipInPlace(out, 1)

	if err := s.codec.Encode(path, out, s.sampleRate); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	s.logger.Debug("saved audio",
		zap.String("path", path),
		zap.Int("sample_rate", s.sampleRate),
		zap.Int("frames", len(out)),
	)
	return nil
}

// Apply runs e on the working copy, replaces it with the result and returns
// a copy. On error the working copy is unchanged.
func (s *Session) Apply(e Effect) ([]float64, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}

	out, err := s.process(e)
	if err != nil {
		return nil, err
	}
	if !core.AllFinite(out) {
		return nil, fmt.Errorf("%w: %s produced non-finite output", ErrInvalidParameter, e)
	}
	core.ClipInPlace(out, 1)

	s.current = out
	s.history = append(s.history, e)

	s.logState("applied effect",
		zap.String("effect", e.Name()),
		zap.Stringer("params", e),
	)

	return core.Clone(out), nil
}

// ApplyNamed resolves name and params through ParseEffect and applies the
// result.
func (s *Session) ApplyNamed(name string, params map[string]float64) ([]float64, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	e, err := ParseEffect(name, params)
	if err != nil {
		return nil, err
	}
	return s.Apply(e)
}

func (s *Session) process(e Effect) ([]float64, error) {
	rate := float64(s.sampleRate)

	var (
		out []float64
		err error
	)
	switch e := e.(type) {
	case Lowpass:
		out, err = filter.Apply(s.current, rate, e.spec())
	case Highpass:
		out, err = filter.Apply(s.current, rate, e.spec())
	case Bandpass:
		out, err = filter.Apply(s.current, rate, e.spec())
	case Bandstop:
		out, err = filter.Apply(s.current, rate, e.spec())
	case Reverb:
		out, err = reverb.Apply(s.current, rate, e.params(), s.rng)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownEffect, e)
	}

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, filter.ErrInvalidParameter), errors.Is(err, reverb.ErrInvalidParameter):
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	case errors.Is(err, filter.ErrUnknownKind):
		return nil, fmt.Errorf("%w: %w", ErrUnknownEffect, err)
	default:
		return nil, fmt.Errorf("session: apply %s: %w", e.Name(), err)
	}
}

// Reset discards all applied effects. It reports false when nothing has
// been loaded.
func (s *Session) Reset() bool {
	if !s.loaded {
		return false
	}
	s.current = core.Clone(s.original)
	s.history = nil
	s.logState("reset audio")
	return true
}

// logState writes a debug entry with the analysis of the working copy
// appended to fields. The analysis only runs when debug is enabled.
func (s *Session) logState(msg string, fields ...zap.Field) {
	ce := s.logger.Check(zapcore.DebugLevel, msg)
	if ce == nil {
		return
	}

	sum := analysis.Summarize(s.current, s.sampleRate)
	ce.Write(append(fields,
		zap.Int("frames", sum.Frames),
		zap.Duration("duration", sum.Duration),
		zap.Float64("peak", sum.Peak),
		zap.Float64("peak_dbfs", sum.PeakDBFS),
		zap.Float64("rms_dbfs", sum.RMSDBFS),
		zap.Float64("dominant_hz", sum.DominantHz),
		zap.Float64("centroid_hz", sum.CentroidHz),
	)...)
}

// Loaded reports whether a clip has been loaded.
func (s *Session) Loaded() bool { return s.loaded }

// SampleRate returns the loaded sample rate, or 0.
func (s *Session) SampleRate() int { return s.sampleRate }

// Samples returns a copy of the working copy.
func (s *Session) Samples() []float64 { return core.Clone(s.current) }

// Original returns a copy of the samples as loaded.
func (s *Session) Original() []float64 { return core.Clone(s.original) }

// History returns the effects applied since the last Load or Reset.
func (s *Session) History() []Effect { return slices.Clone(s.history) }

// Summary analyses the working copy.
func (s *Session) Summary() analysis.Summary {
	return analysis.Summarize(s.current, s.sampleRate)
}
