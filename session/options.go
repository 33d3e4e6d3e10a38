package session

import (
	"math/rand"

	"github.com/cwbudde/audiofx/codec"
	"github.com/cwbudde/audiofx/dsp/effects/reverb"
	"go.uber.org/zap"
)

// Option configures a Session.
type Option func(*Session)

// WithCodec replaces the default WAV codec.
func WithCodec(c codec.Codec) Option {
	return func(s *Session) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed makes reverb impulse responses reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = reverb.NewRand(seed)
	}
}

// WithRand supplies the random source used for reverb impulse responses.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}
