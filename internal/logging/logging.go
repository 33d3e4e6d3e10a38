// Package logging builds the zap loggers used by the audiofx command.
package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encoder formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrUnknownFormat is returned by New for an encoder other than json or console.
var ErrUnknownFormat = errors.New("logging: unknown format")

type config struct {
	level       string
	format      string
	development bool
	output      zapcore.WriteSyncer
}

// Option configures New.
type Option func(*config)

// WithLevel sets the minimum level ("debug", "info", "warn", "error").
func WithLevel(level string) Option {
	return func(c *config) { c.level = level }
}

// WithFormat selects FormatJSON or FormatConsole.
func WithFormat(format string) Option {
	return func(c *config) { c.format = format }
}

// WithDevelopment enables zap's development mode (DPanic panics, stack
// traces on warnings).
func WithDevelopment() Option {
	return func(c *config) { c.development = true }
}

// WithOutput redirects log output. Defaults to stderr.
func WithOutput(ws zapcore.WriteSyncer) Option {
	return func(c *config) { c.output = ws }
}

// New builds a logger. The zero configuration logs info and above as JSON
// to stderr.
func New(opts ...Option) (*zap.Logger, error) {
	c := config{
		level:  "info",
		format: FormatJSON,
		output: zapcore.Lock(os.Stderr),
	}
	for _, opt := range opts {
		opt(&c)
	}

	level, err := zapcore.ParseLevel(strings.ToLower(c.level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(c.format) {
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.format)
	}

	zopts := []zap.Option{zap.AddCaller()}
	if c.development {
		zopts = append(zopts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	return zap.New(zapcore.NewCore(encoder, c.output, level), zopts...), nil
}

// Flush syncs logger, ignoring the errors terminals return for sync.
func Flush(logger *zap.Logger) error {
	if err := logger.Sync(); err != nil {
		msg := err.Error()
		if strings.Contains(msg, "inappropriate ioctl for device") || strings.Contains(msg, "invalid argument") {
			return nil
		}
		return err
	}
	return nil
}
