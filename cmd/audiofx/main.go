// Command audiofx applies filters and reverb to audio files.
//
// Usage:
//
//	audiofx apply IN -o OUT -e EFFECT [-e EFFECT ...]
//	audiofx info FILE [FILE ...]
//	audiofx effects
//
// Effects are written as name or name:key=value,key=value.
//
// Examples:
//
//	audiofx apply voice.wav -o voice-lp.wav -e lowpass:cutoff_freq=1000
//	audiofx apply voice.wav -o hall.wav -e highpass:cutoff_freq=80 -e reverb:decay_time=2,mix=0.4 --seed 7
//	audiofx info voice.wav hall.wav
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/audiofx/internal/logging"
	"go.uber.org/zap"
)

// Globals are the flags shared by all commands.
type Globals struct {
	LogLevel  string `help:"Minimum log level." enum:"debug,info,warn,error" default:"warn"`
	LogFormat string `help:"Log encoding." enum:"json,console" default:"console"`
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Apply   ApplyCmd   `cmd:"" help:"Apply a chain of effects and save the result as 16-bit mono WAV."`
	Info    InfoCmd    `cmd:"" help:"Print level and spectral statistics."`
	Effects EffectsCmd `cmd:"" help:"List available effects and their parameters."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("audiofx"),
		kong.Description("Filter and reverb processor for audio files."),
		kong.UsageOnError(),
		kong.DefaultEnvars("AUDIOFX"),
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(
		logging.WithLevel(cli.LogLevel),
		logging.WithFormat(cli.LogFormat),
	)
	if err != nil {
		return err
	}
	defer logging.Flush(logger) //nolint:errcheck

	return ctx.Run(logger)
}

func withCmd(l *zap.Logger, cmd string) *zap.Logger {
	return l.With(zap.String("cmd", cmd))
}
