// SPDX-License-Identifier: EPL-2.0

// Command signal-gen emits the measurement excitation used to record step
// and frequency responses of audio equipment.
//
// Usage:
//
//	signal-gen [flags]
//
// By default the sequence is played on the default output device in an
// endless loop. With -o the sequence is written to a mono 16-bit PCM WAV file
// instead; add -play to do both.
//
// Examples:
//
//	signal-gen
//	signal-gen -loops 3 -rate 48000
//	signal-gen -o excitation.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pion/logging"

	"github.com/ik5/stepir"
	"github.com/ik5/stepir/internal/config"
	ilogging "github.com/ik5/stepir/internal/logging"
	"github.com/ik5/stepir/signalgen"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// playFunc sends pcm to an output device loops times (0 = forever).
type playFunc func(pcm []int16, sampleRate, loops int, log logging.LeveledLogger) error

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, play))
}

func run(args []string, stderr io.Writer, player playFunc) int {
	cfg := config.New()

	fs := flag.NewFlagSet("signal-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&cfg.GenSampleRate, "rate", cfg.GenSampleRate, "sample rate in Hz")
	fs.Float64Var(&cfg.SegmentSeconds, "seconds", cfg.SegmentSeconds, "length of each segment in seconds")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise generator seed")
	fs.IntVar(&cfg.Loops, "loops", cfg.Loops, "number of times to play the sequence, 0 = forever")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: error, warn, info, debug, trace")
	out := fs.String("o", "", "write the sequence to this WAV file")
	forcePlay := fs.Bool("play", false, "play even when -o is given")
	verbose := fs.Bool("v", false, "verbose output (same as -log-level info)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: signal-gen [flags]\n\n")
		fmt.Fprintf(stderr, "Plays or writes the step/noise measurement excitation.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return exitUsage
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "signal-gen: %v\n", err)
		return exitUsage
	}

	if cfg.Loops < 0 {
		fmt.Fprintf(stderr, "signal-gen: loops must not be negative (got %d)\n", cfg.Loops)
		return exitUsage
	}

	level, err := ilogging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "signal-gen: %v\n", err)
		return exitUsage
	}
	if *verbose {
		level = max(level, logging.LogLevelInfo)
	}
	log := ilogging.NewLogger(stderr, level, "signal-gen")

	seq, err := signalgen.Sequence(cfg.SegmentLength(), signalgen.NewLCG(cfg.Seed))
	if err != nil {
		fmt.Fprintf(stderr, "signal-gen: %v\n", err)
		return exitFailure
	}
	pcm := signalgen.ToPCM16(seq)
	log.Infof("generated %d samples at %d Hz (%d segments of %d)",
		len(pcm), cfg.GenSampleRate, len(signalgen.Layout), cfg.SegmentLength())

	if *out != "" {
		if err := stepir.WriteImpulseResponse(*out, cfg.GenSampleRate, pcm); err != nil {
			fmt.Fprintf(stderr, "signal-gen: encode failed: %v\n", err)
			return exitFailure
		}
		log.Infof("wrote %s", *out)
	}

	if *out == "" || *forcePlay {
		if err := player(pcm, cfg.GenSampleRate, cfg.Loops, log); err != nil {
			fmt.Fprintf(stderr, "signal-gen: playback failed: %v\n", err)
			return exitFailure
		}
	}

	return exitOK
}
