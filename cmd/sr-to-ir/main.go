// SPDX-License-Identifier: EPL-2.0

// Command sr-to-ir derives an impulse response from a recorded step
// response.
//
// Usage:
//
//	sr-to-ir [flags] <input> <output> [postprocess]
//
// The input is a mono 16-bit PCM WAV or AIFF file. The output is always a
// mono 16-bit PCM WAV file at the input sample rate. Passing the literal
// word "postprocess" as the third argument (or -postprocess) band-limits the
// result to the audible range, trading a little accuracy for less noise.
//
// Examples:
//
//	sr-to-ir step.wav ir.wav
//	sr-to-ir step.wav ir.wav postprocess
//	sr-to-ir -v -method central -low 10 -high 22000 step.aiff ir.wav postprocess
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
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	postprocessArg = "postprocess"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg := config.New()

	fs := flag.NewFlagSet("sr-to-ir", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&cfg.Postprocess, "postprocess", cfg.Postprocess, "band-limit the impulse response to the pass band")
	fs.StringVar(&cfg.Method, "method", cfg.Method, "differentiation method: forward or central")
	fs.Float64Var(&cfg.LowHz, "low", cfg.LowHz, "pass band low edge in Hz (with postprocess)")
	fs.Float64Var(&cfg.HighHz, "high", cfg.HighHz, "pass band high edge in Hz (with postprocess)")
	fs.IntVar(&cfg.Peak, "peak", cfg.Peak, "output peak magnitude (1..32767)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: error, warn, info, debug, trace")
	verbose := fs.Bool("v", false, "verbose output (same as -log-level info)")
	debug := fs.Bool("debug", false, "debug output (same as -log-level debug)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sr-to-ir [flags] <input> <output> [%s]\n\n", postprocessArg)
		fmt.Fprintf(stderr, "Derives an impulse response from a mono 16-bit PCM step response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	rest := fs.Args()
	switch {
	case len(rest) == 3 && rest[2] == postprocessArg:
		cfg.Postprocess = true
	case len(rest) == 3:
		fmt.Fprintf(stderr, "sr-to-ir: unexpected argument %q (want %q)\n", rest[2], postprocessArg)
		fs.Usage()
		return exitUsage
	case len(rest) != 2:
		fs.Usage()
		return exitUsage
	}

	level, err := ilogging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "sr-to-ir: %v\n", err)
		return exitUsage
	}
	if *verbose {
		level = max(level, logging.LogLevelInfo)
	}
	if *debug {
		level = max(level, logging.LogLevelDebug)
	}

	opts, err := cfg.TransformOptions()
	if err != nil {
		fmt.Fprintf(stderr, "sr-to-ir: %v\n", err)
		return exitUsage
	}

	log := ilogging.NewLogger(stderr, level, "sr-to-ir")

	report, err := stepir.ConvertFile(rest[0], rest[1], stepir.Options{
		Transform:  opts,
		BufferSize: cfg.BufferSize,
		Logger:     log,
	})
	if err != nil {
		fmt.Fprintf(stderr, "sr-to-ir: %v\n", err)
		return exitFailure
	}

	log.Infof("%d -> %d samples at %d Hz, gain %.3f", report.InputSamples, report.OutputSamples, report.SampleRate, report.Gain)

	return exitOK
}
