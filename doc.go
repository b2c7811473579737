// SPDX-License-Identifier: EPL-2.0

// Package stepir derives impulse responses from measured step responses.
//
// A step response recorded from audio equipment is read from a mono 16-bit
// PCM file, differentiated, optionally band-limited to the audible range and
// normalized so its peak sits at full scale. The result is written as a
// mono 16-bit PCM WAV file at the input sample rate.
//
// # Quick Start
//
//	report, err := stepir.ConvertFile("step.wav", "ir.wav", stepir.Options{})
//	if err != nil {
//	    var se *stepir.StageError
//	    if errors.As(err, &se) {
//	        fmt.Println("failed while", se.Stage)
//	    }
//	}
//	fmt.Println(report.OutputSamples, report.SampleRate)
//
// # Supported Inputs
//
// Decoders are chosen by file extension through an audio.Registry:
//   - WAV (.wav, .wave) via formats/wav
//   - AIFF (.aif, .aiff) via formats/aiff
//
// Both accept only mono 16-bit PCM; anything else fails in the decode stage
// with an error wrapping audio.ErrFormat.
//
// # Output
//
// The impulse response is written to a temporary file in the destination
// directory and renamed into place once complete, so a failed run never
// leaves a truncated output and never replaces an existing one.
//
// # Stages and Errors
//
// ConvertFile reports failures as *StageError naming the stage (decode,
// transform or encode). The underlying kind can be tested with errors.Is:
//   - audio.ErrFormat: input is not the mono 16-bit PCM profile
//   - audio.ErrIO: filesystem failure
//   - transform.ErrEmptyInput: fewer than two samples
//
// A step response that never changes is not an error: the output is
// silence and Report.Degenerate is set.
//
// See package transform for the numeric pipeline itself and package
// signalgen for the matching excitation signal.
package stepir
