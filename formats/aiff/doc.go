// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes mono 16-bit PCM AIFF files.
//
// This package uses github.com/go-audio/aiff to walk the FORM container and
// then applies the same profile as the wav package: one channel, 16 bits per
// sample, positive sample rate. AIFF stores samples big-endian; the decoder
// handles that transparently.
//
//	file, _ := os.Open("step.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, audio.ErrFormat) for anything outside the profile
//	}
//	samples, rate, err := audio.ReadAllPCM16(source, 4096)
//
// # Errors
//
// All decoding errors wrap audio.ErrFormat:
//   - ErrNotAiffFile: the input is not a FORM/AIFF container
//   - ErrOnlyPCM16bitSupported: sample size other than 16 bits
//   - ErrOnlyMonoSupported: more than one channel
//   - ErrUnsupportedAiffLayout: missing or unusable COMM data
//
// AIFF writing is not supported. Impulse responses are always written as WAV.
package aiff
