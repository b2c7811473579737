// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes mono 16-bit PCM RIFF/WAVE files.
//
// Decoding goes through github.com/go-audio/wav for the chunk walk; the
// package then narrows the result to the single profile step-response
// measurements use: integer PCM, one channel, 16 bits per sample.
//
// # Decoding
//
//	file, _ := os.Open("step.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, audio.ErrFormat) {
//	    // not mono 16-bit PCM
//	}
//	samples, rate, err := audio.ReadAllPCM16(source, 4096)
//
// Stereo files, 8/24/32-bit files and IEEE float files are rejected instead
// of being reinterpreted as 16-bit mono.
//
// # Encoding
//
//	err := wav.WriteWAV16(w, 48000, samples)
//
// WriteWAV16 emits the canonical 44-byte header followed by the samples in
// little-endian order, so w does not need to support seeking.
//
// # Errors
//
// Every decoding error below wraps audio.ErrFormat:
//   - ErrNotWavFile: missing RIFF/WAVE preamble
//   - ErrUnsupportedWavLayout: no usable fmt chunk
//   - ErrOnlyPCM16bitSupported: compressed, float or non 16-bit data
//   - ErrOnlyMonoSupported: more than one channel
//   - ErrUnsupportedWavChunks: no data chunk
package wav
