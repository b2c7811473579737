// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoding surface shared by the container
// packages.
//
//   - Source: a stream of float32 samples with a sample rate
//   - Decoder: builds a Source from an io.Reader
//   - Registry: maps container names and file extensions to decoders
//   - ReadAllPCM16: drains a mono Source into 16-bit PCM
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are normalized so that 16-bit PCM value v maps to v/32768.
// ReadAllPCM16 applies the exact inverse, so a decode then collect cycle
// returns the stored integers unchanged.
//
// # Registry
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{}, ".wav", ".wave")
//	reg.Register("aiff", aiff.Decoder{}, ".aif", ".aiff")
//
//	name, dec, err := reg.ForPath("measurement.WAV")
//
// Extensions are matched case-insensitively. An unknown extension yields an
// *UnknownContainerError.
//
// # Errors
//
// Two sentinel kinds classify every failure at this layer:
//   - ErrFormat: the data is not the accepted mono 16-bit PCM profile
//   - ErrIO: reading or writing the underlying stream failed
//
// Container packages wrap these so callers can test with errors.Is without
// knowing which decoder ran.
package audio
