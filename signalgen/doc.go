// SPDX-License-Identifier: EPL-2.0

// Package signalgen produces the excitation used to measure step and
// frequency responses of audio equipment.
//
// The sequence is a series of equally long segments:
//
//	silence, noise, silence, +1, silence, -1, silence, +1, -1, silence
//
// Noise comes from a seeded linear congruential generator (multiplier 7^5,
// modulus 2^31-1) so two runs with the same seed are sample-identical. The
// recorded response to the +1 segments is the step response that package
// transform turns into an impulse response.
//
//	g := signalgen.NewLCG(signalgen.DefaultSeed)
//	seq, _ := signalgen.Sequence(96000, g)
//	pcm := signalgen.ToPCM16(seq)
//	r := signalgen.NewLoopReader(pcm, 0, signalgen.ChunkFrames(96000))
package signalgen
