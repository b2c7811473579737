// SPDX-License-Identifier: EPL-2.0

package signalgen

import (
	"encoding/binary"
	"io"
)

// ChunkFrames returns the playback chunk size for sampleRate: 20 ms.
func ChunkFrames(sampleRate int) int {
	return max(sampleRate/50, 1)
}

// LoopReader serves samples as signed 16-bit little-endian bytes,
// repeating them loops times. loops <= 0 repeats forever. Each Read returns
// at most chunkFrames samples.
type LoopReader struct {
	samples     []int16
	loops       int
	chunkFrames int

	pos    int
	played int
}

// NewLoopReader prepares a reader suitable for a mono S16LE output stream.
func NewLoopReader(samples []int16, loops, chunkFrames int) *LoopReader {
	return &LoopReader{
		samples:     samples,
		loops:       loops,
		chunkFrames: max(chunkFrames, 1),
	}
}

// Loops returns how many full passes have been served.
func (r *LoopReader) Loops() int { return r.played }

func (r *LoopReader) Read(p []byte) (int, error) {
	if len(r.samples) == 0 || (r.loops > 0 && r.played >= r.loops) {
		return 0, io.EOF
	}

	frames := min(len(p)/2, r.chunkFrames, len(r.samples)-r.pos)
	if frames == 0 {
		return 0, nil
	}

	for i := range frames {
		binary.LittleEndian.PutUint16(p[2*i:], uint16(r.samples[r.pos+i]))
	}

	r.pos += frames
	if r.pos == len(r.samples) {
		r.pos = 0
		r.played++
	}

	return 2 * frames, nil
}
