// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/stepir/utils"
)

// ReadAllPCM16 drains a mono source and returns its samples as 16-bit PCM
// together with the source sample rate.
//
// The whole stream is held in memory; callers that process step responses
// need every sample resident before differentiation starts.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := audio.ReadAllPCM16(src, 4096)
func ReadAllPCM16(src Source, bufferSize int) ([]int16, int, error) {
	if src.Channels() != 1 {
		return nil, 0, fmt.Errorf("%w: %w (%d channels)", ErrFormat, ErrNotMono, src.Channels())
	}

	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}

	pcm16 := make([]int16, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			for i := range n {
				pcm16 = append(pcm16, utils.Float32ToPCM16(buf[i]))
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, src.SampleRate(), fmt.Errorf("%w: %w", ErrIO, err)
		}

		if n == 0 {
			// Sources that signal EOF lazily return 0, nil once drained.
			break
		}
	}

	return pcm16, src.SampleRate(), nil
}
