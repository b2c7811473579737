// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/stepir/audio"
)

var (
	ErrNotWavFile            = fmt.Errorf("%w: not a WAV file", audio.ErrFormat)
	ErrUnsupportedWavLayout  = fmt.Errorf("%w: unsupported WAV layout", audio.ErrFormat)
	ErrOnlyPCM16bitSupported = fmt.Errorf("%w: only PCM 16-bit supported", audio.ErrFormat)
	ErrOnlyMonoSupported     = fmt.Errorf("%w: only mono supported", audio.ErrFormat)
	ErrUnsupportedWavChunks  = fmt.Errorf("%w: unsupported WAV chunks", audio.ErrFormat)

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
