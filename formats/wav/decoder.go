// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/stepir/audio"
	"github.com/ik5/stepir/utils"
)

const (
	wavFormatPCM   = 1
	defaultBufSize = 4096
)

// pcmReader is the part of gowav.Decoder the source needs, split out so
// tests can feed samples without building a container.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	eof        bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return defaultBufSize
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading wav samples: %w", err)
	}

	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(s.intBuf.Data[i]))
	}

	// go-audio reports the end of the data chunk as a short or empty read.
	if err == io.EOF || n < len(dst) {
		s.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads mono 16-bit PCM RIFF/WAVE streams. Anything else is
// rejected with an error wrapping audio.ErrFormat.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading wav data: %w", audio.ErrIO, err)
		}
		rs = bytes.NewReader(data)
	}

	if err := checkRIFFHeader(rs); err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}
		return nil, ErrUnsupportedWavLayout
	}

	if dec.WavAudioFormat != wavFormatPCM || dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w (format %d, %d bits)", ErrOnlyPCM16bitSupported, dec.WavAudioFormat, dec.BitDepth)
	}

	if dec.NumChans != 1 {
		return nil, fmt.Errorf("%w (%d channels)", ErrOnlyMonoSupported, dec.NumChans)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

// checkRIFFHeader verifies the 12-byte RIFF/WAVE preamble and rewinds.
func checkRIFFHeader(rs io.ReadSeeker) error {
	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if !Match(header) {
		return ErrNotWavFile
	}

	if _, err := rs.Seek(-int64(len(header)), io.SeekCurrent); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}

// Match reports whether hdr starts with a RIFF/WAVE preamble. It needs at
// least the first 12 bytes of the stream.
func Match(hdr []byte) bool {
	return len(hdr) >= 12 && bytes.Equal(hdr[:4], []byte("RIFF")) && bytes.Equal(hdr[8:12], []byte("WAVE"))
}
