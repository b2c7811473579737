// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ik5/stepir/audio"
)

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, []int16{}); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	if buf.Len() != headerSize {
		t.Errorf("WAV file size = %d, want %d (header only)", buf.Len(), headerSize)
	}
}

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()

	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), uint32(buf.Len() - 8)},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 1},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 88200},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 2},
		{"bits per sample", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), uint32(len(samples) * 2)},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	for _, marker := range []struct {
		at   int
		want string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(data[marker.at : marker.at+4]); got != marker.want {
			t.Errorf("marker at %d = %q, want %q", marker.at, got, marker.want)
		}
	}
}

func TestWriteWAV16_ByteOrder(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, []int16{0x1234, -2}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	want := []byte{0x34, 0x12, 0xfe, 0xff}
	if !bytes.Equal(data[headerSize:], want) {
		t.Errorf("sample bytes = % x, want % x", data[headerSize:], want)
	}
}

func TestWriteWAV16_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -44100} {
		buf := new(bytes.Buffer)

		err := WriteWAV16(buf, rate, []int16{1})
		if !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("WriteWAV16(rate=%d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
		if buf.Len() != 0 {
			t.Errorf("WriteWAV16(rate=%d) wrote %d bytes, want 0", rate, buf.Len())
		}
	}
}

type failingWriter struct {
	okWrites int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.okWrites == 0 {
		return 0, errDiskFull
	}
	w.okWrites--
	return len(p), nil
}

func TestWriteWAV16_WriterErrors(t *testing.T) {
	t.Parallel()

	samples := make([]int16, chunkSize*2)

	for _, okWrites := range []int{0, 1, 2} {
		err := WriteWAV16(&failingWriter{okWrites: okWrites}, 8000, samples)
		if !errors.Is(err, errDiskFull) {
			t.Errorf("okWrites=%d: error = %v, want errDiskFull", okWrites, err)
		}
	}
}

// TestWriteWAV16_RoundTrip encodes arbitrary sequences and decodes them
// back through Decoder; samples and rate must survive unchanged.
func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rate  int
		count int
	}{
		{"single sample", 8000, 1},
		{"extremes", 16000, 0},
		{"spans chunks", 44100, chunkSize*2 + 17},
		{"high rate", 192000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := []int16{0, 100, -100, 32767, -32768, 12345, -6789}
			if tt.count > 0 {
				rng := rand.New(rand.NewPCG(7, uint64(tt.count)))
				original = make([]int16, tt.count)
				for i := range original {
					original[i] = int16(rng.IntN(65536) - 32768)
				}
			}

			buf := new(bytes.Buffer)
			if err := WriteWAV16(buf, tt.rate, original); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			got, rate, err := audio.ReadAllPCM16(src, 4096)
			if err != nil {
				t.Fatalf("ReadAllPCM16() error = %v", err)
			}

			if rate != tt.rate {
				t.Errorf("rate = %d, want %d", rate, tt.rate)
			}

			if !slices.Equal(got, original) {
				t.Errorf("round trip changed samples (len %d vs %d)", len(got), len(original))
			}
		})
	}
}

// BenchmarkWriteWAV16 benchmarks writing WAV files
func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100) // 1 second at 44.1kHz
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 44100, samples)
	}
}
