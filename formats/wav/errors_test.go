// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"

	"github.com/ik5/stepir/audio"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "format error: not a WAV file"},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "format error: unsupported WAV layout"},
		{"ErrOnlyPCM16bitSupported", ErrOnlyPCM16bitSupported, "format error: only PCM 16-bit supported"},
		{"ErrOnlyMonoSupported", ErrOnlyMonoSupported, "format error: only mono supported"},
		{"ErrUnsupportedWavChunks", ErrUnsupportedWavChunks, "format error: unsupported WAV chunks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_AreFormatErrors(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrOnlyPCM16bitSupported,
		ErrOnlyMonoSupported,
		ErrUnsupportedWavChunks,
	} {
		if !errors.Is(err, audio.ErrFormat) {
			t.Errorf("errors.Is(%v, audio.ErrFormat) = false, want true", err)
		}
		if errors.Is(err, audio.ErrIO) {
			t.Errorf("errors.Is(%v, audio.ErrIO) = true, want false", err)
		}
	}

	if errors.Is(ErrInvalidSampleRate, audio.ErrFormat) {
		t.Error("ErrInvalidSampleRate should not be a format error")
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrOnlyPCM16bitSupported,
		ErrOnlyMonoSupported,
		ErrUnsupportedWavChunks,
		ErrInvalidSampleRate,
	}

	for i := range allErrors {
		for j := range allErrors {
			if i != j && errors.Is(allErrors[i], allErrors[j]) {
				t.Errorf("errors[%d] matches errors[%d]", i, j)
			}
		}
	}
}
