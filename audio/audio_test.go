// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ik5/stepir/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewConstantSource(44100, 1, 100, 0), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first, "wav")
	registry.Register("wav", second)

	_, got, err := registry.ForPath("x.wav")
	if err != nil {
		t.Fatalf("ForPath() error = %v", err)
	}

	if got != second {
		t.Error("ForPath() did not return the most recent decoder for the format")
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	aiffDecoder := &mockDecoder{name: "aiff"}

	registry.Register("wav", wavDecoder, ".wav", "WAVE")
	registry.Register("aiff", aiffDecoder, "aif", ".aiff")

	tests := []struct {
		path       string
		wantFormat string
		want       Decoder
	}{
		{"step.wav", "wav", wavDecoder},
		{"/tmp/STEP.WAV", "wav", wavDecoder},
		{"dir.d/step.wave", "wav", wavDecoder},
		{"step.aif", "aiff", aiffDecoder},
		{"Step.AIFF", "aiff", aiffDecoder},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			format, d, err := registry.ForPath(tt.path)
			if err != nil {
				t.Fatalf("ForPath(%q) error = %v", tt.path, err)
			}

			if format != tt.wantFormat {
				t.Errorf("ForPath(%q) format = %q, want %q", tt.path, format, tt.wantFormat)
			}

			if d != tt.want {
				t.Errorf("ForPath(%q) returned the wrong decoder", tt.path)
			}
		})
	}
}

func TestRegistry_ForPathUnknown(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{}, "wav")

	tests := []struct {
		path    string
		wantExt string
	}{
		{"song.mp3", "mp3"},
		{"noext", ""},
		{"dir.wav/file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			_, _, err := registry.ForPath(tt.path)

			var unknown *UnknownContainerError
			if !errors.As(err, &unknown) {
				t.Fatalf("ForPath(%q) error = %v, want *UnknownContainerError", tt.path, err)
			}

			if unknown.Ext != tt.wantExt {
				t.Errorf("Ext = %q, want %q", unknown.Ext, tt.wantExt)
			}

			if !errors.Is(err, ErrFormat) {
				t.Errorf("ForPath(%q) error should wrap ErrFormat", tt.path)
			}
		})
	}
}

func TestRegistry_Sniff(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	registry.Register("wav", wavDecoder, "wav")
	registry.RegisterMagic("wav", func(hdr []byte) bool {
		return len(hdr) >= 4 && string(hdr[:4]) == "RIFF"
	})
	// matcher without a decoder behind it is ignored
	registry.RegisterMagic("flac", func(hdr []byte) bool {
		return len(hdr) >= 4 && string(hdr[:4]) == "fLaC"
	})

	tests := []struct {
		name       string
		hdr        string
		wantFormat string
		wantOK     bool
	}{
		{"riff", "RIFF\x00\x00\x00\x00WAVE", "wav", true},
		{"short", "RI", "", false},
		{"empty", "", "", false},
		{"unregistered decoder", "fLaC\x00\x00\x00\x22", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format, d, ok := registry.Sniff([]byte(tt.hdr))
			if ok != tt.wantOK {
				t.Fatalf("Sniff(%q) ok = %v, want %v", tt.hdr, ok, tt.wantOK)
			}

			if format != tt.wantFormat {
				t.Errorf("Sniff(%q) format = %q, want %q", tt.hdr, format, tt.wantFormat)
			}

			if ok && d != wavDecoder {
				t.Errorf("Sniff(%q) returned the wrong decoder", tt.hdr)
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("wav", &mockDecoder{}, "wav")
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("wav")
			_, _, _ = registry.ForPath("x.wav")
			_, _, _ = registry.Sniff([]byte("RIFF"))
		}()
	}
	wg.Wait()

	if _, ok := registry.Get("wav"); !ok {
		t.Error("wav decoder missing after concurrent registration")
	}
}
