// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count. Decoders in this module only hand out mono sources.
	Channels() int
	// ReadSamples fills dst with float32 samples in [-1,1).
	// Returns number of float32 values written. When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by container key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Decoder
	exts   map[string]string
	magic  []magic

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		exts:   make(map[string]string),
		mtx:    &sync.Mutex{},
	}
}

// Matcher reports whether hdr, the first SniffLen bytes of a stream (fewer
// for short files), belongs to a container.
type Matcher func(hdr []byte) bool

// SniffLen is how many leading bytes Sniff inspects.
const SniffLen = 12

type magic struct {
	format string
	match  Matcher
}

// Register binds d to format and to every file extension given (with or
// without the leading dot, case-insensitive).
func (r *Registry) Register(format string, d Decoder, exts ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
	for _, ext := range exts {
		r.exts[normalizeExt(ext)] = format
	}
}

// RegisterMagic lets Sniff recognize format by content. Matchers are tried
// in registration order.
func (r *Registry) RegisterMagic(format string, m Matcher) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.magic = append(r.magic, magic{format: format, match: m})
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// ForPath picks the decoder registered for the extension of path.
func (r *Registry) ForPath(path string) (string, Decoder, error) {
	ext := normalizeExt(filepath.Ext(path))

	r.mtx.Lock()
	defer r.mtx.Unlock()

	format, ok := r.exts[ext]
	if !ok {
		return "", nil, &UnknownContainerError{Ext: ext}
	}

	d, ok := r.codecs[format]
	if !ok {
		return "", nil, &UnknownContainerError{Ext: ext}
	}

	return format, d, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Sniff picks a decoder from the leading bytes of a stream.
func (r *Registry) Sniff(hdr []byte) (string, Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, m := range r.magic {
		if !m.match(hdr) {
			continue
		}
		if d, ok := r.codecs[m.format]; ok {
			return m.format, d, true
		}
	}

	return "", nil, false
}
