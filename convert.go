// SPDX-License-Identifier: EPL-2.0

package stepir

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pion/logging"

	"github.com/ik5/stepir/audio"
	"github.com/ik5/stepir/formats/aiff"
	"github.com/ik5/stepir/formats/wav"
	ilogging "github.com/ik5/stepir/internal/logging"
	"github.com/ik5/stepir/transform"
)

const (
	defaultBufferSize = 4096
	outputPerm        = 0o644
)

// Options configures ConvertFile. The zero value converts with the forward
// difference, no band limiting and full-scale output.
type Options struct {
	Transform transform.Options

	// Registry selects decoders by extension, then by file header. Nil means
	// DefaultRegistry().
	Registry *audio.Registry

	// BufferSize is the read chunk in samples. Zero means 4096.
	BufferSize int

	// Logger receives progress messages. Nil discards them.
	Logger logging.LeveledLogger
}

// Report describes a finished conversion.
type Report struct {
	Format        string
	SampleRate    int
	InputSamples  int
	OutputSamples int
	// Peak is the signed extreme of the derivative before normalization.
	Peak float64
	// Gain is the normalization factor, 0 for a degenerate signal.
	Gain       float64
	Degenerate bool
}

// DefaultRegistry returns a registry with the WAV and AIFF decoders.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{}, "wav", "wave")
	reg.Register("aiff", aiff.Decoder{}, "aif", "aiff")
	reg.RegisterMagic("wav", wav.Match)
	reg.RegisterMagic("aiff", aiff.Match)
	return reg
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	if o.BufferSize <= 0 {
		o.BufferSize = defaultBufferSize
	}
	if o.Logger == nil {
		o.Logger = ilogging.Discard()
	}
	return o
}

// ConvertFile reads the step response at in, derives the impulse response
// and writes it to out as mono 16-bit PCM WAV at the input sample rate.
// Errors are *StageError values.
func ConvertFile(in, out string, opts Options) (Report, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	format, step, rate, err := readStepResponse(in, opts)
	if err != nil {
		return Report{}, &StageError{Stage: StageDecode, Err: err}
	}
	log.Infof("decoded %s: %d samples at %d Hz (%s)", in, len(step), rate, format)

	res, err := transform.TransformWith(step, rate, opts.Transform)
	if err != nil {
		return Report{}, &StageError{Stage: StageTransform, Err: err}
	}

	if res.Degenerate {
		log.Warnf("%s: step response is constant, writing silence", in)
	} else {
		log.Debugf("peak %.1f, gain %.4f, method %v, postprocess %v",
			res.Peak, res.Gain, opts.Transform.Method, opts.Transform.Postprocess)
	}

	if err := WriteImpulseResponse(out, rate, res.Samples); err != nil {
		return Report{}, &StageError{Stage: StageEncode, Err: err}
	}
	log.Infof("wrote %s: %d samples at %d Hz", out, len(res.Samples), rate)

	return Report{
		Format:        format,
		SampleRate:    rate,
		InputSamples:  len(step),
		OutputSamples: len(res.Samples),
		Peak:          res.Peak,
		Gain:          res.Gain,
		Degenerate:    res.Degenerate,
	}, nil
}

// ReadStepResponse decodes the mono 16-bit PCM file at path, choosing the
// decoder by extension, or by the file header when the extension is missing
// or unknown.
func ReadStepResponse(path string, opts Options) ([]int16, int, error) {
	_, samples, rate, err := readStepResponse(path, opts.withDefaults())
	return samples, rate, err
}

func readStepResponse(path string, opts Options) (string, []int16, int, error) {
	format, dec, extErr := opts.Registry.ForPath(path)

	var unknown *audio.UnknownContainerError
	if extErr != nil && !errors.As(extErr, &unknown) {
		return "", nil, 0, extErr
	}

	f, err := os.Open(path)
	if err != nil {
		return "", nil, 0, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	if extErr != nil {
		format, dec, err = sniff(f, opts.Registry)
		if err != nil {
			return "", nil, 0, err
		}
		if dec == nil {
			return "", nil, 0, extErr
		}
	}

	src, err := dec.Decode(f)
	if err != nil {
		return "", nil, 0, err
	}
	defer src.Close()

	samples, rate, err := audio.ReadAllPCM16(src, opts.BufferSize)
	if err != nil {
		return "", nil, 0, err
	}

	return format, samples, rate, nil
}

// sniff matches the header of f against reg and rewinds f. A nil decoder
// with a nil error means no container matched.
func sniff(f io.ReadSeeker, reg *audio.Registry) (string, audio.Decoder, error) {
	hdr := make([]byte, audio.SniffLen)
	n, err := io.ReadFull(f, hdr)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	format, dec, ok := reg.Sniff(hdr[:n])
	if !ok {
		return "", nil, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return format, dec, nil
}

// WriteImpulseResponse writes samples to path as mono 16-bit PCM WAV. The
// data goes to a temporary file in the same directory which is renamed over
// path only after it has been fully written and synced.
func WriteImpulseResponse(path string, sampleRate int, samples []int16) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := wav.WriteWAV16(tmp, sampleRate, samples); err != nil {
		if errors.Is(err, wav.ErrInvalidSampleRate) {
			return err
		}
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	// CreateTemp uses 0600; match what os.Create would leave behind.
	if err := tmp.Chmod(outputPerm); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}
