// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"errors"
	"fmt"
	"math"
)

// Options tunes TransformWith. The zero value matches Transform without
// post-processing.
type Options struct {
	Method Method
	// Postprocess enables BandLimit between differentiation and
	// normalization.
	Postprocess bool
	// Band is the pass band for Postprocess. The zero Band means AudibleBand.
	Band Band
	// Peak is the output magnitude of the largest sample. Zero means
	// math.MaxInt16.
	Peak int16
}

func (o Options) withDefaults() Options {
	if o.Band == (Band{}) {
		o.Band = AudibleBand
	}
	if o.Peak == 0 {
		o.Peak = math.MaxInt16
	}
	return o
}

// Result carries the impulse response and the figures needed to report on
// how it was produced.
type Result struct {
	Samples []int16
	// Peak is the signed extreme of the derivative before normalization.
	Peak float64
	// Gain is the linear factor applied during normalization, 0 when the
	// signal was silent.
	Gain       float64
	Degenerate bool
}

// Transform derives an impulse response from a step response by forward
// difference, optionally band-limits it to 20 Hz - 20 kHz, and normalizes
// the peak to 32767. The result has len(step)-1 samples.
//
// A step response that never changes produces silence, not an error.
func Transform(step []int16, sampleRate int, postprocess bool) ([]int16, error) {
	res, err := TransformWith(step, sampleRate, Options{Postprocess: postprocess})
	if err != nil {
		return nil, err
	}
	return res.Samples, nil
}

// TransformWith is Transform with every stage configurable.
func TransformWith(step []int16, sampleRate int, opts Options) (Result, error) {
	opts = opts.withDefaults()

	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("%w (got %d)", ErrInvalidSampleRate, sampleRate)
	}

	if opts.Peak < 0 {
		return Result{}, fmt.Errorf("%w (got %d)", ErrInvalidPeak, opts.Peak)
	}

	if opts.Postprocess {
		if err := opts.Band.Validate(); err != nil {
			return Result{}, err
		}
	}

	impulse, err := Differentiate(step, opts.Method)
	if err != nil {
		return Result{}, err
	}

	if opts.Postprocess {
		impulse, err = BandLimit(impulse, sampleRate, opts.Band)
		if err != nil {
			return Result{}, err
		}
	}

	peak := Peak(impulse)
	samples, err := Normalize(impulse, opts.Peak)
	switch {
	case errors.Is(err, ErrDegenerateSignal):
		return Result{Samples: samples, Degenerate: true}, nil
	case err != nil:
		return Result{}, err
	}

	return Result{
		Samples: samples,
		Peak:    peak,
		Gain:    float64(opts.Peak) / math.Abs(peak),
	}, nil
}
