// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/stepir/transform"
)

var (
	ErrInvalidBand       = errors.New("invalid band")
	ErrInvalidPeak       = errors.New("peak must be in 1..32767")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidSegment    = errors.New("segment length must be positive")
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
)

// Config holds all the configuration parameters for both tools.
type Config struct {
	// sr-to-ir
	LowHz       float64
	HighHz      float64
	Peak        int
	Method      string
	Postprocess bool
	BufferSize  int
	LogLevel    string

	// signal-gen
	GenSampleRate  int
	SegmentSeconds float64
	Seed           int64
	Loops          int
}

// New returns a new Config with default values.
func New() *Config {
	return &Config{
		LowHz:      20,
		HighHz:     20_000,
		Peak:       math.MaxInt16,
		Method:     transform.Forward.String(),
		BufferSize: 4096,
		LogLevel:   "warn",

		GenSampleRate:  96_000,
		SegmentSeconds: 1,
		Seed:           1337,
		Loops:          0, // forever
	}
}

// Validate reports the first field that cannot be used. The pass band is
// only checked when post-processing is enabled.
func (c *Config) Validate() error {
	if c.Postprocess {
		if err := c.Band().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBand, err)
		}
	}

	if c.Peak <= 0 || c.Peak > math.MaxInt16 {
		return fmt.Errorf("%w (got %d)", ErrInvalidPeak, c.Peak)
	}

	if _, err := transform.ParseMethod(c.Method); err != nil {
		return err
	}

	if c.BufferSize <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidBufferSize, c.BufferSize)
	}

	if c.GenSampleRate <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidSampleRate, c.GenSampleRate)
	}

	if c.SegmentLength() <= 0 {
		return fmt.Errorf("%w (%g s at %d Hz)", ErrInvalidSegment, c.SegmentSeconds, c.GenSampleRate)
	}

	return nil
}

// Band returns the configured post-processing pass band.
func (c *Config) Band() transform.Band {
	return transform.Band{Low: c.LowHz, High: c.HighHz}
}

// SegmentLength is the number of samples per excitation segment.
func (c *Config) SegmentLength() int {
	return int(math.Round(c.SegmentSeconds * float64(c.GenSampleRate)))
}

// TransformOptions converts the configuration into transform.Options.
func (c *Config) TransformOptions() (transform.Options, error) {
	if err := c.Validate(); err != nil {
		return transform.Options{}, err
	}

	method, _ := transform.ParseMethod(c.Method)

	return transform.Options{
		Method:      method,
		Postprocess: c.Postprocess,
		Band:        c.Band(),
		Peak:        int16(c.Peak),
	}, nil
}
