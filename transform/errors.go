// SPDX-License-Identifier: EPL-2.0

package transform

import "errors"

var (
	// ErrEmptyInput is returned when fewer than two samples are given, so
	// no difference can be taken.
	ErrEmptyInput = errors.New("empty input: at least 2 samples are required")

	// ErrDegenerateSignal is returned by Normalize when every sample is
	// zero. Transform turns it into a silent result.
	ErrDegenerateSignal = errors.New("degenerate signal: peak amplitude is zero")

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidBand       = errors.New("invalid pass band")
	ErrInvalidPeak       = errors.New("target peak must be positive")
	ErrUnknownMethod     = errors.New("unknown differentiation method")
)
