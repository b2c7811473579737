// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"
	"strings"
)

// Method selects the finite-difference scheme used to derive the impulse
// response.
type Method int

const (
	// Forward computes d[i] = x[i+1] - x[i] and yields N-1 samples.
	Forward Method = iota
	// Central computes d[i] = x[i+1] - x[i-1] with zero end points and
	// yields N samples.
	Central
)

func (m Method) String() string {
	switch m {
	case Forward:
		return "forward"
	case Central:
		return "central"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "forward" or "central" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "":
		return Forward, nil
	case "central":
		return Central, nil
	default:
		return Forward, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Differentiate returns the discrete derivative of step. Values are
// returned unscaled; a difference of two int16 samples can reach ±65535.
func Differentiate(step []int16, m Method) ([]float64, error) {
	if len(step) < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrEmptyInput, len(step))
	}

	switch m {
	case Forward:
		out := make([]float64, len(step)-1)
		for i := range out {
			out[i] = float64(step[i+1]) - float64(step[i])
		}
		return out, nil

	case Central:
		out := make([]float64, len(step))
		for i := 1; i < len(step)-1; i++ {
			out[i] = float64(step[i+1]) - float64(step[i-1])
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}
