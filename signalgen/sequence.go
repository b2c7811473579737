// SPDX-License-Identifier: EPL-2.0

package signalgen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ik5/stepir/utils"
)

var ErrInvalidSegment = errors.New("segment length must be positive")

// Segment names one block of the excitation sequence.
type Segment int

const (
	Silence Segment = iota
	Noise
	PlusOne
	MinusOne
)

func (s Segment) String() string {
	switch s {
	case Silence:
		return "silence"
	case Noise:
		return "noise"
	case PlusOne:
		return "+1"
	case MinusOne:
		return "-1"
	default:
		return fmt.Sprintf("Segment(%d)", int(s))
	}
}

// Layout is the order of segments in the measurement excitation: a noise
// burst for frequency response, then isolated positive and negative steps,
// then a full-swing step.
var Layout = []Segment{
	Silence, Noise, Silence, PlusOne, Silence, MinusOne, Silence, PlusOne, MinusOne, Silence,
}

// Sequence builds the excitation with every segment segmentLen samples
// long. Values are in [-1, 1]; noise is drawn from g and stays in [0, 1].
func Sequence(segmentLen int, g *LCG) ([]float64, error) {
	if segmentLen <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSegment, segmentLen)
	}

	out := make([]float64, 0, segmentLen*len(Layout))
	for _, seg := range Layout {
		switch seg {
		case Silence:
			out = append(out, make([]float64, segmentLen)...)
		case Noise:
			out = append(out, g.DrawUniform(segmentLen)...)
		case PlusOne:
			out = append(out, slices.Repeat([]float64{1}, segmentLen)...)
		case MinusOne:
			out = append(out, slices.Repeat([]float64{-1}, segmentLen)...)
		}
	}

	return out, nil
}

// ToPCM16 clips x to [-1, 1] and scales by 32767, truncating toward zero.
func ToPCM16(x []float64) []int16 {
	out := make([]int16, len(x))
	for i, v := range x {
		out[i] = utils.Float32ToInt16(float32(v))
	}
	return out
}
