// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ik5/stepir/utils"
)

// Peak returns the sample of x with the largest magnitude, sign included.
// The first such sample wins on ties. An empty slice yields 0.
func Peak(x []float64) float64 {
	var peak float64
	for _, v := range x {
		if math.Abs(v) > math.Abs(peak) {
			peak = v
		}
	}
	return peak
}

// Normalize scales x linearly so its largest magnitude becomes target,
// then rounds half away from zero and clamps to the int16 range.
//
// If every sample is zero, Normalize returns a zero-filled slice of the
// same length together with ErrDegenerateSignal.
func Normalize(x []float64, target int16) ([]int16, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidPeak, target)
	}

	out := make([]int16, len(x))

	peak := vecmath.MaxAbs(x)
	if peak == 0 {
		return out, ErrDegenerateSignal
	}

	scaled := make([]float64, len(x))
	vecmath.ScaleBlock(scaled, x, float64(target)/peak)

	for i, v := range scaled {
		out[i] = utils.RoundToInt16(v)
	}

	return out, nil
}
