// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767, truncating
// toward zero.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 maps a PCM sample onto [-1, 1) using the 32768 divisor
// decoders use.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToPCM16 is the exact inverse of Int16ToFloat32. Values outside the
// representable range saturate.
func Float32ToPCM16(x float32) int16 {
	return RoundToInt16(float64(x) * 32768.0)
}

// RoundToInt16 rounds half away from zero and clamps to [-32768, 32767].
func RoundToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	r := math.Round(x)
	if r > math.MaxInt16 {
		return math.MaxInt16
	}
	if r < math.MinInt16 {
		return math.MinInt16
	}

	return int16(r)
}
