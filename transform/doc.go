// SPDX-License-Identifier: EPL-2.0

// Package transform turns a measured step response into an impulse
// response.
//
// The pipeline has three stages, each exported on its own:
//
//	Differentiate -> BandLimit (optional) -> Normalize
//
// Differentiate takes the discrete derivative. The forward difference
// yields N-1 samples; the central difference keeps N samples with zero end
// points. Differentiation amplifies noise in proportion to frequency, and
// that is left as-is unless post-processing is requested.
//
// BandLimit is an FFT brick-wall filter. The signal is zero-padded to twice
// its length (rounded up to a power of two), bins outside the pass band are
// cleared, and the inverse transform is truncated back to the original
// length, so the stage never changes the sample count. The upper edge is
// clamped to Nyquist; if Nyquist is below the lower edge the stage is a
// no-op.
//
// Normalize rescales so the largest magnitude becomes the target peak
// (32767 by default), rounding half away from zero. A silent signal is
// reported with ErrDegenerateSignal, which Transform converts into an
// all-zero result.
//
// Example:
//
//	ir, err := transform.Transform(step, 48000, true)
//	if errors.Is(err, transform.ErrEmptyInput) {
//	    // fewer than two samples
//	}
package transform
