// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Band is a pass band in Hz. Both edges are inclusive.
type Band struct {
	Low  float64
	High float64
}

// AudibleBand is the default pass band used for post-processing.
var AudibleBand = Band{Low: 20, High: 20000}

// Validate reports whether b describes a usable pass band.
func (b Band) Validate() error {
	switch {
	case math.IsNaN(b.Low) || math.IsNaN(b.High):
		return fmt.Errorf("%w: NaN edge", ErrInvalidBand)
	case b.Low < 0:
		return fmt.Errorf("%w: low edge %g Hz is negative", ErrInvalidBand, b.Low)
	case b.High <= b.Low:
		return fmt.Errorf("%w: high edge %g Hz not above low edge %g Hz", ErrInvalidBand, b.High, b.Low)
	}
	return nil
}

// BandLimit removes spectral content outside band and returns a new slice
// of the same length as x.
//
// The signal is zero-padded to at least twice its length, transformed, and
// every bin whose absolute frequency lies outside [band.Low, band.High] is
// cleared before transforming back. The upper edge is clamped to the
// Nyquist frequency. When Nyquist lies below band.Low nothing can pass and
// x is returned unchanged.
func BandLimit(x []float64, sampleRate int, band Band) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSampleRate, sampleRate)
	}

	if err := band.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	copy(out, x)

	nyquist := float64(sampleRate) / 2
	if len(x) == 0 || nyquist < band.Low {
		return out, nil
	}

	high := min(band.High, nyquist)

	fftSize := nextPowerOf2(2 * len(x))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}

	clearOutside(spectrum, sampleRate, band.Low, high)

	// padded is reused as the time-domain destination.
	if err := plan.Inverse(padded, spectrum); err != nil {
		return nil, fmt.Errorf("transform: inverse FFT failed: %w", err)
	}

	for i := range out {
		out[i] = real(padded[i])
	}

	return out, nil
}

// clearOutside zeroes, in place, every bin whose absolute frequency lies
// outside [low, high]. Bins above len(spectrum)/2 mirror negative
// frequencies.
func clearOutside(spectrum []complex128, sampleRate int, low, high float64) {
	fftSize := len(spectrum)
	binWidth := float64(sampleRate) / float64(fftSize)

	for k := range spectrum {
		bin := k
		if k > fftSize/2 {
			bin = fftSize - k
		}

		f := float64(bin) * binWidth
		if f < low || f > high {
			spectrum[k] = 0
		}
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
