// SPDX-License-Identifier: EPL-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/stepir/transform"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, transform.AudibleBand, cfg.Band())
	assert.Equal(t, 32767, cfg.Peak)
	assert.Equal(t, "forward", cfg.Method)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 96000, cfg.GenSampleRate)
	assert.Equal(t, 96000, cfg.SegmentLength())
	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Zero(t, cfg.Loops)
	assert.False(t, cfg.Postprocess)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"inverted band", func(c *Config) { c.Postprocess, c.LowHz, c.HighHz = true, 1000, 10 }, ErrInvalidBand},
		{"negative low", func(c *Config) { c.Postprocess, c.LowHz = true, -1 }, transform.ErrInvalidBand},
		{"zero peak", func(c *Config) { c.Peak = 0 }, ErrInvalidPeak},
		{"peak too large", func(c *Config) { c.Peak = 40000 }, ErrInvalidPeak},
		{"bad method", func(c *Config) { c.Method = "backward" }, transform.ErrUnknownMethod},
		{"zero buffer", func(c *Config) { c.BufferSize = 0 }, ErrInvalidBufferSize},
		{"zero rate", func(c *Config) { c.GenSampleRate = 0 }, ErrInvalidSampleRate},
		{"zero segment", func(c *Config) { c.SegmentSeconds = 0 }, ErrInvalidSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := New()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidate_BandIgnoredWithoutPostprocess(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.LowHz, cfg.HighHz = 1000, 10
	require.NoError(t, cfg.Validate())

	opts, err := cfg.TransformOptions()
	require.NoError(t, err)
	assert.False(t, opts.Postprocess)

	cfg.Postprocess = true
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidBand)
}

func TestTransformOptions(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.Method = "central"
	cfg.Postprocess = true
	cfg.LowHz = 50
	cfg.HighHz = 15000
	cfg.Peak = 30000

	opts, err := cfg.TransformOptions()
	require.NoError(t, err)

	assert.Equal(t, transform.Options{
		Method:      transform.Central,
		Postprocess: true,
		Band:        transform.Band{Low: 50, High: 15000},
		Peak:        30000,
	}, opts)

	cfg.Method = "nope"
	_, err = cfg.TransformOptions()
	assert.Error(t, err)
}

func TestSegmentLength(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.GenSampleRate = 44100
	cfg.SegmentSeconds = 0.5
	assert.Equal(t, 22050, cfg.SegmentLength())
}
