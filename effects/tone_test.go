// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/stemfx/effects"
	"github.com/ik5/stemfx/internal/audiotest"
)

func TestHighPassFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		freq     float64
		minRatio float64
		maxRatio float64
	}{
		{name: "well below cutoff", freq: 30, minRatio: 0, maxRatio: 0.15},
		{name: "one octave below", freq: 50, minRatio: 0.15, maxRatio: 0.3},
		{name: "well above cutoff", freq: 5000, minRatio: 0.98, maxRatio: 1.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := audiotest.Sine(testRate, 2, testRate, tt.freq, 0.5)
			out, err := effects.HighPassFilter(in, 100)
			if err != nil {
				t.Fatalf("HighPassFilter() error = %v", err)
			}

			skip := testRate / 4
			for c := range 2 {
				r := audiotest.ChannelRMS(out, c, skip) / audiotest.ChannelRMS(in, c, skip)
				if r < tt.minRatio || r > tt.maxRatio {
					t.Errorf("channel %d: RMS ratio = %.4f, want in [%.2f, %.2f]", c, r, tt.minRatio, tt.maxRatio)
				}
			}
		})
	}
}

func TestHighPassFilter_InvalidCutoff(t *testing.T) {
	t.Parallel()

	in := audiotest.Silent(testRate, 1, 16)
	for _, cutoff := range []float64{0, -100, 22050, 40000, math.NaN()} {
		if _, err := effects.HighPassFilter(in, cutoff); !errors.Is(err, effects.ErrInvalidParameter) {
			t.Errorf("cutoff %v: error = %v, want ErrInvalidParameter", cutoff, err)
		}
	}
}

func TestApplyGain(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(8000, 2, 100, 0.25)

	tests := []struct {
		db   float64
		want float64
	}{
		{db: 0, want: 0.25},
		{db: 20 * math.Log10(2), want: 0.5},
		{db: -20 * math.Log10(2), want: 0.125},
		{db: 3, want: 0.25 * math.Pow(10, 3.0/20)},
	}

	for _, tt := range tests {
		out, err := effects.ApplyGain(in, tt.db)
		if err != nil {
			t.Fatalf("ApplyGain(%v) error = %v", tt.db, err)
		}
		for i, v := range out.Data {
			if math.Abs(float64(v)-tt.want) > 1e-6 {
				t.Fatalf("ApplyGain(%v): sample %d = %v, want %v", tt.db, i, v, tt.want)
			}
		}
	}

	if _, err := effects.ApplyGain(in, math.Inf(1)); !errors.Is(err, effects.ErrInvalidParameter) {
		t.Errorf("ApplyGain(+Inf) error = %v, want ErrInvalidParameter", err)
	}
}
