// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/effects"
	"github.com/ik5/stemfx/internal/audiotest"
	"github.com/ik5/stemfx/utils"
)

func TestCompress_SteadyStateCurve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     float32
		threshold float64
		ratio     float64
	}{
		{name: "-6 dB into -20/4:1", level: 0.5, threshold: -20, ratio: 4},
		{name: "0 dB into -10/2:1", level: 1, threshold: -10, ratio: 2},
		{name: "-6 dB into -12/10:1", level: 0.5, threshold: -12, ratio: 10},
		{name: "ratio 1 is transparent", level: 0.5, threshold: -20, ratio: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := audiotest.Constant(testRate, 2, testRate/2, tt.level)
			out, err := effects.Compress(in, tt.threshold, tt.ratio)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}

			inDB := utils.GainToDB(float64(tt.level))
			wantDB := tt.threshold + (inDB-tt.threshold)/tt.ratio
			last := out.Data[len(out.Data)-1]
			gotDB := utils.GainToDB(float64(last))
			if math.Abs(gotDB-wantDB) > 0.05 {
				t.Errorf("steady-state level = %.3f dB, want %.3f dB", gotDB, wantDB)
			}
		})
	}
}

func TestCompress_BelowThresholdUnchanged(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(testRate, 2, 4096, 440, 0.05) // about -26 dBFS peak
	out, err := effects.Compress(in, -20, 4)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	for i := range in.Data {
		if out.Data[i] != in.Data[i] {
			t.Fatalf("sample %d changed: %v -> %v", i, in.Data[i], out.Data[i])
		}
	}
}

func TestCompress_InvalidRatio(t *testing.T) {
	t.Parallel()

	in := audiotest.Silent(testRate, 2, 16)
	for _, ratio := range []float64{0, -4, 0.5, math.NaN(), math.Inf(1)} {
		_, err := effects.Compress(in, -20, ratio)
		if !errors.Is(err, effects.ErrConfiguration) {
			t.Errorf("ratio %v: error = %v, want ErrConfiguration", ratio, err)
		}
	}
}

func TestLimit_Ceiling(t *testing.T) {
	t.Parallel()

	for _, threshold := range []float64{-0.1, -6, -20, 0, 3} {
		in := audiotest.Noise(testRate, 2, testRate/2, 4)
		out, err := effects.Limit(in, threshold)
		if err != nil {
			t.Fatalf("Limit(%v) error = %v", threshold, err)
		}

		ceiling := utils.DBToGain(threshold)
		for i, v := range out.Data {
			if math.Abs(float64(v)) > ceiling {
				t.Fatalf("threshold %v dB: sample %d = %v exceeds %v", threshold, i, v, ceiling)
			}
		}
	}
}

func TestLimit_QuietSignalUnchanged(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(testRate, 1, 4096, 440, 0.5)
	out, err := effects.Limit(in, -0.1)
	if err != nil {
		t.Fatalf("Limit() error = %v", err)
	}
	for i := range in.Data {
		if out.Data[i] != in.Data[i] {
			t.Fatalf("sample %d changed: %v -> %v", i, in.Data[i], out.Data[i])
		}
	}
}

func TestLimit_NonFiniteInput(t *testing.T) {
	t.Parallel()

	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	in, err := audio.FromSamples([]float32{0.5, 0.5, nan, 0.1, 0.3, -0.3, inf, -inf, 0.2, -0.2}, 2, testRate)
	if err != nil {
		t.Fatal(err)
	}

	out, err := effects.Limit(in, -0.1)
	if err != nil {
		t.Fatalf("Limit() error = %v", err)
	}

	ceiling := utils.DBToGain(-0.1)
	for i, v := range out.Data {
		if math.IsNaN(float64(v)) || math.Abs(float64(v)) > ceiling {
			t.Fatalf("sample %d = %v, want finite and within %v", i, v, ceiling)
		}
	}
	if out.Data[2] != 0 {
		t.Errorf("NaN sample became %v, want 0", out.Data[2])
	}
	// A NaN frame must not mute what follows.
	if out.Data[4] != 0.3 || out.Data[5] != -0.3 {
		t.Errorf("frame after NaN = %v, want [0.3 -0.3]", out.Data[4:6])
	}
	if out.Data[6] <= 0 || out.Data[7] >= 0 {
		t.Errorf("infinite frame = %v, want [+ceiling -ceiling]", out.Data[6:8])
	}
	if out.Data[8] == 0 || out.Data[9] == 0 {
		t.Errorf("frame after +Inf was muted: %v", out.Data[8:10])
	}
}

func TestApply_HugeGainThenLimiter(t *testing.T) {
	t.Parallel()

	in, err := audio.FromSamples([]float32{0.5, 0.5, 0, 0, 0.01, 0.01, 0.2, -0.2}, 2, testRate)
	if err != nil {
		t.Fatal(err)
	}

	out, err := effects.Apply(in, effects.Chain{effects.Gain{GainDB: 800}, effects.Limiter{ThresholdDB: -0.1}})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	ceiling := utils.DBToGain(-0.1)
	for i, v := range out.Data {
		if math.IsNaN(float64(v)) || math.Abs(float64(v)) > ceiling {
			t.Fatalf("sample %d = %v, want finite and within %v", i, v, ceiling)
		}
		if (in.Data[i] > 0) != (v > 0) || (in.Data[i] < 0) != (v < 0) {
			t.Errorf("sample %d = %v, want the sign of %v", i, v, in.Data[i])
		}
	}
}

func TestApplyGain_SaturatesToFinite(t *testing.T) {
	t.Parallel()

	out, err := effects.ApplyGain(audiotest.Constant(testRate, 2, 4, -0.5), 800)
	if err != nil {
		t.Fatalf("ApplyGain() error = %v", err)
	}
	for i, v := range out.Data {
		if v != -math.MaxFloat32 {
			t.Errorf("sample %d = %v, want -MaxFloat32", i, v)
		}
	}
}

func TestLimit_InvalidThreshold(t *testing.T) {
	t.Parallel()

	_, err := effects.Limit(audiotest.Silent(testRate, 1, 16), math.NaN())
	if !errors.Is(err, effects.ErrInvalidParameter) {
		t.Errorf("Limit(NaN) error = %v, want ErrInvalidParameter", err)
	}
}

func BenchmarkLimit(b *testing.B) {
	in := audiotest.Noise(testRate, 2, testRate, 2)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = effects.Limit(in, -0.1)
	}
}
