// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/stemfx/effects"
	"github.com/ik5/stemfx/internal/audiotest"
)

func TestApply_EmptyChainIsIdentity(t *testing.T) {
	t.Parallel()

	in := audiotest.Noise(testRate, 2, 2048, 0.7)

	for _, chain := range []effects.Chain{nil, {}} {
		out, err := effects.Apply(in, chain)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if out == in {
			t.Fatal("Apply() returned the input buffer, want a copy")
		}
		for i := range in.Data {
			if out.Data[i] != in.Data[i] {
				t.Fatalf("sample %d = %v, want %v", i, out.Data[i], in.Data[i])
			}
		}
	}
}

func TestApply_InvalidCompressorRatioFailsWithoutOutput(t *testing.T) {
	t.Parallel()

	in := audiotest.Noise(testRate, 2, 2048, 0.7)
	before := in.Clone()

	chain := effects.Chain{
		effects.Gain{GainDB: 3},
		effects.Compressor{ThresholdDB: -20, Ratio: 0},
		effects.Limiter{ThresholdDB: -0.1},
	}

	out, err := effects.Apply(in, chain)
	if out != nil {
		t.Error("Apply() returned partial output")
	}
	if !errors.Is(err, effects.ErrConfiguration) {
		t.Fatalf("Apply() error = %v, want ErrConfiguration", err)
	}

	var se *effects.StepError
	if !errors.As(err, &se) {
		t.Fatalf("Apply() error = %T, want *StepError", err)
	}
	if se.Index != 1 || se.Kind != effects.KindCompressor || se.Param != "ratio" {
		t.Errorf("StepError = {%d %s %s}, want {1 compressor ratio}", se.Index, se.Kind, se.Param)
	}

	for i := range in.Data {
		if in.Data[i] != before.Data[i] {
			t.Fatalf("input modified at sample %d", i)
		}
	}
}

func TestApply_RunsStepsInOrder(t *testing.T) {
	t.Parallel()

	in := audiotest.Constant(testRate, 2, 1024, 0.5)

	limitThenBoost := effects.Chain{effects.Limiter{ThresholdDB: -12}, effects.Gain{GainDB: 6}}
	boostThenLimit := effects.Chain{effects.Gain{GainDB: 6}, effects.Limiter{ThresholdDB: -12}}

	a, err := effects.Apply(in, limitThenBoost)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	b, err := effects.Apply(in, boostThenLimit)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	ceiling := math.Pow(10, -12.0/20)
	if got := audiotest.Peak(b); got > ceiling {
		t.Errorf("limit last: peak = %v, want <= %v", got, ceiling)
	}
	if got := audiotest.Peak(a); got <= ceiling {
		t.Errorf("gain last: peak = %v, want above the limiter ceiling %v", got, ceiling)
	}
}

func TestApply_DefaultChainStereo(t *testing.T) {
	t.Parallel()

	in := audiotest.Noise(testRate, 2, testRate/2, 0.9)
	out, err := effects.Apply(in, effects.DefaultMasteringChain())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if out.Channels != 2 || out.SampleRate != testRate || out.Frames() != in.Frames() {
		t.Errorf("output = (%d ch, %d Hz, %d frames), want (2, %d, %d)",
			out.Channels, out.SampleRate, out.Frames(), testRate, in.Frames())
	}
	for i, v := range out.Data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("sample %d is not finite: %v", i, v)
		}
	}
}

func TestApply_DefaultChainRejectsMono(t *testing.T) {
	t.Parallel()

	_, err := effects.Apply(audiotest.Noise(testRate, 1, 1024, 0.5), effects.DefaultMasteringChain())
	if !errors.Is(err, effects.ErrChannelCountMismatch) {
		t.Fatalf("Apply() error = %v, want ErrChannelCountMismatch", err)
	}

	var se *effects.StepError
	if errors.As(err, &se) && se.Index != 5 {
		t.Errorf("StepError.Index = %d, want 5 (stereo_widen)", se.Index)
	}
}

func TestApply_BandAboveNyquistForRate(t *testing.T) {
	t.Parallel()

	chain := effects.Chain{effects.BandAttenuate{Spec: effects.FilterSpec{LowHz: 200, HighHz: 5000}}}

	if _, err := effects.Apply(audiotest.Silent(8000, 2, 64), chain); !errors.Is(err, effects.ErrInvalidFilterSpec) {
		t.Errorf("8 kHz: error = %v, want ErrInvalidFilterSpec", err)
	}
	if _, err := effects.Apply(audiotest.Silent(44100, 2, 64), chain); err != nil {
		t.Errorf("44.1 kHz: error = %v", err)
	}
}

func TestDefaultMasteringChain_IsIndependentValue(t *testing.T) {
	t.Parallel()

	a := effects.DefaultMasteringChain()
	a[0] = effects.Gain{GainDB: -3}

	b := effects.DefaultMasteringChain()
	if _, ok := b[0].(effects.HighPass); !ok {
		t.Errorf("DefaultMasteringChain()[0] = %T, want HighPass", b[0])
	}
	if len(b) != 7 {
		t.Errorf("len = %d, want 7", len(b))
	}
}

func TestChain_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chain   effects.Chain
		wantErr error
	}{
		{name: "default", chain: effects.DefaultMasteringChain()},
		{name: "nil step", chain: effects.Chain{nil}, wantErr: effects.ErrUnknownStep},
		{name: "high pass at nyquist", chain: effects.Chain{effects.HighPass{CutoffHz: 22050}}, wantErr: effects.ErrInvalidParameter},
		{name: "reverb wet above one", chain: effects.Chain{effects.Reverb{RoomSize: 0.3, WetLevel: 2}}, wantErr: effects.ErrInvalidParameter},
		{name: "negative ratio", chain: effects.Chain{effects.Compressor{ThresholdDB: -20, Ratio: -2}}, wantErr: effects.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.chain.Validate(2, 44100)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func BenchmarkApply_DefaultChain(b *testing.B) {
	in := audiotest.Noise(testRate, 2, testRate, 0.5)
	chain := effects.DefaultMasteringChain()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = effects.Apply(in, chain)
	}
}
