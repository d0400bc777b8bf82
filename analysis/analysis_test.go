// SPDX-License-Identifier: EPL-2.0

package analysis_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/stemfx/analysis"
	"github.com/ik5/stemfx/internal/audiotest"
)

func TestPeakAndRMS(t *testing.T) {
	t.Parallel()

	b := audiotest.Constant(8000, 2, 100, -0.5)
	if got := analysis.Peak(b); got != 0.5 {
		t.Errorf("Peak() = %v, want 0.5", got)
	}
	if got := analysis.RMS(b); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("RMS() = %v, want 0.5", got)
	}

	sine := audiotest.Sine(48000, 1, 48000, 1000, 1)
	if got := analysis.RMS(sine); math.Abs(got-math.Sqrt2/2) > 1e-3 {
		t.Errorf("RMS(sine) = %v, want %v", got, math.Sqrt2/2)
	}
}

func TestBandLevels_SineLandsInItsBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		freq float64
		band string
	}{
		{freq: 100, band: "bass"},
		{freq: 1000, band: "low-mid"},
		{freq: 4000, band: "high-mid"},
		{freq: 10000, band: "air"},
	}

	for _, tt := range tests {
		b := audiotest.Sine(44100, 2, 44100, tt.freq, 0.5)
		levels, err := analysis.BandLevels(b, analysis.DefaultBands)
		if err != nil {
			t.Fatalf("BandLevels() error = %v", err)
		}

		want := 20 * math.Log10(0.5/math.Sqrt2)
		for _, l := range levels {
			if l.Name == tt.band {
				if math.Abs(l.LevelDB-want) > 0.5 {
					t.Errorf("%.0f Hz: %s level = %.2f dB, want %.2f", tt.freq, l.Name, l.LevelDB, want)
				}
				continue
			}
			if l.LevelDB > want-30 {
				t.Errorf("%.0f Hz: leakage into %s = %.2f dB", tt.freq, l.Name, l.LevelDB)
			}
		}
	}
}

func TestBandLevels_InvalidBand(t *testing.T) {
	t.Parallel()

	_, err := analysis.BandLevels(audiotest.Silent(8000, 1, 64), []analysis.Band{{Name: "x", LowHz: 500, HighHz: 100}})
	if !errors.Is(err, analysis.ErrInvalidBand) {
		t.Errorf("BandLevels() error = %v, want ErrInvalidBand", err)
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	b := audiotest.Sine(44100, 2, 22050, 440, 0.25)
	r, err := analysis.Analyze(b)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if r.Channels != 2 || r.SampleRate != 44100 || r.Frames != 22050 {
		t.Errorf("Report shape = (%d, %d, %d)", r.Channels, r.SampleRate, r.Frames)
	}
	if math.Abs(r.PeakDB-20*math.Log10(0.25)) > 0.01 {
		t.Errorf("PeakDB = %.3f, want %.3f", r.PeakDB, 20*math.Log10(0.25))
	}
	if len(r.Bands) != len(analysis.DefaultBands) {
		t.Errorf("len(Bands) = %d, want %d", len(r.Bands), len(analysis.DefaultBands))
	}
}

func TestAnalyze_Silence(t *testing.T) {
	t.Parallel()

	r, err := analysis.Analyze(audiotest.Silent(8000, 1, 0))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if r.PeakDB != -240 || r.RMSDB != -240 {
		t.Errorf("silence = (%v, %v) dB, want -240", r.PeakDB, r.RMSDB)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	buf := audiotest.Noise(44100, 2, 44100*5, 0.5)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = analysis.Analyze(buf)
	}
}
