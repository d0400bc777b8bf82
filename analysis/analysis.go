// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
	"github.com/madelynnblue/go-dsp/fft"
)

// maxWindow caps the FFT length; longer buffers are measured over their
// middle maxWindow frames.
const maxWindow = 1 << 16

var ErrInvalidBand = errors.New("invalid analysis band")

// Band is a frequency range in Hz, low inclusive, high exclusive.
type Band struct {
	Name   string
	LowHz  float64
	HighHz float64
}

// DefaultBands split the audible range into five regions.
var DefaultBands = []Band{
	{Name: "sub", LowHz: 20, HighHz: 60},
	{Name: "bass", LowHz: 60, HighHz: 250},
	{Name: "low-mid", LowHz: 250, HighHz: 2000},
	{Name: "high-mid", LowHz: 2000, HighHz: 6000},
	{Name: "air", LowHz: 6000, HighHz: 20000},
}

// BandLevel is the RMS level of a band in dBFS.
type BandLevel struct {
	Band
	LevelDB float64
}

// Report summarises a buffer's levels.
type Report struct {
	Channels   int
	SampleRate int
	Frames     int
	PeakDB     float64
	RMSDB      float64
	Bands      []BandLevel
}

// Peak is the largest absolute sample value.
func Peak(b *audio.Buffer) float64 {
	var peak float64
	for _, v := range b.Data {
		peak = max(peak, math.Abs(float64(v)))
	}

	return peak
}

// RMS is the root mean square over all samples of all channels.
func RMS(b *audio.Buffer) float64 {
	if len(b.Data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range b.Data {
		sum += float64(v) * float64(v)
	}

	return math.Sqrt(sum / float64(len(b.Data)))
}

// Analyze measures peak, RMS and DefaultBands levels.
func Analyze(b *audio.Buffer) (Report, error) {
	if err := b.Validate(); err != nil {
		return Report{}, err
	}

	bands, err := BandLevels(b, DefaultBands)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Channels:   b.Channels,
		SampleRate: b.SampleRate,
		Frames:     b.Frames(),
		PeakDB:     utils.GainToDB(Peak(b)),
		RMSDB:      utils.GainToDB(RMS(b)),
		Bands:      bands,
	}, nil
}

// window returns the analysed span of the mono mix: the largest power of two
// up to maxWindow, centred in the signal.
func window(mono []float64) []float64 {
	n := 1
	for n*2 <= len(mono) && n*2 <= maxWindow {
		n *= 2
	}
	off := (len(mono) - n) / 2

	return mono[off : off+n]
}

// BandLevels downmixes b and reports the RMS level of each band in dBFS,
// measured with a Hann-windowed FFT. A full-scale sine inside a band reads
// about -3 dB.
func BandLevels(b *audio.Buffer, bands []Band) ([]BandLevel, error) {
	for _, band := range bands {
		if band.LowHz < 0 || band.HighHz <= band.LowHz {
			return nil, ErrInvalidBand
		}
	}

	mono, err := audio.Downmix(b)
	if err != nil {
		return nil, err
	}

	out := make([]BandLevel, len(bands))
	for i, band := range bands {
		out[i] = BandLevel{Band: band, LevelDB: utils.GainToDB(0)}
	}
	if mono.Frames() < 2 {
		return out, nil
	}

	x := window(mono.Channel(0))
	n := len(x)
	var wsum float64
	for i := range x {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		x[i] *= w
		wsum += w * w
	}

	spectrum := fft.FFTReal(x)
	binHz := float64(b.SampleRate) / float64(n)
	for i, band := range bands {
		var power float64
		for k := 1; k < n/2; k++ {
			f := float64(k) * binHz
			if f >= band.LowHz && f < band.HighHz {
				m := cmplx.Abs(spectrum[k])
				power += m * m
			}
		}
		// one-sided spectrum, normalised back to the unwindowed mean square
		ms := 2 * power / (float64(n) * wsum)
		out[i].LevelDB = utils.GainToDB(math.Sqrt(ms))
	}

	return out, nil
}
