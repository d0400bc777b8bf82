// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic signals for tests.
package audiotest

import (
	"math"

	"github.com/ik5/stemfx/audio"
)

// Generate builds a buffer whose samples come from waveform(frame, channel).
func Generate(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *audio.Buffer {
	b := audio.NewBuffer(channels, sampleRate, frames)
	for f := range frames {
		for c := range channels {
			b.Data[f*channels+c] = waveform(f, c)
		}
	}

	return b
}

// Silent returns a buffer of zeros.
func Silent(sampleRate, channels, frames int) *audio.Buffer {
	return audio.NewBuffer(channels, sampleRate, frames)
}

// Constant returns a buffer where every sample equals value.
func Constant(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return Generate(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// Sine returns a sine tone of the given amplitude on every channel.
func Sine(sampleRate, channels, frames int, frequency, amplitude float64) *audio.Buffer {
	return Generate(sampleRate, channels, frames, func(f, _ int) float32 {
		t := float64(f) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// Noise returns white noise from a fixed-seed LCG so runs are repeatable.
func Noise(sampleRate, channels, frames int, amplitude float64) *audio.Buffer {
	state := uint32(12345)
	return Generate(sampleRate, channels, frames, func(int, int) float32 {
		// Numerical Recipes LCG
		state = state*1664525 + 1013904223
		return float32(amplitude * ((float64(state)/float64(math.MaxUint32))*2 - 1))
	})
}

// Ramp returns frame-indexed values f*step + channel*offset, handy for
// checking that channels stay separate.
func Ramp(sampleRate, channels, frames int, step, offset float32) *audio.Buffer {
	return Generate(sampleRate, channels, frames, func(f, c int) float32 {
		return float32(f)*step + float32(c)*offset
	})
}

// ChannelRMS returns the RMS of channel c, ignoring the first skip frames
// so filter transients do not bias steady-state measurements.
func ChannelRMS(b *audio.Buffer, c, skip int) float64 {
	var sum float64
	n := 0
	for f := skip; f < b.Frames(); f++ {
		v := float64(b.Data[f*b.Channels+c])
		sum += v * v
		n++
	}
	if n == 0 {
		return 0
	}

	return math.Sqrt(sum / float64(n))
}

// Peak returns the largest absolute sample value in b.
func Peak(b *audio.Buffer) float64 {
	var peak float64
	for _, v := range b.Data {
		peak = max(peak, math.Abs(float64(v)))
	}

	return peak
}
