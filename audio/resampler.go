// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/stemfx/utils"
)

// antiAliasAlpha is the coefficient of the one-pole low-pass applied before
// downsampling.
const antiAliasAlpha = 0.5

// Resample converts b to dstRate using cubic interpolation, preserving the
// channel count. Downsampling is preceded by a one-pole low-pass per channel.
// Resampling to the same rate returns a copy.
func Resample(b *Buffer, dstRate int) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target %d", ErrInvalidSampleRate, dstRate)
	}
	if dstRate == b.SampleRate {
		return b.Clone(), nil
	}

	// ratio is how many source frames advance per output frame.
	ratio := float64(b.SampleRate) / float64(dstRate)
	srcFrames := b.Frames()
	dstFrames := int(math.Round(float64(srcFrames) / ratio))
	out := NewBuffer(b.Channels, dstRate, dstFrames)
	if srcFrames == 0 {
		return out, nil
	}

	for c := range b.Channels {
		src := b.Channel(c)
		if ratio > 1 {
			lowPass(src)
		}

		at := func(i int) float64 {
			return src[min(max(i, 0), srcFrames-1)]
		}

		for f := range dstFrames {
			pos := float64(f) * ratio
			idx := int(pos)
			frac := pos - float64(idx)
			v := utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
			out.Data[f*b.Channels+c] = float32(v)
		}
	}

	return out, nil
}

// lowPass runs y[n] = a*x[n] + (1-a)*y[n-1] in place, seeded with x[0] to
// avoid a warm-up transient.
func lowPass(x []float64) {
	state := x[0]
	for i, v := range x {
		state = antiAliasAlpha*v + (1-antiAliasAlpha)*state
		x[i] = state
	}
}
