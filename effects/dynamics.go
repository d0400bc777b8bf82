// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

// Envelope timings. Only the steady-state curves are contractual.
const (
	compressorAttack  = 0.001
	compressorRelease = 0.100
	limiterRelease    = 0.050
)

// smoothing returns the one-pole coefficient for a time constant in seconds.
func smoothing(seconds float64, sampleRate int) float64 {
	return math.Exp(-1 / (seconds * float64(sampleRate)))
}

// framePeak is the largest magnitude across the channels of frame f, so all
// channels share one gain and the stereo image does not shift.
func framePeak(b *audio.Buffer, f int) float64 {
	var peak float64
	for _, v := range b.Data[f*b.Channels : (f+1)*b.Channels] {
		peak = max(peak, math.Abs(float64(v)))
	}

	return peak
}

// Compress reduces the level above thresholdDB by ratio:1. A level L above
// the threshold T settles at T + (L-T)/ratio; levels below pass unchanged.
func Compress(b *audio.Buffer, thresholdDB, ratio float64) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkCompressor(thresholdDB, ratio); err != nil {
		return nil, err
	}

	attack := smoothing(compressorAttack, b.SampleRate)
	release := smoothing(compressorRelease, b.SampleRate)

	out := b.Clone()
	var env float64
	for f := range out.Frames() {
		in := framePeak(b, f)
		if in > env {
			env = attack*env + (1-attack)*in
		} else {
			env = release*env + (1-release)*in
		}

		level := utils.GainToDB(env)
		if level <= thresholdDB {
			continue
		}
		reduced := thresholdDB + (level-thresholdDB)/ratio
		g := float32(utils.DBToGain(reduced - level))
		for i := f * out.Channels; i < (f+1)*out.Channels; i++ {
			out.Data[i] *= g
		}
	}

	return out, nil
}

func checkCompressor(thresholdDB, ratio float64) error {
	if math.IsNaN(thresholdDB) || math.IsInf(thresholdDB, 0) {
		return paramErr("threshold_db", thresholdDB, ErrInvalidParameter)
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 1 {
		return paramErr("ratio", ratio, ErrInvalidParameter)
	}

	return nil
}

// Limit keeps every sample at or below 10^(thresholdDB/20) in magnitude.
// Gain reduction follows the frame peak instantly and recovers over
// limiterRelease; a final clip holds the ceiling exactly. Infinite samples
// become the signed ceiling and NaN becomes silence.
func Limit(b *audio.Buffer, thresholdDB float64) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkLimiter(thresholdDB); err != nil {
		return nil, err
	}

	ceiling := utils.DBToGain(thresholdDB)
	release := smoothing(limiterRelease, b.SampleRate)
	c32 := float32(ceiling)
	if float64(c32) > ceiling {
		c32 = math.Nextafter32(c32, 0)
	}

	out := b.Clone()
	for i, v := range out.Data {
		out.Data[i] = finite(v, c32)
	}

	var env float64
	for f := range out.Frames() {
		env = max(framePeak(out, f), env*release)

		g := 1.0
		if env > ceiling {
			g = ceiling / env
		}
		for i := f * out.Channels; i < (f+1)*out.Channels; i++ {
			out.Data[i] = min(max(float32(float64(out.Data[i])*g), -c32), c32)
		}
	}

	return out, nil
}

// finite maps NaN to 0 and ±Inf to ±ceiling.
func finite(v, ceiling float32) float32 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case math.IsInf(float64(v), 1):
		return ceiling
	case math.IsInf(float64(v), -1):
		return -ceiling
	}

	return v
}

func checkLimiter(thresholdDB float64) error {
	if math.IsNaN(thresholdDB) || math.IsInf(thresholdDB, 0) {
		return paramErr("threshold_db", thresholdDB, ErrInvalidParameter)
	}

	return nil
}
