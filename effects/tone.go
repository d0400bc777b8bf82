// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

// HighPassFilter removes energy below cutoffHz with a second-order
// Butterworth section per channel (12 dB/octave).
func HighPassFilter(b *audio.Buffer, cutoffHz float64) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkHighPass(cutoffHz, b.SampleRate); err != nil {
		return nil, err
	}

	q := highPassSection(cutoffHz, b.SampleRate)
	out := b.Clone()
	for c := range b.Channels {
		x := b.Channel(c)
		q.filter(x)
		out.SetChannel(c, x)
	}

	return out, nil
}

func checkHighPass(cutoffHz float64, sampleRate int) error {
	if math.IsNaN(cutoffHz) || cutoffHz <= 0 || cutoffHz >= float64(sampleRate)/2 {
		return paramErr("cutoff_hz", cutoffHz, ErrInvalidParameter)
	}

	return nil
}

// ApplyGain multiplies the signal by 10^(gainDB/20). Results saturate at the
// largest finite float32.
func ApplyGain(b *audio.Buffer, gainDB float64) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkGain(gainDB); err != nil {
		return nil, err
	}

	out := b.Clone()
	g := utils.DBToGain(gainDB)
	for i, v := range out.Data {
		out.Data[i] = float32(max(min(float64(v)*g, math.MaxFloat32), -math.MaxFloat32))
	}

	return out, nil
}

func checkGain(gainDB float64) error {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return paramErr("gain_db", gainDB, ErrInvalidParameter)
	}

	return nil
}
