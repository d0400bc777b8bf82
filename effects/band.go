// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"

	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

// DefaultFilterOrder is the Butterworth order used when FilterSpec.Order is 0.
const DefaultFilterOrder = 1

// maxFilterOrder bounds the design; higher orders are numerically fragile.
const maxFilterOrder = 16

// FilterSpec describes the frequency band removed by AttenuateBand.
type FilterSpec struct {
	LowHz         float64 `yaml:"low_hz"`
	HighHz        float64 `yaml:"high_hz"`
	Order         int     `yaml:"order"`
	AttenuationDB float64 `yaml:"attenuation_db"`
}

func (s FilterSpec) order() int {
	if s.Order == 0 {
		return DefaultFilterOrder
	}

	return s.Order
}

// Validate checks the band against the Nyquist frequency of sampleRate.
func (s FilterSpec) Validate(sampleRate int) error {
	nyquist := float64(sampleRate) / 2
	switch {
	case sampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFilterSpec, sampleRate)
	case math.IsNaN(s.LowHz) || s.LowHz <= 0:
		return paramErr("low_hz", s.LowHz, ErrInvalidFilterSpec)
	case math.IsNaN(s.HighHz) || s.HighHz >= nyquist:
		return paramErr("high_hz", s.HighHz, ErrInvalidFilterSpec)
	case s.LowHz >= s.HighHz:
		return paramErr("low_hz", s.LowHz, fmt.Errorf("%w: low_hz must be below high_hz %g", ErrInvalidFilterSpec, s.HighHz))
	case s.order() < 1 || s.order() > maxFilterOrder:
		return paramErr("order", float64(s.Order), ErrInvalidFilterSpec)
	case math.IsNaN(s.AttenuationDB) || math.IsInf(s.AttenuationDB, 0):
		return paramErr("attenuation_db", s.AttenuationDB, ErrInvalidParameter)
	}

	return nil
}

// CenterHz is the frequency at which the band-pass has unity gain and the
// attenuation is exact.
func (s FilterSpec) CenterHz(sampleRate int) float64 {
	nyquist := float64(sampleRate) / 2
	w0 := math.Sqrt(prewarp(s.LowHz/nyquist) * prewarp(s.HighHz/nyquist))

	return math.Atan(w0/4) * float64(sampleRate) / math.Pi
}

// AttenuateBand isolates the band with a Butterworth band-pass filter applied
// to each channel independently, scales it by 10^(AttenuationDB/20) and
// subtracts it from the input:
//
//	out = x - 10^(db/20) * bandpass(x)
//
// With AttenuationDB = 0 the stage is a notch. Negative values remove less of
// the band, so the effective attenuation at the centre is 20*log10(1 - g).
func AttenuateBand(b *audio.Buffer, spec FilterSpec) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(b.SampleRate); err != nil {
		return nil, err
	}

	nyquist := b.Nyquist()
	sections, err := designBandPass(spec.order(), spec.LowHz/nyquist, spec.HighHz/nyquist)
	if err != nil {
		return nil, err
	}

	g := utils.DBToGain(spec.AttenuationDB)
	out := b.Clone()
	for c := range b.Channels {
		x := b.Channel(c)
		band := b.Channel(c)
		sections.filter(band)
		for i := range x {
			x[i] -= g * band[i]
		}
		out.SetChannel(c, x)
	}

	return out, nil
}
