// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strings"

	"github.com/ik5/stemfx/audio"
)

// Step is one effect in a Chain. The set of steps is closed: HighPass,
// Compressor, Limiter, Reverb, Gain, StereoWiden and BandAttenuate.
type Step interface {
	step()
}

type HighPass struct {
	CutoffHz float64
}

type Compressor struct {
	ThresholdDB float64
	Ratio       float64
}

type Limiter struct {
	ThresholdDB float64
}

type Reverb struct {
	RoomSize float64
	WetLevel float64
}

type Gain struct {
	GainDB float64
}

type StereoWiden struct {
	Width float64
}

type BandAttenuate struct {
	Spec FilterSpec
}

func (HighPass) step()      {}
func (Compressor) step()    {}
func (Limiter) step()       {}
func (Reverb) step()        {}
func (Gain) step()          {}
func (StereoWiden) step()   {}
func (BandAttenuate) step() {}

// Step kinds, as used in configuration files and error reports.
const (
	KindHighPass      = "high_pass"
	KindCompressor    = "compressor"
	KindLimiter       = "limiter"
	KindReverb        = "reverb"
	KindGain          = "gain"
	KindStereoWiden   = "stereo_widen"
	KindBandAttenuate = "band_attenuate"
)

func kindOf(s Step) string {
	switch s.(type) {
	case HighPass:
		return KindHighPass
	case Compressor:
		return KindCompressor
	case Limiter:
		return KindLimiter
	case Reverb:
		return KindReverb
	case Gain:
		return KindGain
	case StereoWiden:
		return KindStereoWiden
	case BandAttenuate:
		return KindBandAttenuate
	default:
		return fmt.Sprintf("%T", s)
	}
}

// Chain is an ordered list of steps. Order matters: a limiter only holds its
// ceiling if nothing after it adds gain.
type Chain []Step

// DefaultMasteringChain returns the chain used for mastered stems:
// high-pass, compression, limiting, reverb, make-up gain, widening and a
// mid-band cut. Callers may modify the returned slice freely.
func DefaultMasteringChain() Chain {
	return Chain{
		HighPass{CutoffHz: 100},
		Compressor{ThresholdDB: -20, Ratio: 4},
		Limiter{ThresholdDB: -0.1},
		Reverb{RoomSize: 0.3, WetLevel: 0.2},
		Gain{GainDB: 3},
		StereoWiden{Width: 1.2},
		BandAttenuate{Spec: FilterSpec{LowHz: 200, HighHz: 2000, Order: 1, AttenuationDB: -18}},
	}
}

// Validate checks every step against a buffer of the given channel count and
// sample rate without processing any audio.
func (c Chain) Validate(channels, sampleRate int) error {
	for i, s := range c {
		if err := check(s, channels, sampleRate); err != nil {
			return stepErr(i, s, err)
		}
	}

	return nil
}

// Apply runs b through every step of c in order and returns the result. The
// whole chain is validated first; on any error no output is returned and b
// is left untouched. An empty chain returns a copy of b.
func Apply(b *audio.Buffer, c Chain) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(b.Channels, b.SampleRate); err != nil {
		return nil, err
	}

	out := b.Clone()
	for i, s := range c {
		next, err := run(s, out)
		if err != nil {
			return nil, stepErr(i, s, err)
		}
		out = next
	}

	return out, nil
}

func check(s Step, channels, sampleRate int) error {
	switch s := s.(type) {
	case HighPass:
		return checkHighPass(s.CutoffHz, sampleRate)
	case Compressor:
		return checkCompressor(s.ThresholdDB, s.Ratio)
	case Limiter:
		return checkLimiter(s.ThresholdDB)
	case Reverb:
		return checkReverb(s.RoomSize, s.WetLevel)
	case Gain:
		return checkGain(s.GainDB)
	case StereoWiden:
		return checkWiden(s.Width, channels)
	case BandAttenuate:
		return s.Spec.Validate(sampleRate)
	default:
		return ErrUnknownStep
	}
}

func run(s Step, b *audio.Buffer) (*audio.Buffer, error) {
	switch s := s.(type) {
	case HighPass:
		return HighPassFilter(b, s.CutoffHz)
	case Compressor:
		return Compress(b, s.ThresholdDB, s.Ratio)
	case Limiter:
		return Limit(b, s.ThresholdDB)
	case Reverb:
		return Reverberate(b, s.RoomSize, s.WetLevel)
	case Gain:
		return ApplyGain(b, s.GainDB)
	case StereoWiden:
		return Widen(b, s.Width)
	case BandAttenuate:
		return AttenuateBand(b, s.Spec)
	default:
		return nil, ErrUnknownStep
	}
}

// String renders the chain as "kind{params} -> kind{params}".
func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = fmt.Sprintf("%s%+v", kindOf(s), s)
	}

	return strings.Join(parts, " -> ")
}
