// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/stemfx/audio"
)

// Schroeder/Moorer network tunings in samples at 44.1 kHz, scaled to the
// buffer rate. Odd channels are offset by reverbSpread to decorrelate.
var (
	combTunings    = [...]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
	allpassTunings = [...]int{556, 441, 341, 225}
)

const (
	reverbTuningRate = 44100
	reverbSpread     = 23

	reverbInputGain  = 0.015
	reverbWetScale   = 3.0
	reverbRoomScale  = 0.28
	reverbRoomOffset = 0.7
	reverbDamping    = 0.5
	reverbDampScale  = 0.4
	allpassFeedback  = 0.5
)

type comb struct {
	buf      []float64
	idx      int
	store    float64
	feedback float64
	damp     float64
}

func (c *comb) process(in float64) float64 {
	out := c.buf[c.idx]
	c.store = out*(1-c.damp) + c.store*c.damp
	c.buf[c.idx] = in + c.store*c.feedback
	c.idx = (c.idx + 1) % len(c.buf)

	return out
}

type allpass struct {
	buf []float64
	idx int
}

func (a *allpass) process(in float64) float64 {
	delayed := a.buf[a.idx]
	a.buf[a.idx] = in + delayed*allpassFeedback
	a.idx = (a.idx + 1) % len(a.buf)

	return delayed - in
}

// tank is the reverb network for one channel.
type tank struct {
	combs     []comb
	allpasses []allpass
}

func scaledLength(samples, sampleRate int) int {
	return max(1, int(math.Round(float64(samples)*float64(sampleRate)/reverbTuningRate)))
}

func newTank(roomSize float64, sampleRate, spread int) *tank {
	t := &tank{
		combs:     make([]comb, len(combTunings)),
		allpasses: make([]allpass, len(allpassTunings)),
	}
	for i, n := range combTunings {
		t.combs[i] = comb{
			buf:      make([]float64, scaledLength(n+spread, sampleRate)),
			feedback: roomSize*reverbRoomScale + reverbRoomOffset,
			damp:     reverbDamping * reverbDampScale,
		}
	}
	for i, n := range allpassTunings {
		t.allpasses[i] = allpass{buf: make([]float64, scaledLength(n+spread, sampleRate))}
	}

	return t
}

func (t *tank) process(in float64) float64 {
	in *= reverbInputGain

	var sum float64
	for i := range t.combs {
		sum += t.combs[i].process(in)
	}
	for i := range t.allpasses {
		sum = t.allpasses[i].process(sum)
	}

	return sum * reverbWetScale
}

// Reverberate adds a diffuse decaying tail. roomSize in [0, 1] sets the comb
// feedback and so the decay time; wetLevel in [0, 1] is the mix fraction:
//
//	out = (1 - wetLevel) * dry + wetLevel * wet
//
// The output has the same length as the input; the tail past the last input
// frame is discarded.
func Reverberate(b *audio.Buffer, roomSize, wetLevel float64) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkReverb(roomSize, wetLevel); err != nil {
		return nil, err
	}

	out := b.Clone()
	for c := range b.Channels {
		t := newTank(roomSize, b.SampleRate, (c%2)*reverbSpread)
		x := b.Channel(c)
		for i, dry := range x {
			x[i] = (1-wetLevel)*dry + wetLevel*t.process(dry)
		}
		out.SetChannel(c, x)
	}

	return out, nil
}

func checkReverb(roomSize, wetLevel float64) error {
	if math.IsNaN(roomSize) || roomSize < 0 || roomSize > 1 {
		return paramErr("room_size", roomSize, ErrInvalidParameter)
	}
	if math.IsNaN(wetLevel) || wetLevel < 0 || wetLevel > 1 {
		return paramErr("wet_level", wetLevel, ErrInvalidParameter)
	}

	return nil
}
