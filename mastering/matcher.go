// SPDX-License-Identifier: EPL-2.0

package mastering

import (
	"context"

	"github.com/ik5/stemfx/analysis"
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

// Matcher adjusts target to sound like reference. The result has target's
// channel count and sample rate.
type Matcher interface {
	Match(ctx context.Context, target, reference *audio.Buffer) (*audio.Buffer, error)
}

// LoudnessMatcher scales the target so its RMS level equals the reference's,
// without letting the peak exceed CeilingDB (0 dBFS when zero). It is a
// level match only; no spectral shaping is done.
type LoudnessMatcher struct {
	CeilingDB float64
}

func (m LoudnessMatcher) Match(ctx context.Context, target, reference *audio.Buffer) (*audio.Buffer, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// reference loudness is measured at the target rate
	ref, err := audio.Resample(reference, target.SampleRate)
	if err != nil {
		return nil, err
	}
	refMono, err := audio.Downmix(ref)
	if err != nil {
		return nil, err
	}
	tgtMono, err := audio.Downmix(target)
	if err != nil {
		return nil, err
	}

	out := target.Clone()
	tgtRMS := analysis.RMS(tgtMono)
	if tgtRMS == 0 {
		return out, nil
	}

	g := analysis.RMS(refMono) / tgtRMS
	ceiling := utils.DBToGain(m.CeilingDB)
	if peak := analysis.Peak(target); peak*g > ceiling {
		g = ceiling / peak
	}

	for i, v := range out.Data {
		out.Data[i] = float32(float64(v) * g)
	}

	return out, nil
}
