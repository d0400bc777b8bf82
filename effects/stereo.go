// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"

	"github.com/ik5/stemfx/audio"
)

// Widen multiplies every left and every right sample of a stereo buffer by
// width. It is a plain per-channel gain rather than mid/side processing, so
// widths above 1 also raise the overall level.
func Widen(b *audio.Buffer, width float64) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkWiden(width, b.Channels); err != nil {
		return nil, err
	}

	out := b.Clone()
	w := float32(width)
	for i := range out.Data {
		out.Data[i] *= w
	}

	return out, nil
}

func checkWiden(width float64, channels int) error {
	if channels != 2 {
		return fmt.Errorf("%w: stereo widening needs 2 channels, got %d", ErrChannelCountMismatch, channels)
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		return paramErr("width", width, ErrInvalidParameter)
	}

	return nil
}
