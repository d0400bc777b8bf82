// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages all channels of b into a new mono buffer.
// A mono input is copied unchanged.
func Downmix(b *Buffer) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.Channels == 1 {
		return b.Clone(), nil
	}

	frames := b.Frames()
	out := NewBuffer(1, b.SampleRate, frames)
	channels := b.Channels
	invChannels := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			out.Data[f] = (b.Data[idx] + b.Data[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += b.Data[base+c]
			}
			out.Data[f] = sum * invChannels
		}
	}

	return out, nil
}
