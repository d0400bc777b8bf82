// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNilBuffer         = errors.New("nil audio buffer")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrMisalignedSamples = errors.New("sample count must be a multiple of channels")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
)
