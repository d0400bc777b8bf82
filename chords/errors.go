// SPDX-License-Identifier: EPL-2.0

package chords

import "errors"

var (
	ErrInvalidPitchName = errors.New("invalid pitch name")
	ErrMalformedLab     = errors.New("malformed chord lab line")
)
