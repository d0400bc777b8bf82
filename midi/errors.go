// SPDX-License-Identifier: EPL-2.0

package midi

import "errors"

var (
	ErrInvalidNote    = errors.New("invalid note event")
	ErrInvalidOptions = errors.New("invalid MIDI options")
	ErrParse          = errors.New("error parsing midi file")
)
