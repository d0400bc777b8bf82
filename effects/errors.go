// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"errors"
	"fmt"
)

// The two failure kinds of the effects package. Every configuration error
// matches ErrConfiguration; unstable filter designs match ErrNumericDegeneracy.
var (
	ErrConfiguration     = errors.New("invalid effect configuration")
	ErrNumericDegeneracy = errors.New("numerically degenerate filter")
)

var (
	ErrInvalidFilterSpec    = fmt.Errorf("%w: invalid filter spec", ErrConfiguration)
	ErrChannelCountMismatch = fmt.Errorf("%w: channel count mismatch", ErrConfiguration)
	ErrInvalidParameter     = fmt.Errorf("%w: invalid parameter", ErrConfiguration)
	ErrUnknownStep          = fmt.Errorf("%w: unknown effect step", ErrConfiguration)
)

// ParamError names the parameter that failed validation.
type ParamError struct {
	Param string
	Value float64
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s = %g: %v", e.Param, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

func paramErr(param string, value float64, err error) error {
	return &ParamError{Param: param, Value: value, Err: err}
}

// StepError reports which step of a Chain failed.
type StepError struct {
	Index int
	Kind  string
	Param string
	Err   error
}

func (e *StepError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("effect step %d (%s), %s: %v", e.Index, e.Kind, e.Param, e.Err)
	}

	return fmt.Sprintf("effect step %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func stepErr(index int, step Step, err error) error {
	se := &StepError{Index: index, Kind: kindOf(step), Err: err}

	var pe *ParamError
	if errors.As(err, &pe) {
		se.Param = pe.Param
	}

	return se
}
