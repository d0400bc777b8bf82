// SPDX-License-Identifier: EPL-2.0

package mastering

import "errors"

var (
	ErrMissingStem   = errors.New("stem not found")
	ErrNotDirectory  = errors.New("stems path is not a directory")
	ErrIncompleteJob = errors.New("incomplete job")
)
