// SPDX-License-Identifier: MIT
package propagate

import "errors"

var (
	// ErrNoVolumes indicates Step/Layer was called without a volume source.
	ErrNoVolumes = errors.New("propagate: no volumes supplied")
)
