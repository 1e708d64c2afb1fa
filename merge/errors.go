// SPDX-License-Identifier: MIT
package merge

import "errors"

// ErrNoVolumes indicates Layer was called without an avoidance source.
var ErrNoVolumes = errors.New("merge: no volumes supplied")
