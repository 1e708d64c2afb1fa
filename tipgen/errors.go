// SPDX-License-Identifier: MIT
package tipgen

import "errors"

// ErrNoCollider indicates Generate was called without a Collider.
var ErrNoCollider = errors.New("tipgen: no collider supplied")
