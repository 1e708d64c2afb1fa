// SPDX-License-Identifier: MIT
package draw

import "errors"

// ErrNoTree indicates Generate was called with an empty tree.
var ErrNoTree = errors.New("draw: empty tree")
