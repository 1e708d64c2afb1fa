// SPDX-License-Identifier: MIT
package settings

import "errors"

// ErrConfigInvalid is returned by Validate when a setting fails a
// consistency check. Per spec.md §7 (ConfigInvalid), no pipeline work
// begins when this is returned.
var ErrConfigInvalid = errors.New("settings: invalid configuration")
