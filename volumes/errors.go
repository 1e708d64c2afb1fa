// SPDX-License-Identifier: MIT
package volumes

import "errors"

var (
	// ErrNoInput indicates ModelVolumes was constructed without a LayerInput.
	ErrNoInput = errors.New("volumes: no layer input supplied")

	// ErrNegativeRadius indicates a query used a radius below zero.
	ErrNegativeRadius = errors.New("volumes: radius must be non-negative")
)
