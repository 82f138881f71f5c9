// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"errors"

	intImage "github.com/gogpu/paint/internal/image"
)

var (
	// ErrDetached is returned by surface-touching operations while the
	// state has no attached surfaces.
	ErrDetached = errors.New("paint: surfaces not attached")

	// ErrLayerIndex is returned when an explicit layer index is out of range.
	ErrLayerIndex = errors.New("paint: layer index out of range")

	// ErrInvalidDimensions is returned for non-positive canvas sizes.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrNilSurface is returned when a SurfaceFactory yields a nil surface.
	ErrNilSurface = errors.New("paint: surface factory returned nil surface")
)
