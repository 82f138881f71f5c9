// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image"

	"github.com/gogpu/paint/internal/blend"
	intImage "github.com/gogpu/paint/internal/image"
)

// SurfaceKind identifies one of the four stacked canvas surfaces.
type SurfaceKind uint8

const (
	// SurfaceBelow is the composite of the layers below the focused one.
	SurfaceBelow SurfaceKind = iota
	// SurfaceFocused is the focused layer itself.
	SurfaceFocused
	// SurfaceScratch holds the in-progress stroke.
	SurfaceScratch
	// SurfaceAbove is the composite of the layers above the focused one.
	SurfaceAbove
)

// SurfaceKinds lists every kind, bottom to top.
var SurfaceKinds = [...]SurfaceKind{SurfaceBelow, SurfaceFocused, SurfaceScratch, SurfaceAbove}

// ZIndex returns the stacking order a renderer should use for the kind.
func (k SurfaceKind) ZIndex() int {
	switch k {
	case SurfaceBelow:
		return 4
	case SurfaceFocused:
		return 5
	case SurfaceScratch:
		return 6
	case SurfaceAbove:
		return 9
	default:
		return 0
	}
}

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceBelow:
		return "below"
	case SurfaceFocused:
		return "focused"
	case SurfaceScratch:
		return "scratch"
	case SurfaceAbove:
		return "above"
	default:
		return fmt.Sprintf("SurfaceKind(%d)", uint8(k))
	}
}

// CompositeOp is a Porter-Duff operator used when drawing onto a surface.
type CompositeOp = blend.Op

// Compositing operators.
const (
	OpSourceOver      = blend.OpSourceOver
	OpSource          = blend.OpSource
	OpDestinationOut  = blend.OpDestinationOut
	OpClear           = blend.OpClear
	OpDestinationOver = blend.OpDestinationOver
)

// Surface is a writable RGBA pixel surface of canvas size.
//
// All rectangles are in canvas coordinates and are clipped to Bounds.
type Surface interface {
	Bounds() image.Rectangle
	// Snapshot returns a copy of the pixels in r.
	Snapshot(r image.Rectangle) *image.RGBA
	// Write replaces the pixels covered by src.Rect.
	Write(src *image.RGBA)
	// Composite draws src onto the surface at src.Rect with op.
	Composite(src *image.RGBA, op CompositeOp)
	// Clear makes r fully transparent.
	Clear(r image.Rectangle)
	// Resize changes the surface size, keeping the top-left corner.
	Resize(width, height int) error
}

// SurfaceFactory creates the non-layer surfaces when a State is attached.
type SurfaceFactory func(kind SurfaceKind, width, height int) (Surface, error)

// BufferFactory is the default SurfaceFactory. It returns in-memory buffers.
func BufferFactory(_ SurfaceKind, width, height int) (Surface, error) {
	return NewBuffer(width, height)
}

// Buffer is an in-memory Surface backed by an *image.RGBA.
type Buffer struct {
	img *image.RGBA
}

var _ Surface = (*Buffer)(nil)

// NewBuffer allocates a transparent buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	img, err := intImage.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{img: img}, nil
}

// RGBA returns the backing image.
func (b *Buffer) RGBA() *image.RGBA { return b.img }

func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }

func (b *Buffer) Snapshot(r image.Rectangle) *image.RGBA {
	return intImage.Extract(b.img, r)
}

func (b *Buffer) Write(src *image.RGBA) {
	intImage.Put(b.img, src)
}

func (b *Buffer) Composite(src *image.RGBA, op CompositeOp) {
	blend.CompositeOp(b.img, src, src.Rect, op, 1)
}

func (b *Buffer) Clear(r image.Rectangle) {
	intImage.Clear(b.img, r)
}

func (b *Buffer) Resize(width, height int) error {
	img, err := intImage.Reanchor(b.img, width, height)
	if err != nil {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b.img = img
	return nil
}
