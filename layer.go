// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"
	"math"

	"github.com/google/uuid"

	"github.com/gogpu/paint/internal/blend"
	intImage "github.com/gogpu/paint/internal/image"
)

// BlendMode defines how a layer is combined with the layers below it.
type BlendMode = blend.Mode

// Blend modes.
const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal = blend.ModeNormal

	// BlendMultiply multiplies layer and backdrop colors. Never lighter.
	BlendMultiply = blend.ModeMultiply

	// BlendScreen performs inverse multiply for lighter results.
	BlendScreen = blend.ModeScreen

	// BlendOverlay multiplies dark backdrop areas and screens bright ones.
	BlendOverlay = blend.ModeOverlay

	BlendDarken     = blend.ModeDarken
	BlendLighten    = blend.ModeLighten
	BlendDifference = blend.ModeDifference
)

// ParseBlendMode returns the blend mode named s, as printed by BlendMode.String.
func ParseBlendMode(s string) (BlendMode, bool) {
	return blend.ParseMode(s)
}

// LayerInfo is the editable metadata of a layer.
type LayerInfo struct {
	Name    string
	Visible bool
	// Opacity is in [0, 1].
	Opacity   float64
	BlendMode BlendMode
}

// DefaultLayerInfo returns visible, fully opaque, normal-blended metadata.
func DefaultLayerInfo(name string) LayerInfo {
	return LayerInfo{Name: name, Visible: true, Opacity: 1, BlendMode: BlendNormal}
}

// normalized clamps Opacity into [0, 1]. NaN becomes 1.
func (i LayerInfo) normalized() LayerInfo {
	if math.IsNaN(i.Opacity) {
		i.Opacity = 1
	}
	i.Opacity = min(max(i.Opacity, 0), 1)
	return i
}

// Layer is one committed raster layer. Its buffer always matches the
// canvas size.
type Layer struct {
	ID   uuid.UUID
	Info LayerInfo
	buf  *Buffer
}

// newLayer allocates a transparent layer of the given size.
func newLayer(name string, size Size) (*Layer, error) {
	buf, err := NewBuffer(size.Width, size.Height)
	if err != nil {
		return nil, err
	}
	return &Layer{ID: uuid.New(), Info: DefaultLayerInfo(name), buf: buf}, nil
}

// Image returns the layer pixels. The image is owned by the layer; callers
// must not retain it across edits.
func (l *Layer) Image() *image.RGBA {
	return l.buf.img
}

// Surface returns the layer buffer as a Surface.
func (l *Layer) Surface() *Buffer {
	return l.buf
}

// Bounds returns the layer rectangle.
func (l *Layer) Bounds() image.Rectangle {
	return l.buf.Bounds()
}

// Clone returns a deep copy of l with the same ID.
func (l *Layer) Clone() *Layer {
	return &Layer{ID: l.ID, Info: l.Info, buf: &Buffer{img: intImage.Clone(l.buf.img)}}
}

// reanchored returns a copy of l resized to size, keeping the top-left
// corner fixed. Pixels outside the new size are dropped; new area is
// transparent.
func (l *Layer) reanchored(size Size) (*Layer, error) {
	img, err := intImage.Reanchor(l.buf.img, size.Width, size.Height)
	if err != nil {
		return nil, err
	}
	return &Layer{ID: l.ID, Info: l.Info, buf: &Buffer{img: img}}, nil
}
