// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Placement is a rendered line of text positioned in canvas space.
type Placement struct {
	// Bounds is the pixel rectangle the text may touch.
	Bounds image.Rectangle
	// Image holds the rendered glyphs; its bounds equal Bounds.
	Image *image.RGBA
	Extent
}

// Place lays out s with its top edge at y. Left-to-right text starts at x;
// right-to-left text ends at x. The returned bounds are padded by a quarter
// of the face size so anti-aliased glyph overhangs stay inside them.
func Place(f *Face, s string, x, y float64) Placement {
	ext := Measure(f, s)
	left := x
	if ext.Direction == DirectionRTL {
		left = x - ext.Advance
	}
	pad := math.Ceil(f.size/4) + 1
	b := image.Rect(
		int(math.Floor(left-pad)),
		int(math.Floor(y-pad)),
		int(math.Ceil(left+ext.Advance+pad)),
		int(math.Ceil(y+ext.Height()+pad)),
	)
	return Placement{Bounds: b, Extent: ext}
}

// Render places s like Place and rasterises it in colour c.
func Render(f *Face, s string, x, y float64, c color.Color) Placement {
	p := Place(f, s, x, y)
	if s == "" || p.Bounds.Empty() {
		p.Image = image.NewRGBA(p.Bounds)
		return p
	}

	dc := gg.NewContext(p.Bounds.Dx(), p.Bounds.Dy())
	dc.SetFontFace(f.face)
	dc.SetColor(c)

	left := x
	if p.Direction == DirectionRTL {
		left = x - p.Advance
	}
	ox, oy := float64(p.Bounds.Min.X), float64(p.Bounds.Min.Y)
	dc.DrawString(s, left-ox, y+p.Ascent-oy)

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		p.Image = image.NewRGBA(p.Bounds)
		return p
	}
	p.Image = &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect.Add(p.Bounds.Min)}
	return p
}
