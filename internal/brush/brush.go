// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package brush rasterises freehand brush segments into stamps.
//
// A stamp is a small *image.RGBA whose bounds are the canvas-space pixel
// rectangle it covers, ready to be composited onto a scratch surface.
package brush

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// MinWidth is the thinnest segment that is rasterised.
const MinWidth = 1.0

// Bounds returns the pixel rectangle touched by a round-capped segment from
// (x0, y0) to (x1, y1) of the given width. The rectangle is rounded outward
// and padded by one pixel for anti-aliasing.
func Bounds(x0, y0, x1, y1, width float64) image.Rectangle {
	r := math.Max(width, MinWidth)/2 + 1
	return image.Rect(
		floorInt(math.Min(x0, x1)-r),
		floorInt(math.Min(y0, y1)-r),
		ceilInt(math.Max(x0, x1)+r),
		ceilInt(math.Max(y0, y1)+r),
	)
}

// Segment rasterises a round-capped line from (x0, y0) to (x1, y1) in colour
// c, clipped to clip. When both ends coincide a filled dot of the same
// diameter is drawn. The stamp never extends past clip; a segment that
// misses clip yields an empty stamp.
func Segment(x0, y0, x1, y1, width float64, c color.Color, clip image.Rectangle) *image.RGBA {
	width = math.Max(width, MinWidth)
	r := Bounds(x0, y0, x1, y1, width).Intersect(clip)
	if r.Empty() {
		return &image.RGBA{}
	}

	// Only the part of the line within reach of r can cover its pixels.
	pad := width/2 + 1
	reach := [4]float64{
		float64(r.Min.X) - pad, float64(r.Min.Y) - pad,
		float64(r.Max.X) + pad, float64(r.Max.Y) + pad,
	}
	dot := x0 == x1 && y0 == y1
	if !dot {
		var ok bool
		if x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, reach); !ok {
			return &image.RGBA{}
		}
	}

	// Draw in stamp-local coordinates.
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	x0, y0, x1, y1 = x0-ox, y0-oy, x1-ox, y1-oy

	dc := gg.NewContext(r.Dx(), r.Dy())
	dc.SetColor(c)
	if dot {
		dc.DrawCircle(x0, y0, width/2)
		dc.Fill()
	} else {
		dc.SetLineWidth(width)
		dc.SetLineCapRound()
		dc.SetLineJoinRound()
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return image.NewRGBA(r)
	}
	// Re-anchor the stamp at its canvas position; pixel data is shared.
	return &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect.Add(r.Min)}
}

// clipLine clips the line to the box {minX, minY, maxX, maxY}
// (Liang-Barsky). It reports false when the line misses the box.
func clipLine(x0, y0, x1, y1 float64, box [4]float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - box[0]},
		{dx, box[2] - x0},
		{-dy, y0 - box[1]},
		{dy, box[3] - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// coordLimit keeps float coordinates inside int range before conversion.
const coordLimit = 1 << 30

func floorInt(v float64) int {
	return int(math.Max(-coordLimit, math.Min(coordLimit, math.Floor(v))))
}

func ceilInt(v float64) int {
	return int(math.Max(-coordLimit, math.Min(coordLimit, math.Ceil(v))))
}
