// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "image"

// Composite blends the pixels of src inside r onto dst at the same
// coordinates, using fn and scaling the source by opacity.
//
// r is clipped to the bounds of both images; nothing happens if the
// intersection is empty. Both images must be premultiplied (image.RGBA).
func Composite(dst, src *image.RGBA, r image.Rectangle, fn Func, opacity float64) {
	if dst == nil || src == nil || fn == nil {
		return
	}
	r = r.Intersect(dst.Rect).Intersect(src.Rect)
	if r.Empty() {
		return
	}

	op := opacityByte(opacity)
	w := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		srow := src.Pix[si : si+w : si+w]
		drow := dst.Pix[di : di+w : di+w]
		for i := 0; i < w; i += 4 {
			sr, sg, sb, sa := srow[i], srow[i+1], srow[i+2], srow[i+3]
			if op != 255 {
				sr, sg, sb, sa = mulDiv255(sr, op), mulDiv255(sg, op), mulDiv255(sb, op), mulDiv255(sa, op)
			}
			drow[i], drow[i+1], drow[i+2], drow[i+3] = fn(sr, sg, sb, sa, drow[i], drow[i+1], drow[i+2], drow[i+3])
		}
	}
}

// CompositeOp is Composite with a Porter-Duff operator.
func CompositeOp(dst, src *image.RGBA, r image.Rectangle, op Op, opacity float64) {
	Composite(dst, src, r, OpFunc(op), opacity)
}

// CompositeMode is Composite with a layer blend mode.
func CompositeMode(dst, src *image.RGBA, r image.Rectangle, m Mode, opacity float64) {
	Composite(dst, src, r, ModeFunc(m), opacity)
}

func opacityByte(opacity float64) byte {
	switch {
	case opacity <= 0:
		return 0
	case opacity >= 1:
		return 255
	default:
		return byte(opacity*255 + 0.5)
	}
}
