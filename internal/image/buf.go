// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package image provides rect-scoped pixel buffer operations for the paint
// engine.
//
// All buffers are *image.RGBA (premultiplied alpha). Snapshots produced by
// Extract keep the rectangle they were taken from as their bounds, so a
// snapshot can be written back with Put without any extra bookkeeping.
package image

import (
	"errors"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")
)

// New allocates a transparent w×h buffer anchored at the origin.
func New(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// Clone creates a deep copy of src, including its bounds.
func Clone(src *image.RGBA) *image.RGBA {
	if src == nil {
		return nil
	}
	out := &image.RGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(out.Pix, src.Pix)
	return out
}

// Extract copies the pixels of src inside r into a new buffer whose bounds
// are r clipped to src. Returns an empty buffer when r misses src.
func Extract(src *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(src.Rect)
	out := image.NewRGBA(r)
	copyRows(out, src, r)
	return out
}

// Put writes src into dst at src's own bounds, clipped to dst. Pixels are
// replaced, not blended.
func Put(dst, src *image.RGBA) {
	if dst == nil || src == nil {
		return
	}
	copyRows(dst, src, src.Rect.Intersect(dst.Rect))
}

// PutRect is Put restricted to r.
func PutRect(dst, src *image.RGBA, r image.Rectangle) {
	if dst == nil || src == nil {
		return
	}
	copyRows(dst, src, r.Intersect(src.Rect).Intersect(dst.Rect))
}

// Clear sets the pixels of dst inside r to transparent black.
func Clear(dst *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	w := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		clear(dst.Pix[i : i+w])
	}
}

// Fill replaces the pixels of dst inside r with c.
func Fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// Equal reports whether a and b hold identical pixels inside r. Pixels of r
// outside either image compare unequal unless r lies outside both.
func Equal(a, b *image.RGBA, r image.Rectangle) bool {
	ra := r.Intersect(a.Rect)
	rb := r.Intersect(b.Rect)
	if ra != rb {
		return false
	}
	w := ra.Dx() * 4
	for y := ra.Min.Y; y < ra.Max.Y; y++ {
		ia := a.PixOffset(ra.Min.X, y)
		ib := b.PixOffset(ra.Min.X, y)
		pa := a.Pix[ia : ia+w]
		pb := b.Pix[ib : ib+w]
		for i := range pa {
			if pa[i] != pb[i] {
				return false
			}
		}
	}
	return true
}

// Reanchor returns a new width×height buffer holding the pixels of src at
// the same top-left origin. Content past the new size is clipped; new area
// is transparent. No scaling is performed.
func Reanchor(src *image.RGBA, width, height int) (*image.RGBA, error) {
	out, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if src != nil {
		copyRows(out, src, src.Rect.Intersect(out.Rect))
	}
	return out, nil
}

// ToRGBA converts img to an *image.RGBA with the same bounds. If img already
// is one it is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	xdraw.Draw(out, b, img, b.Min, xdraw.Src)
	return out
}

// Translate returns a view of src whose bounds are shifted by d. The pixel
// data is shared.
func Translate(src *image.RGBA, d image.Point) *image.RGBA {
	return &image.RGBA{Pix: src.Pix, Stride: src.Stride, Rect: src.Rect.Add(d)}
}

func copyRows(dst, src *image.RGBA, r image.Rectangle) {
	if r.Empty() {
		return
	}
	w := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		copy(dst.Pix[di:di+w], src.Pix[si:si+w])
	}
}
