// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// I/O errors.
var (
	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// Decode decodes a PNG, JPEG, BMP or TIFF image into an RGBA buffer anchored
// at the origin. The detected format name is returned alongside.
func Decode(r io.Reader) (*image.RGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, format, ErrEmptyImage
	}
	rgba := ToRGBA(img)
	if b.Min != (image.Point{}) {
		rgba = Translate(rgba, b.Min.Mul(-1))
	}
	return rgba, format, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}
