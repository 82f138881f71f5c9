// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package export writes flattened canvases to PNG and PDF and decodes
// images for import.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/paint/internal/blend"
	intImage "github.com/gogpu/paint/internal/image"
)

// ErrEmptyImage is returned when exporting an image with no pixels.
var ErrEmptyImage = errors.New("export: empty image")

// Decode reads a PNG, JPEG, BMP or TIFF image. The result is anchored at
// the origin. The format name is returned alongside.
func Decode(r io.Reader) (*image.RGBA, string, error) {
	return intImage.Decode(r)
}

// OnBackground returns img drawn over bg. bg is tiled from its origin when
// smaller than img. img is not modified.
func OnBackground(img image.Image, bg image.Image) *image.RGBA {
	src := intImage.ToRGBA(img)
	b := src.Rect
	out := image.NewRGBA(b)
	if bg != nil {
		back := intImage.ToRGBA(bg)
		bb := back.Rect
		if !bb.Empty() {
			for y := b.Min.Y; y < b.Max.Y; y += bb.Dy() {
				for x := b.Min.X; x < b.Max.X; x += bb.Dx() {
					tile := intImage.Translate(back, image.Pt(x, y).Sub(bb.Min))
					intImage.Put(out, tile)
				}
			}
		}
	}
	blend.CompositeOp(out, src, b, blend.OpSourceOver, 1)
	return out
}

// PNG encodes img as PNG.
func PNG(w io.Writer, img image.Image) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	return intImage.EncodePNG(w, img)
}

// PDFOptions controls PDF export.
type PDFOptions struct {
	// Title is stored in the document metadata.
	Title string
	// DPI sets the physical page size: one pixel is 72/DPI points.
	// Zero selects 72, so one pixel maps to one point.
	DPI float64
}

// PDF writes a single-page PDF whose page matches img exactly.
func PDF(w io.Writer, img image.Image, opts PDFOptions) error {
	b := img.Bounds()
	if b.Empty() {
		return ErrEmptyImage
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = 72
	}
	pw := float64(b.Dx()) * 72 / dpi
	ph := float64(b.Dy()) * 72 / dpi

	var buf bytes.Buffer
	if err := intImage.EncodePNG(&buf, img); err != nil {
		return fmt.Errorf("export: encode page image: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	pdf.SetCreator("gogpu paint", true)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", imgOpts, &buf)
	pdf.ImageOptions("canvas", 0, 0, pw, ph, false, imgOpts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("export: build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
