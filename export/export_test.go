// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPNGRoundTrip(t *testing.T) {
	src := solid(4, 3, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := PNG(&buf, src); err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	got, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if got.Bounds() != src.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	if c := got.RGBAAt(2, 1); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v, want opaque red", c)
	}
}

func TestPNGEmpty(t *testing.T) {
	err := PNG(&bytes.Buffer{}, image.NewRGBA(image.Rectangle{}))
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("PNG(empty) error = %v, want ErrEmptyImage", err)
	}
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, solid(20, 10, color.RGBA{B: 255, A: 128}), PDFOptions{Title: "canvas"})
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", out[:min(len(out), 8)])
	}
	if !bytes.Contains(out, []byte("/Image")) {
		t.Error("output has no image XObject")
	}
}

func TestPDFEmpty(t *testing.T) {
	err := PDF(&bytes.Buffer{}, image.NewRGBA(image.Rectangle{}), PDFOptions{})
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("PDF(empty) error = %v, want ErrEmptyImage", err)
	}
}

func TestOnBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})
	bg := solid(2, 2, color.RGBA{G: 255, A: 255})

	got := OnBackground(img, bg)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{1, 1, color.RGBA{R: 255, A: 255}},
		{0, 0, color.RGBA{G: 255, A: 255}},
		{3, 3, color.RGBA{G: 255, A: 255}}, // tiled
	}
	for _, tt := range tests {
		if c := got.RGBAAt(tt.x, tt.y); c != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, c, tt.want)
		}
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("OnBackground modified its input")
	}
}
