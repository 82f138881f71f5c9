// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"image"
	"image/color"
	"testing"
)

func solid(r image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompositeClipsToRect(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	dst := solid(image.Rect(0, 0, 8, 8), red)
	src := solid(image.Rect(0, 0, 8, 8), blue)

	CompositeOp(dst, src, image.Rect(2, 2, 4, 4), OpSourceOver, 1)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := red
			if x >= 2 && x < 4 && y >= 2 && y < 4 {
				want = blue
			}
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCompositeOffsetSource(t *testing.T) {
	dst := solid(image.Rect(0, 0, 10, 10), color.RGBA{0, 0, 0, 255})
	src := solid(image.Rect(5, 5, 7, 7), color.RGBA{9, 9, 9, 255})

	// The rect extends past the source; only the overlap is touched.
	CompositeOp(dst, src, image.Rect(0, 0, 10, 10), OpSource, 1)

	if got := dst.RGBAAt(5, 5); got != (color.RGBA{9, 9, 9, 255}) {
		t.Errorf("inside source = %v", got)
	}
	if got := dst.RGBAAt(4, 4); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("outside source = %v", got)
	}
}

func TestCompositeOpacity(t *testing.T) {
	tests := []struct {
		name    string
		opacity float64
		want    color.RGBA
	}{
		{"full", 1, color.RGBA{255, 255, 255, 255}},
		{"zero", 0, color.RGBA{0, 0, 0, 0}},
		{"half", 0.5, color.RGBA{128, 128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
			src := solid(image.Rect(0, 0, 1, 1), color.RGBA{255, 255, 255, 255})
			CompositeMode(dst, src, dst.Rect, ModeNormal, tt.opacity)
			if got := dst.RGBAAt(0, 0); got != tt.want {
				t.Errorf("CompositeMode(opacity=%v) = %v, want %v", tt.opacity, got, tt.want)
			}
		})
	}
}

func TestModeMultiply(t *testing.T) {
	dst := solid(image.Rect(0, 0, 1, 1), color.RGBA{255, 128, 0, 255})
	src := solid(image.Rect(0, 0, 1, 1), color.RGBA{128, 128, 128, 255})
	CompositeMode(dst, src, dst.Rect, ModeMultiply, 1)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{128, 64, 0, 255}) {
		t.Errorf("multiply = %v, want {128 64 0 255}", got)
	}
}

func TestParseMode(t *testing.T) {
	for m := ModeNormal; m <= ModeDifference; m++ {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("Hue"); ok {
		t.Error("ParseMode(Hue) should fail")
	}
}
