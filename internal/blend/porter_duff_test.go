// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "testing"

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * zero", 255, 0, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"128 * 255", 128, 255, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mulDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestMulDiv255Identity checks that multiplying by 255 never changes a value.
func TestMulDiv255Identity(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := mulDiv255(byte(v), 255); got != byte(v) {
			t.Fatalf("mulDiv255(%d, 255) = %d, want %d", v, got, v)
		}
	}
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name string
		src  [4]byte
		dst  [4]byte
		want [4]byte
	}{
		{"opaque source replaces", [4]byte{10, 20, 30, 255}, [4]byte{200, 100, 50, 255}, [4]byte{10, 20, 30, 255}},
		{"transparent source keeps", [4]byte{0, 0, 0, 0}, [4]byte{200, 100, 50, 255}, [4]byte{200, 100, 50, 255}},
		{"half red over blue", [4]byte{128, 0, 0, 128}, [4]byte{0, 0, 255, 255}, [4]byte{128, 0, 127, 255}},
		{"onto transparent", [4]byte{60, 60, 60, 128}, [4]byte{0, 0, 0, 0}, [4]byte{60, 60, 60, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := blendSourceOver(tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("blendSourceOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDestinationOut(t *testing.T) {
	tests := []struct {
		name string
		sa   byte
		dst  [4]byte
		want [4]byte
	}{
		{"opaque source erases", 255, [4]byte{200, 100, 50, 255}, [4]byte{0, 0, 0, 0}},
		{"transparent source keeps", 0, [4]byte{200, 100, 50, 255}, [4]byte{200, 100, 50, 255}},
		{"half erase", 128, [4]byte{200, 100, 50, 255}, [4]byte{100, 50, 25, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := blendDestinationOut(255, 255, 255, tt.sa, tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("blendDestinationOut() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpString(t *testing.T) {
	if OpSourceOver.String() != "SourceOver" {
		t.Errorf("OpSourceOver.String() = %q", OpSourceOver.String())
	}
	if Op(99).String() != "Unknown" {
		t.Errorf("Op(99).String() = %q, want Unknown", Op(99).String())
	}
}
