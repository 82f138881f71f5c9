// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

// div255 divides x by 255 with rounding, without using division.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for every product of two
// bytes, so source-over with an opaque or fully transparent source stays
// bit-identical to a plain copy.
func div255(x uint16) uint16 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds two byte values with clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

// unpremul converts a premultiplied channel back to straight colour.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}
