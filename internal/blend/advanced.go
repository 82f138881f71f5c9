// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

// Mode is a layer blend mode, applied when a layer is composited onto the
// layers below it.
type Mode uint8

const (
	ModeNormal     Mode = iota // source-over
	ModeMultiply               // S * D
	ModeScreen                 // 1 - (1-S)*(1-D)
	ModeOverlay                // HardLight with swapped layers
	ModeDarken                 // min(S, D)
	ModeLighten                // max(S, D)
	ModeDifference             // |S - D|
)

// String returns a string representation of the blend mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeMultiply:
		return "Multiply"
	case ModeScreen:
		return "Screen"
	case ModeOverlay:
		return "Overlay"
	case ModeDarken:
		return "Darken"
	case ModeLighten:
		return "Lighten"
	case ModeDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// ParseMode returns the mode named s (as produced by String).
func ParseMode(s string) (Mode, bool) {
	for m := ModeNormal; m <= ModeDifference; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return ModeNormal, false
}

// ModeFunc returns the blend function for the given mode.
// Returns the source-over function for unknown modes.
func ModeFunc(m Mode) Func {
	switch m {
	case ModeMultiply:
		return blendMultiply
	case ModeScreen:
		return blendScreen
	case ModeOverlay:
		return blendOverlay
	case ModeDarken:
		return blendDarken
	case ModeLighten:
		return blendLighten
	case ModeDifference:
		return blendDifference
	default:
		return blendSourceOver
	}
}

// separableBlend applies a per-channel blend function B using
// Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
// where B operates on unmultiplied channels.
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, blendChan func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	br := blendChan(unpremul(sr, sa), unpremul(dr, da))
	bg := blendChan(unpremul(sg, sa), unpremul(dg, da))
	bb := blendChan(unpremul(sb, sa), unpremul(db, da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	r := addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, br))
	g := addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, bg))
	b := addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, bb))
	a := addClamp(sa, mulDiv255(da, invSa))
	return r, g, b, a
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return 255 - mulDiv255(255-s, 255-d)
	})
}

func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d <= 128 {
			return byte(min(255, 2*uint16(mulDiv255(d, s))))
		}
		return 255 - byte(min(255, 2*uint16(mulDiv255(255-d, 255-s))))
	})
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}
