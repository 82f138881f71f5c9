// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend implements Porter-Duff compositing operators and layer blend
// modes over image.RGBA rectangles.
//
// All blend operations work with premultiplied alpha values in the range 0-255,
// which is the storage convention of image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Op is a Porter-Duff compositing operator.
type Op uint8

const (
	OpSourceOver      Op = iota // Result: S + D*(1-Sa) [default]
	OpSource                    // Result: S (replace with source)
	OpDestinationOut            // Result: D*(1-Sa)
	OpClear                     // Result: 0
	OpDestinationOver           // Result: S*(1-Da) + D
)

// String returns the operator name.
func (o Op) String() string {
	switch o {
	case OpSourceOver:
		return "SourceOver"
	case OpSource:
		return "Source"
	case OpDestinationOut:
		return "DestinationOut"
	case OpClear:
		return "Clear"
	case OpDestinationOver:
		return "DestinationOver"
	default:
		return "Unknown"
	}
}

// Func is the signature for per-pixel blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// OpFunc returns the blend function for the given operator.
// Returns the source-over function for unknown operators.
func OpFunc(op Op) Func {
	switch op {
	case OpSource:
		return blendSource
	case OpDestinationOut:
		return blendDestinationOut
	case OpClear:
		return blendClear
	case OpDestinationOver:
		return blendDestinationOver
	default:
		return blendSourceOver
	}
}

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendDestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// blendDestinationOut keeps destination where source is transparent.
// Formula: D * (1 - Sa)
func blendDestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}
