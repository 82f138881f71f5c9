// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Extent is the measured box of a single line of text.
type Extent struct {
	// Advance is the total pen advance along the line.
	Advance float64
	// Ascent and Descent are the face metrics above and below the baseline.
	Ascent, Descent float64
	// Direction is the detected paragraph direction.
	Direction Direction
}

// Height returns Ascent + Descent.
func (e Extent) Height() float64 { return e.Ascent + e.Descent }

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing one across
// sequential calls is efficient.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// Measure shapes s with HarfBuzz and returns its extent. Kerning and
// ligatures are taken into account, so the advance matches what a shaping
// renderer would produce.
func Measure(f *Face, s string) Extent {
	ascent, descent := f.Metrics()
	ext := Extent{Ascent: ascent, Descent: descent, Direction: DetectDirection(s)}
	if s == "" {
		return ext
	}

	runes := []rune(s)
	dir := di.DirectionLTR
	if ext.Direction == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gotext.NewFace(f.source.gotext),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	var adv fixed.Int26_6
	for _, g := range output.Glyphs {
		adv += g.Advance
	}
	ext.Advance = fixedToFloat(adv)
	return ext
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
