// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a text paragraph.
type Direction uint8

const (
	// DirectionLTR is left-to-right text (Latin, Cyrillic, CJK, ...).
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew, ...).
	DirectionRTL
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// DetectDirection returns the base direction of s, taken from its first
// strongly directional run. Text without strong characters is LTR.
func DetectDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil {
		return DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		switch run.Direction() {
		case bidi.RightToLeft:
			return DirectionRTL
		case bidi.LeftToRight:
			return DirectionLTR
		}
	}
	return DirectionLTR
}
