// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"math"
	"time"
)

// Cursor tracks the raw pointer position and the smoothed brush position.
type Cursor struct {
	// Real is the last pointer position reported by the input layer.
	Real Point
	// Brush trails Real while drawing and snaps to it otherwise.
	Brush Point
}

// FollowFactor converts a stabilization level into the per-step follow
// factor 0.99^level. Level 0 yields 1, which makes the brush snap.
func FollowFactor(stabilization int) float64 {
	return math.Pow(0.99, float64(stabilization))
}

// Follow advances Brush toward Real over dt.
//
// When not drawing, Brush snaps to Real. While drawing, the remaining
// distance shrinks by (1-factor)^(10*dt/1s), so the filter is frame-rate
// independent: two steps of dt/2 land where one step of dt does.
func (c *Cursor) Follow(dt time.Duration, factor float64, drawing bool) {
	if !drawing {
		c.Brush = c.Real
		return
	}
	if dt <= 0 {
		return
	}
	r := math.Pow(1-factor, 10*dt.Seconds())
	c.Brush = PosOnLine(c.Real, c.Brush, r)
}
