// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"
	"math"
)

// Boundary is the axis-aligned region touched by an in-progress stroke.
//
// The zero value is not empty; use EmptyBoundary as the starting point.
// Once a boundary has been extended, Left <= Right and Top <= Bottom.
type Boundary struct {
	Left, Top, Right, Bottom float64
}

// EmptyBoundary contains nothing. Extending it by any region yields that region.
var EmptyBoundary = Boundary{
	Left:   math.Inf(1),
	Top:    math.Inf(1),
	Right:  math.Inf(-1),
	Bottom: math.Inf(-1),
}

// BoundaryOf returns the boundary covering r, or EmptyBoundary if r is empty.
func BoundaryOf(r image.Rectangle) Boundary {
	if r.Empty() {
		return EmptyBoundary
	}
	return Boundary{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Right:  float64(r.Max.X),
		Bottom: float64(r.Max.Y),
	}
}

// IsEmpty reports whether b covers nothing.
func (b Boundary) IsEmpty() bool {
	return !(b.Left <= b.Right && b.Top <= b.Bottom)
}

// Extend returns the smallest boundary containing both b and o.
// Extend is commutative and associative, with EmptyBoundary as identity.
func (b Boundary) Extend(o Boundary) Boundary {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Boundary{
		Left:   math.Min(b.Left, o.Left),
		Top:    math.Min(b.Top, o.Top),
		Right:  math.Max(b.Right, o.Right),
		Bottom: math.Max(b.Bottom, o.Bottom),
	}
}

// ExtendRect returns b extended to cover r.
func (b Boundary) ExtendRect(r image.Rectangle) Boundary {
	return b.Extend(BoundaryOf(r))
}

// ExtendPoint returns b extended to cover the square of half-size radius
// centered on p.
func (b Boundary) ExtendPoint(p Point, radius float64) Boundary {
	radius = math.Abs(radius)
	return b.Extend(Boundary{
		Left:   p.X - radius,
		Top:    p.Y - radius,
		Right:  p.X + radius,
		Bottom: p.Y + radius,
	})
}

// Contains reports whether p lies inside b, edges included.
func (b Boundary) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Rect rounds b outward to whole pixels and clips it to a w x h canvas.
// An empty or fully off-canvas boundary yields the zero rectangle.
func (b Boundary) Rect(w, h int) image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	r := image.Rectangle{
		Min: image.Pt(floorClamp(b.Left), floorClamp(b.Top)),
		Max: image.Pt(ceilClamp(b.Right), ceilClamp(b.Bottom)),
	}
	r = r.Intersect(image.Rect(0, 0, w, h))
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// floorClamp and ceilClamp keep huge coordinates inside int range before
// conversion; canvas clipping discards them anyway.
const coordLimit = 1 << 30

func floorClamp(v float64) int {
	return int(math.Max(-coordLimit, math.Min(coordLimit, math.Floor(v))))
}

func ceilClamp(v float64) int {
	return int(math.Max(-coordLimit, math.Min(coordLimit, math.Ceil(v))))
}
