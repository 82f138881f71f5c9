// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

// View maps canvas space to a viewport: screen = canvas*Zoom + Scroll.
type View struct {
	Zoom    float64
	ScrollX float64
	ScrollY float64
}

// FitView returns the view that shows the whole canvas centered inside a
// rootW x rootH viewport. A degenerate viewport yields zoom 1.
func FitView(canvas Size, rootW, rootH float64) View {
	if !canvas.Valid() || rootW <= 0 || rootH <= 0 {
		return View{Zoom: 1}
	}
	w, h := float64(canvas.Width), float64(canvas.Height)
	zoom := min(rootW/w, rootH/h)
	return View{
		Zoom:    zoom,
		ScrollX: (rootW - w*zoom) / 2,
		ScrollY: (rootH - h*zoom) / 2,
	}
}

// ToCanvas converts a viewport position to canvas space.
func (v View) ToCanvas(p Point) Point {
	if v.Zoom == 0 {
		return p
	}
	return Point{X: (p.X - v.ScrollX) / v.Zoom, Y: (p.Y - v.ScrollY) / v.Zoom}
}

// ToScreen converts a canvas position to viewport space.
func (v View) ToScreen(p Point) Point {
	return Point{X: p.X*v.Zoom + v.ScrollX, Y: p.Y*v.Zoom + v.ScrollY}
}

// FitView fits the canvas of s into a rootW x rootH viewport.
func (s *State) FitView(rootW, rootH float64) View {
	return FitView(s.store.size, rootW, rootH)
}
