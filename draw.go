// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"
	"image/color"

	"github.com/gogpu/paint/internal/brush"
	intImage "github.com/gogpu/paint/internal/image"
	"github.com/gogpu/paint/text"
)

// StepFunc advances the active tool. initial is true for the step run at
// draw start and for the final step run at draw end.
type StepFunc func(s *State, initial bool)

// DrawState is the in-progress stroke. It exists only between
// HandleDrawStart and HandleDrawEnd.
type DrawState struct {
	step StepFunc

	// Start is the brush position at draw start.
	Start Point
	// Last is the brush position at the previous step.
	Last Point
	// Color is the stroke color; the spoid tool updates it as it samples.
	Color color.NRGBA
	// InitColor is the palette color at draw start.
	InitColor color.NRGBA
	Tool      Tool

	painted bool
	// seeded is the scratch area an eraser stroke has copied from the
	// focused layer.
	seeded image.Rectangle
	// textRect is the scratch area of the last text render.
	textRect image.Rectangle
}

// DrawState returns a copy of the stroke in progress.
func (s *State) DrawState() (DrawState, bool) {
	if s.draw == nil {
		return DrawState{}, false
	}
	return *s.draw, true
}

// Drawing reports whether a stroke is in progress.
func (s *State) Drawing() bool { return s.draw != nil }

func stepFor(t Tool) StepFunc {
	switch t {
	case ToolBrush, ToolEraser:
		return stepShape
	case ToolSpoid:
		return stepSpoid
	case ToolText:
		return stepText
	default:
		return func(*State, bool) {}
	}
}

// HandleDrawStart begins a stroke with the current tool at the brush
// position. A stroke already in progress is committed first.
func (s *State) HandleDrawStart() error {
	if !s.Attached() {
		Logger().Warn("paint: draw start while detached")
		return ErrDetached
	}
	if s.draw != nil {
		if err := s.HandleDrawEnd(false); err != nil {
			return err
		}
	}
	pos := s.cursor.Brush
	s.draw = &DrawState{
		step:      stepFor(s.tools.Tool),
		Start:     pos,
		Last:      pos,
		Color:     s.palette.Current,
		InitColor: s.palette.Current,
		Tool:      s.tools.Tool,
	}
	s.draw.step(s, true)
	return nil
}

// HandleDrawEnd finishes the stroke in progress. Unless cancelled, the
// tool takes a final step and image-modifying tools flush the scratch
// surface into the focused layer. A cancelled stroke leaves layers and
// history untouched.
func (s *State) HandleDrawEnd(cancelled bool) error {
	d := s.draw
	if d == nil {
		return nil
	}
	if !s.Attached() {
		s.draw = nil
		s.bd = EmptyBoundary
		return ErrDetached
	}
	if !cancelled {
		d.step(s, true)
	}
	s.draw = nil

	if cancelled {
		s.discardStroke(d)
		return nil
	}
	if d.Tool.ModifiesImage() {
		return s.flush(d.Tool)
	}
	return nil
}

// stepShape rasterises the segment from the last brush position to the
// current one, clipped to the canvas. Brush strokes paint onto scratch; eraser strokes punch
// holes into a copy of the focused layer held in scratch.
func stepShape(s *State, _ bool) {
	d := s.draw
	to := s.cursor.Brush
	if d.painted && to == d.Last {
		return
	}
	from := d.Last
	d.Last = to
	d.painted = true

	c := color.Color(d.Color)
	if d.Tool.Erases() {
		c = color.Black
	}
	canvas := s.store.size.Rect()
	stamp := brush.Segment(from.X, from.Y, to.X, to.Y, s.tools.BrushSize, c, canvas)
	if stamp.Rect.Empty() {
		return
	}

	scratch := s.store.scratch
	if d.Tool.Erases() {
		s.seedEraser(stamp.Rect)
		scratch.Composite(stamp, OpDestinationOut)
	} else {
		scratch.Composite(stamp, OpSourceOver)
	}
	s.bd = s.bd.ExtendRect(stamp.Rect)
	s.store.notify(SurfaceScratch, stamp.Rect)
}

// seedEraser copies the focused layer into the scratch area newly covered
// by an eraser stroke and hides the focused surface, so that scratch shows
// the erased result.
func (s *State) seedEraser(stamp image.Rectangle) {
	d := s.draw
	size := s.store.size
	want := s.bd.ExtendRect(stamp).Rect(size.Width, size.Height)
	if want.Empty() {
		return
	}
	focused := s.store.Focused().Image()
	for _, part := range subtractRect(want, d.seeded) {
		s.store.scratch.Write(intImage.Extract(focused, part))
	}
	d.seeded = want

	if !s.store.focusHidden {
		s.store.focusHidden = true
		s.store.notify(SurfaceFocused, size.Rect())
	}
}

// subtractRect returns up to four rectangles covering a minus b.
func subtractRect(a, b image.Rectangle) []image.Rectangle {
	b = b.Intersect(a)
	if b.Empty() {
		return []image.Rectangle{a}
	}
	var out []image.Rectangle
	if b.Min.Y > a.Min.Y {
		out = append(out, image.Rect(a.Min.X, a.Min.Y, a.Max.X, b.Min.Y))
	}
	if b.Max.Y < a.Max.Y {
		out = append(out, image.Rect(a.Min.X, b.Max.Y, a.Max.X, a.Max.Y))
	}
	if b.Min.X > a.Min.X {
		out = append(out, image.Rect(a.Min.X, b.Min.Y, b.Min.X, b.Max.Y))
	}
	if b.Max.X < a.Max.X {
		out = append(out, image.Rect(b.Max.X, b.Min.Y, a.Max.X, b.Max.Y))
	}
	return out
}

// stepSpoid samples the flattened canvas under the brush into the palette.
// Fully transparent pixels are ignored.
func stepSpoid(s *State, _ bool) {
	p := s.cursor.Brush.Pixel()
	if !p.In(s.store.size.Rect()) {
		return
	}
	px := s.store.Flatten(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	c := color.NRGBAModel.Convert(px.RGBAAt(p.X, p.Y)).(color.NRGBA)
	if c.A == 0 {
		return
	}
	s.draw.Color = c
	s.palette.Current = c
}

// stepText renders the configured text at the brush position, replacing
// the previous render in scratch.
func stepText(s *State, _ bool) {
	d := s.draw
	str := s.tools.Text
	pos := s.cursor.Brush
	if str == "" || (d.painted && pos == d.Last) {
		return
	}
	f, err := s.textFace()
	if err != nil {
		Logger().Warn("paint: text tool", "err", err)
		return
	}
	pl := text.Render(f, str, pos.X, pos.Y, d.Color)

	scratch := s.store.scratch
	canvas := s.store.size.Rect()
	if !d.textRect.Empty() {
		scratch.Clear(d.textRect)
		s.store.notify(SurfaceScratch, d.textRect.Intersect(canvas))
	}
	scratch.Composite(pl.Image, OpSourceOver)
	d.textRect = pl.Bounds
	d.Last = pos
	d.painted = true

	s.bd = s.bd.ExtendRect(pl.Bounds)
	s.store.notify(SurfaceScratch, pl.Bounds.Intersect(canvas))
}
