// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"

	"github.com/gogpu/paint/internal/blend"
	intImage "github.com/gogpu/paint/internal/image"
)

// Flatten returns the composite of every visible layer on a transparent
// background. The stroke in progress is not included.
func (s *State) Flatten() *image.RGBA {
	return s.store.Flatten(s.store.size.Rect())
}

// Snapshot returns a copy of the focused layer inside r, clipped to the
// canvas.
func (s *State) Snapshot(r image.Rectangle) *image.RGBA {
	return intImage.Extract(s.store.Focused().Image(), r)
}

// Import draws img over the focused layer with its top-left corner at at,
// as one undoable step. A stroke in progress is committed first. Images
// that miss the canvas record nothing.
func (s *State) Import(img image.Image, at image.Point) error {
	if !s.Attached() {
		return ErrDetached
	}
	if s.draw != nil {
		if err := s.HandleDrawEnd(false); err != nil {
			return err
		}
	}
	src := intImage.ToRGBA(img)
	src = intImage.Translate(src, at.Sub(src.Rect.Min))
	rect := src.Rect.Intersect(s.store.size.Rect())
	if rect.Empty() {
		return nil
	}

	i := s.store.focus
	old := s.Snapshot(rect)
	blend.CompositeOp(s.store.Focused().Image(), src, rect, blend.OpSourceOver, 1)
	s.history.Push([]Action{&UpdateImg{
		Layer:  i,
		Rect:   rect,
		OldImg: old,
		NewImg: s.Snapshot(rect),
	}})
	s.store.markLayer(i, rect)
	s.emitHistory()
	return nil
}
