// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"

	"github.com/gogpu/paint/internal/blend"
	intImage "github.com/gogpu/paint/internal/image"
)

// Flush commits the scratch surface inside the stroke boundary to the
// focused layer and records the edit as one undoable step. It is a no-op
// when the boundary is empty. HandleDrawEnd calls it for image-modifying
// tools.
func (s *State) Flush() error {
	tool := s.tools.Tool
	if s.draw != nil {
		tool = s.draw.Tool
	}
	return s.flush(tool)
}

// flush commits scratch using the eraser rules when tool erases: the
// rectangle of the focused layer is cleared first, since scratch holds the
// erased copy of it.
func (s *State) flush(tool Tool) error {
	if s.bd.IsEmpty() {
		return nil
	}
	if !s.Attached() {
		Logger().Warn("paint: flush while detached")
		return ErrDetached
	}

	size := s.store.size
	rect := s.bd.Rect(size.Width, size.Height)
	if rect.Empty() {
		s.resetStroke(rect)
		return nil
	}

	i := s.store.focus
	layer := s.store.Focused().Image()
	old := intImage.Extract(layer, rect)
	if tool.Erases() {
		intImage.Clear(layer, rect)
	}
	blend.CompositeOp(layer, s.store.scratch.Snapshot(rect), rect, blend.OpSourceOver, 1)

	s.history.Push([]Action{&UpdateImg{
		Layer:  i,
		Rect:   rect,
		OldImg: old,
		NewImg: intImage.Extract(layer, rect),
	}})
	Logger().Debug("paint: flush", "layer", i, "rect", rect, "tool", tool)

	s.resetStroke(rect)
	s.store.markLayer(i, rect)
	s.emitHistory()
	return nil
}

// discardStroke drops an uncommitted stroke.
func (s *State) discardStroke(d *DrawState) {
	if d.Tool == ToolSpoid {
		s.palette.Current = d.InitColor
	}
	size := s.store.size
	s.resetStroke(s.bd.Rect(size.Width, size.Height))
}

// resetStroke clears scratch inside r, empties the boundary and shows the
// focused surface again.
func (s *State) resetStroke(r image.Rectangle) {
	if !r.Empty() {
		s.store.scratch.Clear(r)
		s.store.notify(SurfaceScratch, r)
	}
	s.bd = EmptyBoundary
	if s.store.focusHidden {
		s.store.focusHidden = false
		s.store.notify(SurfaceFocused, s.store.size.Rect())
	}
}
