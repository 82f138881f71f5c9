// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"slices"

	"github.com/gogpu/paint/internal/blend"
	intImage "github.com/gogpu/paint/internal/image"
)

// Apply performs a. Out-of-range indices are clamped.
func (s *Store) Apply(a Action) {
	Logger().Debug("paint: apply", "action", a)
	switch a := a.(type) {
	case *UpdateImg:
		s.applyUpdateImg(a)
	case *NewLayer:
		s.applyNewLayer(a)
	case *UpdateLayerInfo:
		s.applyUpdateLayerInfo(a)
	case *DeleteLayer:
		s.applyDeleteLayer(a)
	case *FocusLayer:
		s.applyFocusLayer(a)
	case *MergeLayer:
		s.applyMergeLayer(a)
	case *ChangeCanvasSize:
		s.applyChangeCanvasSize(a)
	}
}

// Revert undoes a previous Apply of a. The store must be in the state
// Apply left it in, apart from edits that were themselves reverted.
func (s *Store) Revert(a Action) {
	Logger().Debug("paint: revert", "action", a)
	switch a := a.(type) {
	case *UpdateImg:
		s.revertUpdateImg(a)
	case *NewLayer:
		s.revertNewLayer(a)
	case *UpdateLayerInfo:
		s.revertUpdateLayerInfo(a)
	case *DeleteLayer:
		s.revertDeleteLayer(a)
	case *FocusLayer:
		s.revertFocusLayer(a)
	case *MergeLayer:
		s.revertMergeLayer(a)
	case *ChangeCanvasSize:
		s.revertChangeCanvasSize(a)
	}
}

func (s *Store) applyUpdateImg(a *UpdateImg) {
	if a.NewImg == nil {
		return
	}
	i := s.clamp(a.Layer)
	intImage.Put(s.layers[i].Image(), a.NewImg)
	s.markLayer(i, a.NewImg.Rect)
}

func (s *Store) revertUpdateImg(a *UpdateImg) {
	i := s.clamp(a.Layer)
	img := s.layers[i].Image()
	if a.NewImg == nil {
		a.NewImg = intImage.Extract(img, a.Rect)
	}
	intImage.Put(img, a.OldImg)
	s.markLayer(i, a.Rect)
}

func (s *Store) applyNewLayer(a *NewLayer) {
	if a.layer == nil || a.layer.Bounds() != s.size.Rect() {
		l, err := newLayer(a.Name, s.size)
		if err != nil {
			Logger().Warn("paint: new layer", "err", err)
			return
		}
		a.layer = l
	}
	a.at = min(max(a.Index, 0), len(s.layers))
	s.layers = slices.Insert(s.layers, a.at, a.layer)
	if a.at <= s.focus {
		s.focus++
	}
	s.rebuild()
}

func (s *Store) revertNewLayer(a *NewLayer) {
	i := slices.Index(s.layers, a.layer)
	if i < 0 || len(s.layers) == 1 {
		return
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	if s.focus > i {
		s.focus--
	}
	s.focus = min(s.focus, len(s.layers)-1)
	s.rebuild()
}

func (s *Store) applyUpdateLayerInfo(a *UpdateLayerInfo) {
	a.at = s.clamp(a.Index)
	l := s.layers[a.at]
	a.OldInfo = l.Info
	l.Info = a.Info.normalized()
	s.rebuild()
}

func (s *Store) revertUpdateLayerInfo(a *UpdateLayerInfo) {
	l := s.Layer(a.at)
	if l == nil {
		return
	}
	l.Info = a.OldInfo
	s.rebuild()
}

func (s *Store) applyDeleteLayer(a *DeleteLayer) {
	a.at = s.clamp(a.Index)
	if a.Layer == nil {
		a.Layer = s.layers[a.at]
	}
	a.prevFocus = s.focus
	a.FocusChanged = a.at == s.focus
	a.CreatedEmpty = false
	s.layers = slices.Delete(s.layers, a.at, a.at+1)

	switch {
	case len(s.layers) == 0:
		if a.created == nil || a.created.Bounds() != s.size.Rect() {
			l, err := newLayer(layerName(1), s.size)
			if err != nil {
				Logger().Warn("paint: replacement layer", "err", err)
				return
			}
			a.created = l
		}
		s.layers = append(s.layers, a.created)
		a.CreatedEmpty = true
		s.focus = 0
	case a.at < s.focus:
		s.focus--
	case a.at == s.focus:
		s.focus = min(a.at, len(s.layers)-1)
	}
	s.rebuild()
}

func (s *Store) revertDeleteLayer(a *DeleteLayer) {
	if a.Layer == nil {
		return
	}
	if a.CreatedEmpty {
		s.layers = slices.DeleteFunc(s.layers, func(l *Layer) bool { return l == a.created })
	}
	s.layers = slices.Insert(s.layers, min(a.at, len(s.layers)), a.Layer)
	s.focus = min(max(a.prevFocus, 0), len(s.layers)-1)
	s.rebuild()
}

func (s *Store) applyFocusLayer(a *FocusLayer) {
	a.OldIndex = s.focus
	s.focus = s.clamp(a.Index)
	s.rebuild()
}

func (s *Store) revertFocusLayer(a *FocusLayer) {
	s.focus = s.clamp(a.OldIndex)
	s.rebuild()
}

// mergedDest is the index of the destination layer once src is removed.
func (a *MergeLayer) mergedDest() int {
	if a.Dest > a.Src {
		return a.Dest - 1
	}
	return a.Dest
}

func (s *Store) applyMergeLayer(a *MergeLayer) {
	n := len(s.layers)
	if a.Dest == a.Src || a.Dest < 0 || a.Src < 0 || a.Dest >= n || a.Src >= n {
		Logger().Warn("paint: merge ignored", "dest", a.Dest, "src", a.Src, "layers", n)
		a.applied = false
		return
	}
	if a.SrcLayer == nil {
		a.SrcLayer = s.layers[a.Src]
	}
	dst := s.layers[a.Dest].Image()
	if a.DestOldImage == nil {
		a.DestOldImage = intImage.Clone(dst)
	}
	if src := a.SrcLayer; src.Info.Visible {
		blend.CompositeOp(dst, src.Image(), dst.Rect, blend.OpSourceOver, src.Info.Opacity)
	}

	a.prevFocus = s.focus
	s.layers = slices.Delete(s.layers, a.Src, a.Src+1)
	switch {
	case s.focus == a.Src:
		s.focus = a.mergedDest()
	case s.focus > a.Src:
		s.focus--
	}
	a.applied = true
	s.rebuild()
}

func (s *Store) revertMergeLayer(a *MergeLayer) {
	if !a.applied {
		return
	}
	d := s.Layer(a.mergedDest())
	if d == nil {
		return
	}
	intImage.Put(d.Image(), a.DestOldImage)
	s.layers = slices.Insert(s.layers, min(a.Src, len(s.layers)), a.SrcLayer)
	s.focus = min(max(a.prevFocus, 0), len(s.layers)-1)
	a.applied = false
	s.rebuild()
}

func (s *Store) applyChangeCanvasSize(a *ChangeCanvasSize) {
	if !a.Next.Valid() {
		Logger().Warn("paint: canvas resize ignored", "size", a.Next)
		a.applied = false
		return
	}
	if !a.Prev.Valid() {
		a.Prev = s.size
	}
	if a.OldLayers == nil {
		a.OldLayers = slices.Clone(s.layers)
	}
	if a.NewLayers == nil {
		a.NewLayers = make([]*Layer, 0, len(a.OldLayers))
		for _, l := range a.OldLayers {
			nl, err := l.reanchored(a.Next)
			if err != nil {
				Logger().Warn("paint: canvas resize", "err", err)
				a.NewLayers = nil
				return
			}
			a.NewLayers = append(a.NewLayers, nl)
		}
	}
	s.layers = slices.Clone(a.NewLayers)
	s.focus = min(s.focus, len(s.layers)-1)
	a.applied = true
	s.resize(a.Next)
}

func (s *Store) revertChangeCanvasSize(a *ChangeCanvasSize) {
	if !a.applied {
		return
	}
	s.layers = slices.Clone(a.OldLayers)
	s.focus = min(s.focus, len(s.layers)-1)
	a.applied = false
	s.resize(a.Prev)
}
