// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/paint/internal/blend"
)

// Store owns the committed layers, the focus index and the non-layer
// surfaces. All edits of committed pixels go through Apply and Revert.
//
// A Store always holds at least one layer and its focus always names one
// of them.
type Store struct {
	size   Size
	layers []*Layer
	focus  int

	factory SurfaceFactory
	below   Surface
	scratch Surface
	above   Surface

	focusHidden bool
	onDirty     func(kind SurfaceKind, r image.Rectangle)
}

// NewStore creates a detached store holding one transparent layer.
// A nil factory selects BufferFactory.
func NewStore(size Size, factory SurfaceFactory) (*Store, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, size)
	}
	if factory == nil {
		factory = BufferFactory
	}
	l, err := newLayer(layerName(1), size)
	if err != nil {
		return nil, err
	}
	return &Store{
		size:    size,
		layers:  []*Layer{l},
		factory: factory,
	}, nil
}

func layerName(n int) string {
	return fmt.Sprintf("Layer %d", n)
}

// Size returns the canvas size.
func (s *Store) Size() Size { return s.size }

// Len returns the number of layers.
func (s *Store) Len() int { return len(s.layers) }

// Layer returns the layer at index i, bottom first, or nil if i is out of range.
func (s *Store) Layer(i int) *Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// Layers returns the layers bottom first. The slice is a copy; the layers
// are not.
func (s *Store) Layers() []*Layer {
	return slices.Clone(s.layers)
}

// Focus returns the focused layer index.
func (s *Store) Focus() int { return s.focus }

// Focused returns the focused layer.
func (s *Store) Focused() *Layer { return s.layers[s.focus] }

// FocusedVisible reports whether a renderer should show the focused
// surface. It is false for hidden layers and during eraser strokes.
func (s *Store) FocusedVisible() bool {
	return !s.focusHidden && s.Focused().Info.Visible
}

// Attached reports whether the non-layer surfaces exist.
func (s *Store) Attached() bool { return s.scratch != nil }

// Attach creates the below, scratch and above surfaces and renders the
// composites. Attaching an attached store is a no-op.
func (s *Store) Attach() error {
	if s.Attached() {
		return nil
	}
	var made [len(SurfaceKinds)]Surface
	for _, kind := range []SurfaceKind{SurfaceBelow, SurfaceScratch, SurfaceAbove} {
		surf, err := s.factory(kind, s.size.Width, s.size.Height)
		if err != nil {
			return fmt.Errorf("paint: create %v surface: %w", kind, err)
		}
		if surf == nil {
			return fmt.Errorf("%w: %v", ErrNilSurface, kind)
		}
		made[kind] = surf
	}
	s.below, s.scratch, s.above = made[SurfaceBelow], made[SurfaceScratch], made[SurfaceAbove]
	Logger().Info("paint: surfaces attached", "size", s.size)
	s.rebuild()
	return nil
}

// Detach releases the non-layer surfaces. Layers are kept.
func (s *Store) Detach() {
	if !s.Attached() {
		return
	}
	s.below, s.scratch, s.above = nil, nil, nil
	s.focusHidden = false
	Logger().Info("paint: surfaces detached")
}

// Surface returns the surface of the given kind, or nil while detached.
func (s *Store) Surface(kind SurfaceKind) Surface {
	if !s.Attached() {
		return nil
	}
	switch kind {
	case SurfaceBelow:
		return s.below
	case SurfaceFocused:
		return s.Focused().buf
	case SurfaceScratch:
		return s.scratch
	case SurfaceAbove:
		return s.above
	default:
		return nil
	}
}

// Flatten composites every visible layer inside r onto a transparent
// image, honoring opacity and blend mode.
func (s *Store) Flatten(r image.Rectangle) *image.RGBA {
	return composite(s.layers, r.Intersect(s.size.Rect()))
}

func composite(layers []*Layer, r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(r)
	for _, l := range layers {
		if !l.Info.Visible || l.Info.Opacity <= 0 {
			continue
		}
		blend.CompositeMode(out, l.Image(), r, l.Info.BlendMode, l.Info.Opacity)
	}
	return out
}

// clamp returns i limited to a valid layer index, logging when it moved.
func (s *Store) clamp(i int) int {
	c := min(max(i, 0), len(s.layers)-1)
	if c != i {
		Logger().Warn("paint: layer index clamped", "index", i, "clamped", c)
	}
	return c
}

func (s *Store) notify(kind SurfaceKind, r image.Rectangle) {
	if !s.Attached() || r.Empty() || s.onDirty == nil {
		return
	}
	s.onDirty(kind, r)
}

// markLayer reports that layer i changed inside r, re-rendering the
// composite that contains it.
func (s *Store) markLayer(i int, r image.Rectangle) {
	r = r.Intersect(s.size.Rect())
	if r.Empty() {
		return
	}
	switch {
	case i == s.focus:
		s.notify(SurfaceFocused, r)
	case i < s.focus:
		s.recomposite(SurfaceBelow, r)
	default:
		s.recomposite(SurfaceAbove, r)
	}
}

func (s *Store) recomposite(kind SurfaceKind, r image.Rectangle) {
	if !s.Attached() {
		return
	}
	switch kind {
	case SurfaceBelow:
		s.below.Write(composite(s.layers[:s.focus], r))
	case SurfaceAbove:
		s.above.Write(composite(s.layers[s.focus+1:], r))
	default:
		return
	}
	s.notify(kind, r)
}

// rebuild re-renders both composites after a change of layer order, focus,
// metadata or size.
func (s *Store) rebuild() {
	full := s.size.Rect()
	s.recomposite(SurfaceBelow, full)
	s.notify(SurfaceFocused, full)
	s.recomposite(SurfaceAbove, full)
}

func (s *Store) resize(size Size) {
	s.size = size
	if s.Attached() {
		for _, surf := range []Surface{s.below, s.scratch, s.above} {
			if err := surf.Resize(size.Width, size.Height); err != nil {
				Logger().Warn("paint: surface resize failed", "size", size, "err", err)
			}
		}
		s.notify(SurfaceScratch, size.Rect())
	}
	s.rebuild()
}
