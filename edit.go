// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import "fmt"

func (s *State) checkIndex(i int) error {
	if i < 0 || i >= s.store.Len() {
		return fmt.Errorf("%w: %d of %d", ErrLayerIndex, i, s.store.Len())
	}
	return nil
}

// AddLayer inserts a transparent layer above the focused one and focuses
// it, as one undoable step. An empty name is replaced by "Layer N".
func (s *State) AddLayer(name string) error {
	if name == "" {
		name = layerName(s.store.Len() + 1)
	}
	at := s.store.focus + 1
	return s.ExecuteAction(
		&NewLayer{Index: at, Name: name},
		&FocusLayer{Index: at},
	)
}

// DeleteLayer removes layer i. Deleting the only layer replaces it with a
// transparent one.
func (s *State) DeleteLayer(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	return s.ExecuteAction(&DeleteLayer{Index: i})
}

// FocusLayer focuses layer i. Focusing the focused layer records nothing.
func (s *State) FocusLayer(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if i == s.store.focus {
		return nil
	}
	return s.ExecuteAction(&FocusLayer{Index: i})
}

// SetLayerInfo replaces the metadata of layer i.
func (s *State) SetLayerInfo(i int, info LayerInfo) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	return s.ExecuteAction(&UpdateLayerInfo{Index: i, Info: info})
}

// MergeDown composites layer i onto layer i-1 and removes it.
func (s *State) MergeDown(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if i == 0 {
		return fmt.Errorf("%w: no layer below %d", ErrLayerIndex, i)
	}
	return s.ExecuteAction(&MergeLayer{Dest: i - 1, Src: i})
}

// Resize changes the canvas size, keeping the top-left corner of every
// layer in place.
func (s *State) Resize(width, height int) error {
	next := Size{Width: width, Height: height}
	if !next.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidDimensions, next)
	}
	if next == s.store.size {
		return nil
	}
	return s.ExecuteAction(&ChangeCanvasSize{Next: next})
}
