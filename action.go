// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image"
)

// Action is one reversible edit of a Store. Actions are grouped into
// history entries; a group is undone and redone as a unit.
//
// Fields left zero when an action is first applied are captured from the
// store, so that the action can later be reverted from its own fields.
// An action must not be shared between groups.
type Action interface {
	fmt.Stringer
	action()
}

// UpdateImg replaces a rectangle of one layer.
type UpdateImg struct {
	// Layer is the index of the layer that was focused when the edit happened.
	Layer int
	// Rect is the edited area, in canvas coordinates.
	Rect image.Rectangle
	// OldImg holds the pixels of Rect before the edit.
	OldImg *image.RGBA
	// NewImg holds the pixels of Rect after the edit. When nil, applying is
	// a no-op and the first revert captures it.
	NewImg *image.RGBA
}

// NewLayer inserts a transparent layer.
type NewLayer struct {
	// Index is the insertion position, clamped to [0, layer count].
	Index int
	Name  string

	layer *Layer
	at    int
}

// UpdateLayerInfo replaces the metadata of a layer.
type UpdateLayerInfo struct {
	Index int
	// OldInfo is captured on apply.
	OldInfo LayerInfo
	Info    LayerInfo

	at int
}

// DeleteLayer removes a layer. Deleting the last layer leaves one new
// transparent layer in its place.
type DeleteLayer struct {
	Index int
	// Layer is the removed layer, captured on apply.
	Layer *Layer
	// FocusChanged reports that the removed layer was focused.
	FocusChanged bool
	// CreatedEmpty reports that a replacement layer was created.
	CreatedEmpty bool

	created   *Layer
	prevFocus int
	at        int
}

// FocusLayer moves focus to another layer.
type FocusLayer struct {
	Index int
	// OldIndex is captured on apply.
	OldIndex int
}

// MergeLayer composites layer Src onto layer Dest and removes Src.
type MergeLayer struct {
	Dest, Src int
	// SrcLayer and DestOldImage are captured on apply.
	SrcLayer     *Layer
	DestOldImage *image.RGBA

	prevFocus int
	applied   bool
}

// ChangeCanvasSize resizes every layer, keeping the top-left corner.
type ChangeCanvasSize struct {
	// Prev is captured on apply.
	Prev Size
	Next Size
	// OldLayers and NewLayers are captured on apply.
	OldLayers []*Layer
	NewLayers []*Layer

	applied bool
}

func (*UpdateImg) action()        {}
func (*NewLayer) action()         {}
func (*UpdateLayerInfo) action()  {}
func (*DeleteLayer) action()      {}
func (*FocusLayer) action()       {}
func (*MergeLayer) action()       {}
func (*ChangeCanvasSize) action() {}

func (a *UpdateImg) String() string {
	return fmt.Sprintf("updateImg(layer=%d, rect=%v)", a.Layer, a.Rect)
}

func (a *NewLayer) String() string {
	return fmt.Sprintf("newLayer(index=%d, name=%q)", a.Index, a.Name)
}

func (a *UpdateLayerInfo) String() string {
	return fmt.Sprintf("updateLayerInfo(index=%d)", a.Index)
}

func (a *DeleteLayer) String() string {
	return fmt.Sprintf("deleteLayer(index=%d)", a.Index)
}

func (a *FocusLayer) String() string {
	return fmt.Sprintf("focusLayer(index=%d, old=%d)", a.Index, a.OldIndex)
}

func (a *MergeLayer) String() string {
	return fmt.Sprintf("mergeLayer(dest=%d, src=%d)", a.Dest, a.Src)
}

func (a *ChangeCanvasSize) String() string {
	return fmt.Sprintf("changeCanvasSize(%v -> %v)", a.Prev, a.Next)
}
