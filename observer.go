// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import "image"

// Observer receives change notifications from a State. Callbacks run
// synchronously on the goroutine that caused the change and must not call
// back into the State.
type Observer interface {
	// SurfaceDirty reports that r of the given surface must be redrawn.
	SurfaceDirty(kind SurfaceKind, r image.Rectangle)
	// HistoryChanged reports the new undo and redo availability.
	HistoryChanged(canUndo, canRedo bool)
	// Notice carries a short user-facing message, such as "Nothing to undo".
	Notice(msg string)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnSurfaceDirty   func(kind SurfaceKind, r image.Rectangle)
	OnHistoryChanged func(canUndo, canRedo bool)
	OnNotice         func(msg string)
}

var _ Observer = ObserverFuncs{}

func (f ObserverFuncs) SurfaceDirty(kind SurfaceKind, r image.Rectangle) {
	if f.OnSurfaceDirty != nil {
		f.OnSurfaceDirty(kind, r)
	}
}

func (f ObserverFuncs) HistoryChanged(canUndo, canRedo bool) {
	if f.OnHistoryChanged != nil {
		f.OnHistoryChanged(canUndo, canRedo)
	}
}

func (f ObserverFuncs) Notice(msg string) {
	if f.OnNotice != nil {
		f.OnNotice(msg)
	}
}
