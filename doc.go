// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paint implements the editing core of a raster painting program.
//
// # Overview
//
// A [State] owns a stack of [Layer] pixel buffers, a scratch surface that
// receives in-progress strokes, and a bounded undo/redo history of
// [Action] groups. Input arrives as canvas-space pointer positions plus
// draw start/end calls; a periodic [State.Step] smooths the brush toward
// the pointer and advances the active tool.
//
// # Quick Start
//
//	s, err := paint.New(paint.Config{BrushStabilization: 5}, 512, 512)
//	if err != nil {
//	    return err
//	}
//	s.SetPointer(paint.Pt(10, 10))
//	s.Step()
//	s.HandleDrawStart()
//	s.SetPointer(paint.Pt(200, 120))
//	s.Step()
//	s.HandleDrawEnd(false) // flushes scratch into the focused layer
//	s.Undo()
//
// # Surfaces
//
// A renderer stacks four surfaces, bottom to top: the composite of layers
// below focus, the focused layer, the scratch surface and the composite of
// layers above focus. See [SurfaceKind.ZIndex]. The focused surface is
// hidden while an eraser stroke is in progress because scratch then holds
// the erased copy of the focused layer.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers [x, x+1) x [y, y+1)
package paint
