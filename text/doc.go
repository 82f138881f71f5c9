// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package text renders single lines of text for the paint text tool.
//
// The pipeline separates a heavyweight font Source from lightweight,
// size-specific Faces:
//
//   - Source: a parsed font file, shared across sizes (ParseSource, DefaultSource)
//   - Face: a Source at a pixel size (NewFace)
//   - Measure: shapes a line with HarfBuzz and returns its Extent
//   - Render: rasterizes a line into a Placement positioned on the canvas
//
// # Example usage
//
//	src, err := text.DefaultSource()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face, err := text.NewFace(src, 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := text.Render(face, "Hello", 10, 10, color.Black)
//	draw.Draw(canvas, p.Bounds, p.Image, p.Bounds.Min, draw.Over)
//
// Right-to-left lines are detected with the Unicode bidi algorithm and end
// at the given x instead of starting there.
package text
