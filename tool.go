// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image/color"
)

// Tool is the active painting tool.
type Tool uint8

const (
	ToolBrush Tool = iota
	ToolEraser
	// ToolSpoid picks a color from the canvas.
	ToolSpoid
	ToolText
	// ToolMove leaves the canvas untouched; the caller pans instead.
	ToolMove
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	case ToolSpoid:
		return "spoid"
	case ToolText:
		return "text"
	case ToolMove:
		return "move"
	default:
		return fmt.Sprintf("Tool(%d)", uint8(t))
	}
}

// ParseTool returns the tool named s, as printed by Tool.String.
func ParseTool(s string) (Tool, bool) {
	for t := ToolBrush; t <= ToolMove; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// ModifiesImage reports whether strokes of t are flushed into the focused
// layer when they end.
func (t Tool) ModifiesImage() bool {
	switch t {
	case ToolBrush, ToolEraser, ToolText:
		return true
	default:
		return false
	}
}

// Erases reports whether t removes pixels. Eraser strokes replace the
// flushed rectangle instead of blending over it.
func (t Tool) Erases() bool {
	return t == ToolEraser
}

// Palette holds the current drawing color.
type Palette struct {
	Current color.NRGBA
}

// ToolSettings holds the tool selection and per-tool parameters.
type ToolSettings struct {
	Tool Tool
	// BrushSize is the stroke width in pixels for brush and eraser.
	BrushSize float64
	// Text is the string placed by the text tool.
	Text string
	// TextSize is the font size in pixels for the text tool.
	TextSize float64
}

// DefaultToolSettings returns a 10px brush and 24px text.
func DefaultToolSettings() ToolSettings {
	return ToolSettings{Tool: ToolBrush, BrushSize: 10, TextSize: 24}
}
