// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/export"
)

// Script is a recorded editing session.
//
//	width = 256
//	height = 256
//
//	[[op]]
//	kind = "stroke"
//	tool = "brush"
//	color = "#d03030"
//	size = 12
//	points = [[20, 20], [120, 80], [200, 40]]
//
//	[[op]]
//	kind = "undo"
type Script struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	Ops    []Op `toml:"op"`
}

// Op is one scripted step. Fields other than Kind apply to some kinds only.
type Op struct {
	// Kind is stroke, cancel, undo, redo, layer, focus, delete, merge,
	// info, resize or import.
	Kind   string       `toml:"kind"`
	Tool   string       `toml:"tool"`
	Color  string       `toml:"color"`
	Size   float64      `toml:"size"`
	Text   string       `toml:"text"`
	Points [][2]float64 `toml:"points"`
	Name   string       `toml:"name"`
	Index  int          `toml:"index"`
	// Width and Height are the new canvas size for resize.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Visible, Opacity and Blend update layer metadata for info.
	Visible *bool    `toml:"visible"`
	Opacity *float64 `toml:"opacity"`
	Blend   string   `toml:"blend"`
	// Path and At locate an image for import.
	Path string `toml:"path"`
	At   [2]int `toml:"at"`
}

// LoadScript decodes a TOML script.
func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("script: canvas size %dx%d: %w", s.Width, s.Height, paint.ErrInvalidDimensions)
	}
	return &s, nil
}

// settleSteps is the number of extra steps run at the end of a stroke so
// that a stabilized brush reaches the last point.
const settleSteps = 30

// Replay runs every op of sc against s, stepping the state as a scheduler
// would at the configured frame rate.
func Replay(s *paint.State, sc *Script) error {
	frame := time.Second / time.Duration(s.Config().FPS)
	for i, op := range sc.Ops {
		if err := replayOp(s, op, frame); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

func replayOp(s *paint.State, op Op, frame time.Duration) error {
	switch op.Kind {
	case "stroke", "cancel":
		return replayStroke(s, op, frame, op.Kind == "cancel")
	case "undo":
		s.Undo()
		return nil
	case "redo":
		s.Redo()
		return nil
	case "layer":
		return s.AddLayer(op.Name)
	case "focus":
		return s.FocusLayer(op.Index)
	case "delete":
		return s.DeleteLayer(op.Index)
	case "merge":
		return s.MergeDown(op.Index)
	case "info":
		return replayInfo(s, op)
	case "resize":
		return s.Resize(op.Width, op.Height)
	case "import":
		return replayImport(s, op)
	default:
		return fmt.Errorf("unknown op kind %q", op.Kind)
	}
}

func replayStroke(s *paint.State, op Op, frame time.Duration, cancel bool) error {
	if len(op.Points) == 0 {
		return fmt.Errorf("stroke without points")
	}
	ts := s.ToolSettings()
	if op.Tool != "" {
		t, ok := paint.ParseTool(op.Tool)
		if !ok {
			return fmt.Errorf("unknown tool %q", op.Tool)
		}
		ts.Tool = t
	}
	if op.Size > 0 {
		ts.BrushSize = op.Size
		ts.TextSize = op.Size
	}
	if op.Text != "" {
		ts.Text = op.Text
	}
	if err := s.SetToolSettings(ts); err != nil {
		return err
	}
	if op.Color != "" {
		c, err := parseColor(op.Color)
		if err != nil {
			return err
		}
		s.SetColor(c)
	}

	first := op.Points[0]
	s.SetPointer(paint.Pt(first[0], first[1]))
	s.Advance(frame)
	if err := s.HandleDrawStart(); err != nil {
		return err
	}
	for _, p := range op.Points[1:] {
		s.SetPointer(paint.Pt(p[0], p[1]))
		s.Advance(frame)
	}
	for i := 0; i < settleSteps; i++ {
		s.Advance(frame)
	}
	return s.HandleDrawEnd(cancel)
}

func replayInfo(s *paint.State, op Op) error {
	l := s.Store().Layer(op.Index)
	if l == nil {
		return fmt.Errorf("%w: %d", paint.ErrLayerIndex, op.Index)
	}
	info := l.Info
	if op.Name != "" {
		info.Name = op.Name
	}
	if op.Visible != nil {
		info.Visible = *op.Visible
	}
	if op.Opacity != nil {
		info.Opacity = *op.Opacity
	}
	if op.Blend != "" {
		m, ok := paint.ParseBlendMode(op.Blend)
		if !ok {
			return fmt.Errorf("unknown blend mode %q", op.Blend)
		}
		info.BlendMode = m
	}
	return s.SetLayerInfo(op.Index, info)
}

func replayImport(s *paint.State, op Op) error {
	f, err := os.Open(op.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := export.Decode(f)
	if err != nil {
		return err
	}
	return s.Import(img, image.Pt(op.At[0], op.At[1]))
}

// parseColor accepts #rgb, #rrggbb and #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
