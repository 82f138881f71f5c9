// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/BurntSushi/toml"
)

// ClickAction selects what a click-and-drag on the canvas does.
type ClickAction string

const (
	// ClickMoveTouchOnly draws with a pen or mouse and pans with touch.
	// It is the default.
	ClickMoveTouchOnly ClickAction = "moveTouchOnly"
	// ClickDraw draws with every pointer type.
	ClickDraw ClickAction = "draw"
	// ClickMove pans with every pointer type.
	ClickMove ClickAction = "move"
)

// PointerAction is the compiled action for one pointer type.
type PointerAction string

const (
	PointerDraw PointerAction = "draw"
	PointerMove PointerAction = "move"
)

// Config limits.
const (
	MaxStabilization  = 20
	DefaultMaxHistory = 100
	MinMaxHistory     = 8
	DefaultFPS        = 60
)

// RGB is an opaque 8-bit color.
type RGB [3]uint8

// Color returns c as an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Checkerboard describes the transparency background drawn behind the canvas.
type Checkerboard struct {
	Color1 RGB `toml:"color1"`
	Color2 RGB `toml:"color2"`
	// Size is the square edge in pixels.
	Size int `toml:"size"`
}

// DefaultCheckerboard is used when a Config leaves BgCheckerboard unset.
var DefaultCheckerboard = Checkerboard{
	Color1: RGB{112, 112, 112},
	Color2: RGB{156, 156, 156},
	Size:   32,
}

// Render draws the checkerboard into a new w x h image.
// The square at the origin uses Color1.
func (c Checkerboard) Render(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	size := max(c.Size, 1)
	c1, c2 := c.Color1.Color(), c.Color2.Color()
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < img.Rect.Dx(); x++ {
			cc := c1
			if (x/size+y/size)%2 == 1 {
				cc = c2
			}
			i := x * 4
			row[i+0] = cc.R
			row[i+1] = cc.G
			row[i+2] = cc.B
			row[i+3] = cc.A
		}
	}
	return img
}

// Config is the user-facing engine configuration. The zero value is valid.
type Config struct {
	CanvasClickAction ClickAction `toml:"canvas_click_action"`
	// BrushStabilization is 0 (disabled) to MaxStabilization.
	BrushStabilization int `toml:"brush_stabilization"`
	// MaxHistory is the number of undoable groups kept. 0 selects
	// DefaultMaxHistory; anything smaller than MinMaxHistory is raised to it.
	MaxHistory     int           `toml:"max_history"`
	BgCheckerboard *Checkerboard `toml:"bg_checkerboard"`
	// FPS is the step scheduler rate. 0 selects DefaultFPS.
	FPS int `toml:"fps"`
}

// CompiledConfig is a Config with defaults filled in and derived values
// precomputed. Every field is set.
type CompiledConfig struct {
	ClickAction       ClickAction
	CanvasPenAction   PointerAction
	CanvasTouchAction PointerAction
	// BrushStabilization is clamped to [0, MaxStabilization].
	BrushStabilization int
	// BrushFollowFactor is in (0, 1]; 1 means no smoothing.
	BrushFollowFactor float64
	MaxHistory        int
	BgCheckerboard    Checkerboard
	FPS               int
}

// Compile fills defaults and precomputes derived values.
func (c Config) Compile() CompiledConfig {
	cc := CompiledConfig{
		ClickAction:        c.CanvasClickAction,
		CanvasPenAction:    PointerDraw,
		CanvasTouchAction:  PointerMove,
		BrushStabilization: min(max(c.BrushStabilization, 0), MaxStabilization),
		MaxHistory:         c.MaxHistory,
		BgCheckerboard:     DefaultCheckerboard,
		FPS:                c.FPS,
	}
	if cc.ClickAction == "" {
		cc.ClickAction = ClickMoveTouchOnly
	}
	if cc.ClickAction == ClickMove {
		cc.CanvasPenAction = PointerMove
	}
	if cc.ClickAction == ClickDraw {
		cc.CanvasTouchAction = PointerDraw
	}
	cc.BrushFollowFactor = FollowFactor(cc.BrushStabilization)
	if cc.MaxHistory == 0 {
		cc.MaxHistory = DefaultMaxHistory
	}
	cc.MaxHistory = max(cc.MaxHistory, MinMaxHistory)
	if c.BgCheckerboard != nil {
		cc.BgCheckerboard = *c.BgCheckerboard
		if cc.BgCheckerboard.Size <= 0 {
			cc.BgCheckerboard.Size = DefaultCheckerboard.Size
		}
	}
	if cc.FPS <= 0 {
		cc.FPS = DefaultFPS
	}
	return cc
}

// Validate reports unknown click actions.
func (c Config) Validate() error {
	switch c.CanvasClickAction {
	case "", ClickMoveTouchOnly, ClickDraw, ClickMove:
		return nil
	default:
		return fmt.Errorf("paint: unknown canvas click action %q", c.CanvasClickAction)
	}
}

// LoadConfig decodes a TOML configuration:
//
//	canvas_click_action = "draw"
//	brush_stabilization = 5
//	max_history = 200
//
//	[bg_checkerboard]
//	color1 = [112, 112, 112]
//	color2 = [156, 156, 156]
//	size = 16
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("paint: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
