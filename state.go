// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"time"

	"github.com/gogpu/paint/history"
	"github.com/gogpu/paint/internal/cache"
	"github.com/gogpu/paint/text"
)

// Notices emitted through Observer.Notice.
const (
	NoticeNothingToUndo = "Nothing to undo"
	NoticeNothingToRedo = "Nothing to redo"
)

// State is the editing state of one canvas: committed layers, the scratch
// surface, the in-progress stroke, the cursor and the edit history.
//
// State is not safe for concurrent use. When a Scheduler drives it, route
// input through Scheduler.Do.
type State struct {
	cfg     CompiledConfig
	store   *Store
	history *history.Manager[Action]

	cursor  Cursor
	bd      Boundary
	draw    *DrawState
	palette Palette
	tools   ToolSettings

	clock     func() time.Time
	lastStep  time.Time
	observers []*observerEntry

	font  *text.Source
	faces *cache.Cache[float64, *text.Face]
}

// faceCacheSize bounds the number of text sizes kept shaped at once.
const faceCacheSize = 4

// New creates a state with one transparent width x height layer and
// attaches its surfaces, unless WithDetached is given.
func New(cfg Config, width, height int, opts ...Option) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store, err := NewStore(Size{Width: width, Height: height}, o.factory)
	if err != nil {
		return nil, err
	}
	cc := cfg.Compile()
	s := &State{
		cfg:       cc,
		store:     store,
		history:   history.New(cc.MaxHistory, store.Apply, store.Revert),
		bd:        EmptyBoundary,
		palette:   Palette{Current: color.NRGBA{A: 0xff}},
		tools:     DefaultToolSettings(),
		clock:     o.clock,
		font:      o.font,
		faces:     cache.New[float64, *text.Face](faceCacheSize),
	}
	for _, obs := range o.observers {
		s.Subscribe(obs)
	}
	s.lastStep = s.clock()
	store.onDirty = s.emitDirty

	if !o.detached {
		if err := s.Attach(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Config returns the compiled configuration.
func (s *State) Config() CompiledConfig { return s.cfg }

// Store returns the layer store. Edit it through ExecuteAction so that
// changes are undoable.
func (s *State) Store() *Store { return s.store }

// Size returns the canvas size.
func (s *State) Size() Size { return s.store.size }

// Attach creates the non-layer surfaces. It is called by New unless
// WithDetached was given.
func (s *State) Attach() error {
	return s.store.Attach()
}

// Detach cancels any stroke in progress and releases the non-layer
// surfaces. Layers and history are kept.
func (s *State) Detach() {
	s.cancelStroke()
	s.bd = EmptyBoundary
	s.store.Detach()
}

// Attached reports whether surfaces are available.
func (s *State) Attached() bool { return s.store.Attached() }

// Surface returns the surface of the given kind, or nil while detached.
func (s *State) Surface(kind SurfaceKind) Surface { return s.store.Surface(kind) }

// FocusedVisible reports whether a renderer should show the focused surface.
func (s *State) FocusedVisible() bool { return s.store.FocusedVisible() }

// observerEntry gives each subscription an identity, since Observer
// values need not be comparable.
type observerEntry struct {
	Observer
}

// Subscribe registers obs and returns a function that removes it.
func (s *State) Subscribe(obs Observer) (unsubscribe func()) {
	e := &observerEntry{obs}
	s.observers = append(s.observers, e)
	return func() {
		if i := slices.Index(s.observers, e); i >= 0 {
			s.observers = slices.Delete(s.observers, i, i+1)
		}
	}
}

func (s *State) emitDirty(kind SurfaceKind, r image.Rectangle) {
	for _, o := range s.observers {
		o.SurfaceDirty(kind, r)
	}
}

func (s *State) emitHistory() {
	u, r := s.history.CanUndo(), s.history.CanRedo()
	for _, o := range s.observers {
		o.HistoryChanged(u, r)
	}
}

func (s *State) notice(msg string) {
	for _, o := range s.observers {
		o.Notice(msg)
	}
}

// Cursor returns the pointer and smoothed brush positions.
func (s *State) Cursor() Cursor { return s.cursor }

// SetPointer records the raw pointer position in canvas space. The brush
// follows on the next Step.
func (s *State) SetPointer(p Point) {
	s.cursor.Real = p
}

// Boundary returns the region touched by the stroke in progress.
func (s *State) Boundary() Boundary { return s.bd }

// Palette returns the palette.
func (s *State) Palette() Palette { return s.palette }

// SetColor sets the current drawing color. A stroke in progress keeps the
// color it started with.
func (s *State) SetColor(c color.Color) {
	s.palette.Current = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ToolSettings returns the tool settings.
func (s *State) ToolSettings() ToolSettings { return s.tools }

// SetToolSettings replaces the tool settings. Switching tools while a
// stroke is in progress ends that stroke first.
func (s *State) SetToolSettings(ts ToolSettings) error {
	var err error
	if ts.Tool != s.tools.Tool && s.draw != nil {
		err = s.HandleDrawEnd(false)
	}
	s.tools = ts
	return err
}

// SetTool selects a tool, keeping the other settings.
func (s *State) SetTool(t Tool) error {
	ts := s.tools
	ts.Tool = t
	return s.SetToolSettings(ts)
}

// Undo reverts the most recent history group. A stroke in progress is
// cancelled first. When there is nothing to undo it emits
// NoticeNothingToUndo and returns false.
func (s *State) Undo() bool {
	s.cancelStroke()
	if !s.history.Undo() {
		s.notice(NoticeNothingToUndo)
		return false
	}
	s.emitHistory()
	return true
}

// Redo re-applies the most recently undone group. When there is nothing to
// redo it emits NoticeNothingToRedo and returns false.
func (s *State) Redo() bool {
	s.cancelStroke()
	if !s.history.Redo() {
		s.notice(NoticeNothingToRedo)
		return false
	}
	s.emitHistory()
	return true
}

// cancelStroke drops the stroke in progress, if any.
func (s *State) cancelStroke() {
	if s.draw == nil {
		return
	}
	if err := s.HandleDrawEnd(true); err != nil {
		Logger().Warn("paint: cancel stroke", "err", err)
	}
}

// CanUndo reports whether Undo would do anything.
func (s *State) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (s *State) CanRedo() bool { return s.history.CanRedo() }

// HistoryLen returns the number of undoable groups.
func (s *State) HistoryLen() int { return s.history.Len() }

// ExecuteAction applies group as one undoable step. A stroke in progress
// is committed first so that it lands below group in the history.
func (s *State) ExecuteAction(group ...Action) error {
	if len(group) == 0 {
		return nil
	}
	if s.draw != nil {
		if err := s.HandleDrawEnd(false); err != nil {
			return err
		}
	}
	s.history.Exec(group)
	s.emitHistory()
	return nil
}

// Step advances the brush smoother and the active tool by the time elapsed
// since the previous Step.
func (s *State) Step() {
	now := s.clock()
	dt := now.Sub(s.lastStep)
	s.lastStep = now
	s.Advance(dt)
}

// Advance is Step with an explicit interval.
func (s *State) Advance(dt time.Duration) {
	s.cursor.Follow(dt, s.cfg.BrushFollowFactor, s.draw != nil)
	if s.draw != nil && s.Attached() {
		s.draw.step(s, false)
	}
}

// textFace returns a face for the configured text size. Recently used
// sizes are cached.
func (s *State) textFace() (*text.Face, error) {
	size := s.tools.TextSize
	return s.faces.GetOrCreate(size, func() (*text.Face, error) {
		src := s.font
		if src == nil {
			var err error
			if src, err = text.DefaultSource(); err != nil {
				return nil, err
			}
			s.font = src
		}
		f, err := text.NewFace(src, size)
		if err != nil {
			return nil, fmt.Errorf("paint: text face: %w", err)
		}
		return f, nil
	})
}
