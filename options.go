// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"time"

	"github.com/gogpu/paint/text"
)

// Option configures a State during creation.
//
// Example:
//
//	// In-memory surfaces, wall clock
//	s, err := paint.New(cfg, 800, 600)
//
//	// Renderer-backed surfaces and a fake clock
//	s, err := paint.New(cfg, 800, 600,
//	    paint.WithSurfaceFactory(renderer.NewSurface),
//	    paint.WithClock(clock.Now),
//	)
type Option func(*options)

// options holds optional configuration for State creation.
type options struct {
	factory   SurfaceFactory
	clock     func() time.Time
	observers []Observer
	font      *text.Source
	detached  bool
}

// defaultOptions returns the default state options.
func defaultOptions() options {
	return options{
		factory: BufferFactory,
		clock:   time.Now,
	}
}

// WithSurfaceFactory sets the constructor for the below, scratch and above
// surfaces. Use this to back them with renderer-owned textures.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithClock sets the time source used to derive step intervals.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithObserver registers an observer. It may be given more than once.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithFontSource sets the font used by the text tool. The default is the
// Go Regular font.
func WithFontSource(src *text.Source) Option {
	return func(o *options) {
		o.font = src
	}
}

// WithDetached creates the State without surfaces. Call State.Attach
// before drawing.
func WithDetached() Option {
	return func(o *options) {
		o.detached = true
	}
}
