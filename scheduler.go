// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"context"
	"sync"
	"time"
)

// Scheduler calls State.Step at the configured rate and serialises input
// handlers with the steps.
type Scheduler struct {
	mu       sync.Mutex
	state    *State
	interval time.Duration
}

// NewScheduler creates a scheduler ticking at s.Config().FPS.
func NewScheduler(s *State) *Scheduler {
	return &Scheduler{
		state:    s,
		interval: time.Second / time.Duration(s.cfg.FPS),
	}
}

// Interval returns the time between steps.
func (sc *Scheduler) Interval() time.Duration { return sc.interval }

// Do runs fn with exclusive access to the state.
func (sc *Scheduler) Do(fn func(*State)) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	fn(sc.state)
}

// Run steps the state until ctx is done and returns ctx.Err().
func (sc *Scheduler) Run(ctx context.Context) error {
	t := time.NewTicker(sc.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			sc.Do((*State).Step)
		}
	}
}
