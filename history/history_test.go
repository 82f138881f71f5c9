// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import (
	"slices"
	"testing"
)

// counter is a target whose state is the sum of applied deltas, with a log
// of every call.
type counter struct {
	value int
	log   []int
}

func (c *counter) manager(capacity int) *Manager[int] {
	return New(capacity,
		func(d int) { c.value += d; c.log = append(c.log, d) },
		func(d int) { c.value -= d; c.log = append(c.log, -d) },
	)
}

func TestNewRaisesCapacity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinCapacity},
		{-3, MinCapacity},
		{7, MinCapacity},
		{8, 8},
		{100, 100},
	}
	for _, tt := range tests {
		m := New[int](tt.in, func(int) {}, func(int) {})
		if got := m.Cap(); got != tt.want {
			t.Errorf("New(%d).Cap() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestExecUndoRedoRoundTrip(t *testing.T) {
	var c counter
	m := c.manager(10)

	m.Exec([]int{1, 2, 3})
	if c.value != 6 {
		t.Fatalf("after Exec value = %d, want 6", c.value)
	}
	if !m.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if c.value != 0 {
		t.Errorf("after Undo value = %d, want 0", c.value)
	}
	if !m.Redo() {
		t.Fatal("Redo() = false, want true")
	}
	if c.value != 6 {
		t.Errorf("after Redo value = %d, want 6", c.value)
	}

	// apply 1,2,3 / revert 3,2,1 / apply 1,2,3
	want := []int{1, 2, 3, -3, -2, -1, 1, 2, 3}
	if !slices.Equal(c.log, want) {
		t.Errorf("call order = %v, want %v", c.log, want)
	}
}

func TestPushDoesNotApply(t *testing.T) {
	var c counter
	m := c.manager(10)

	m.Push([]int{5})
	if c.value != 0 {
		t.Errorf("Push applied entries: value = %d", c.value)
	}
	if !m.CanUndo() {
		t.Fatal("CanUndo() = false after Push")
	}
	m.Undo()
	if c.value != -5 {
		t.Errorf("Undo after Push value = %d, want -5", c.value)
	}
}

func TestEmptyGroupIgnored(t *testing.T) {
	var c counter
	m := c.manager(10)
	m.Exec(nil)
	m.Push([]int{})
	if m.Len() != 0 || m.CanUndo() {
		t.Errorf("empty groups recorded: Len() = %d", m.Len())
	}
}

func TestNothingToUndoRedo(t *testing.T) {
	var c counter
	m := c.manager(10)
	if m.Undo() {
		t.Error("Undo() on empty manager = true")
	}
	if m.Redo() {
		t.Error("Redo() on empty manager = true")
	}
	if len(c.log) != 0 {
		t.Errorf("no-op undo/redo touched target: %v", c.log)
	}
}

func TestRecordDiscardsFuture(t *testing.T) {
	var c counter
	m := c.manager(10)

	m.Exec([]int{1})
	m.Exec([]int{10})
	m.Undo()
	if !m.CanRedo() {
		t.Fatal("CanRedo() = false after Undo")
	}

	m.Exec([]int{100})
	if m.CanRedo() {
		t.Error("CanRedo() = true after recording a new group")
	}
	if m.Redo() {
		t.Error("Redo() = true after recording a new group")
	}
	if c.value != 101 {
		t.Errorf("value = %d, want 101", c.value)
	}
	if m.Len() != 2 || m.FutureLen() != 0 {
		t.Errorf("Len() = %d FutureLen() = %d, want 2 0", m.Len(), m.FutureLen())
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	var c counter
	m := c.manager(8)

	for i := 1; i <= 12; i++ {
		m.Exec([]int{i})
	}
	if m.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", m.Len())
	}

	undone := 0
	for m.Undo() {
		undone++
	}
	if undone != 8 {
		t.Errorf("undo count = %d, want 8", undone)
	}
	// Groups 1..4 were dropped and stay applied: 1+2+3+4.
	if c.value != 10 {
		t.Errorf("value after undoing everything = %d, want 10", c.value)
	}

	redone := 0
	for m.Redo() {
		redone++
	}
	if redone != 8 {
		t.Errorf("redo count = %d, want 8", redone)
	}
	if c.value != 78 {
		t.Errorf("value after redoing everything = %d, want 78", c.value)
	}
}

func TestClear(t *testing.T) {
	var c counter
	m := c.manager(8)
	m.Exec([]int{1})
	m.Exec([]int{2})
	m.Undo()
	m.Clear()
	if m.CanUndo() || m.CanRedo() {
		t.Errorf("Clear left CanUndo=%v CanRedo=%v", m.CanUndo(), m.CanRedo())
	}
	if c.value != 1 {
		t.Errorf("Clear changed target: value = %d, want 1", c.value)
	}
}

func TestGroupIsCopied(t *testing.T) {
	var c counter
	m := c.manager(8)
	g := []int{1, 2}
	m.Exec(g)
	g[0] = 50
	m.Undo()
	if c.value != 0 {
		t.Errorf("mutating the caller's slice changed the recorded group: value = %d", c.value)
	}
}
