// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package history provides a bounded undo/redo manager.
//
// The manager stores groups of entries. A group is the atomic unit of
// undo and redo: undo reverts its entries last to first, redo applies
// them first to last. Recording a new group discards every group that
// was undone and not redone. When more than the configured number of
// groups is held, the oldest is dropped without being reverted.
package history

// MinCapacity is the smallest number of groups a Manager keeps.
const MinCapacity = 8

// Manager is a bounded undo/redo stack of entry groups.
//
// Manager is not safe for concurrent use.
type Manager[T any] struct {
	groups [][]T
	// cursor splits groups: groups[:cursor] can be undone,
	// groups[cursor:] can be redone.
	cursor   int
	capacity int
	apply    func(T)
	revert   func(T)
}

// New creates a manager that keeps at most capacity groups.
// Capacities below MinCapacity are raised to it.
func New[T any](capacity int, apply, revert func(T)) *Manager[T] {
	return &Manager[T]{
		capacity: max(capacity, MinCapacity),
		apply:    apply,
		revert:   revert,
	}
}

// Exec applies group in order and records it. Empty groups are ignored.
func (m *Manager[T]) Exec(group []T) {
	if len(group) == 0 {
		return
	}
	for _, e := range group {
		m.apply(e)
	}
	m.record(group)
}

// Push records group without applying it, for edits already reflected in
// the target. Empty groups are ignored.
func (m *Manager[T]) Push(group []T) {
	if len(group) == 0 {
		return
	}
	m.record(group)
}

func (m *Manager[T]) record(group []T) {
	clear(m.groups[m.cursor:])
	m.groups = append(m.groups[:m.cursor], append([]T(nil), group...))
	m.cursor++
	if over := len(m.groups) - m.capacity; over > 0 {
		n := copy(m.groups, m.groups[over:])
		clear(m.groups[n:])
		m.groups = m.groups[:n]
		m.cursor -= over
	}
}

// Undo reverts the most recent group. It reports false when there is
// nothing to undo.
func (m *Manager[T]) Undo() bool {
	if m.cursor == 0 {
		return false
	}
	m.cursor--
	g := m.groups[m.cursor]
	for i := len(g) - 1; i >= 0; i-- {
		m.revert(g[i])
	}
	return true
}

// Redo re-applies the most recently undone group. It reports false when
// there is nothing to redo.
func (m *Manager[T]) Redo() bool {
	if m.cursor == len(m.groups) {
		return false
	}
	g := m.groups[m.cursor]
	m.cursor++
	for _, e := range g {
		m.apply(e)
	}
	return true
}

// CanUndo reports whether Undo would do anything.
func (m *Manager[T]) CanUndo() bool { return m.cursor > 0 }

// CanRedo reports whether Redo would do anything.
func (m *Manager[T]) CanRedo() bool { return m.cursor < len(m.groups) }

// Len returns the number of undoable groups.
func (m *Manager[T]) Len() int { return m.cursor }

// FutureLen returns the number of redoable groups.
func (m *Manager[T]) FutureLen() int { return len(m.groups) - m.cursor }

// Cap returns the maximum number of groups kept.
func (m *Manager[T]) Cap() int { return m.capacity }

// Clear drops every group without applying or reverting anything.
func (m *Manager[T]) Clear() {
	clear(m.groups)
	m.groups = m.groups[:0]
	m.cursor = 0
}
