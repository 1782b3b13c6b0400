package adapter

import "sync/atomic"

// Manager holds the process-wide binding of "the active adapter". Switching
// backends replaces the whole instance in a single pointer swap; it never
// mutates the previous one. Calls already in flight keep the instance they
// captured at call start and complete against its configuration.
type Manager struct {
	current atomic.Pointer[MusicAdapter]
}

// NewManager creates a manager bound to the given adapter.
func NewManager(a MusicAdapter) *Manager {
	m := &Manager{}
	m.current.Store(&a)
	return m
}

// Current returns the adapter bound at this moment.
func (m *Manager) Current() MusicAdapter {
	return *m.current.Load()
}

// Swap atomically replaces the active adapter.
func (m *Manager) Swap(a MusicAdapter) {
	m.current.Store(&a)
}
