// Package connectivity tracks the device's reachability state. The flag is
// advisory: a true reading does not guarantee the central API will answer,
// so callers still handle request failures on their own.
package connectivity

import "sync"

type Monitor struct {
	mu     sync.RWMutex
	online bool
	subs   []func(bool)
}

// New builds a monitor seeded with the platform's current reachability
// reading (in practice: the result of a startup gateway ping).
func New(initial bool) *Monitor {
	return &Monitor{online: initial}
}

func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Set flips the flag on a reachability event. Subscribers are notified only
// on actual transitions, outside the lock.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

// Subscribe registers a transition callback. Callbacks run synchronously on
// the goroutine that reported the event and must not block.
func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}
