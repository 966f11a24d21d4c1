// Package keymutex provides mutual exclusion scoped to a string key.
//
// Waiters on the same key are served in the order they called Lock, so
// operations for one key run in arrival order. Entries are reference counted
// and dropped as soon as no goroutine holds or waits on the key.
package keymutex

import "sync"

type Map struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	cond    *sync.Cond
	next    uint64
	serving uint64
	refs    int
}

func New() *Map {
	return &Map{entries: make(map[string]*entry)}
}

// Lock blocks until the caller owns key. The returned func releases it and
// must be called exactly once.
func (m *Map) Lock(key string) (unlock func()) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{cond: sync.NewCond(&m.mu)}
		m.entries[key] = e
	}
	e.refs++
	ticket := e.next
	e.next++
	for e.serving != ticket {
		e.cond.Wait()
	}
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { m.release(key, e) })
	}
}

// TryLock acquires key only if nobody holds or waits on it.
func (m *Map) TryLock(key string) (unlock func(), ok bool) {
	m.mu.Lock()
	if _, busy := m.entries[key]; busy {
		m.mu.Unlock()
		return nil, false
	}
	e := &entry{cond: sync.NewCond(&m.mu), next: 1, refs: 1}
	m.entries[key] = e
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { m.release(key, e) })
	}, true
}

// With runs fn while holding key.
func (m *Map) With(key string, fn func()) {
	unlock := m.Lock(key)
	defer unlock()
	fn()
}

// Len reports the number of keys currently held or awaited.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Waiting reports how many callers are queued behind the current holder of key.
func (m *Map) Waiting(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return 0
	}
	return e.refs - 1
}

func (m *Map) release(key string, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.serving++
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
		return
	}
	e.cond.Broadcast()
}
