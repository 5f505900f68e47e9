package identifier

import "sync"

// ScopeLocks serializes allocate-then-append sequences per identifier
// scope within the process. The store offers no locking of its own, so two
// concurrent requests scanning the same scope would otherwise both compute
// the same next id. Cross-process collisions are still possible and are
// caught by the store's conditional append.
type ScopeLocks struct {
	mu     sync.Mutex
	scopes map[string]*sync.Mutex
}

func NewScopeLocks() *ScopeLocks {
	return &ScopeLocks{scopes: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for scope, creating it on first use, and returns
// the unlock function.
func (l *ScopeLocks) Lock(scope string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.scopes[scope]
	if !ok {
		m = &sync.Mutex{}
		l.scopes[scope] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
