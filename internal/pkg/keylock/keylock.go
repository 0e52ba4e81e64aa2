package keylock

import (
	"sync"
)

// KeyedMutex serializes operations per key. Attendance and approval share
// one instance so a collaborator's history is mutated by at most one
// in-flight operation at a time, side effects included.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for key and returns its unlock function.
// Mutexes are created on demand and kept for the process lifetime; the
// key space is the collaborator set, so the map stays small.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
