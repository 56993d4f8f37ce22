package domain

import "sync"

// KeyedMutex serializes the read-last-event + append critical section per
// user. Different users never contend; locks are held only around the
// mutation itself, never across Slack or long I/O calls.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int64]*sync.Mutex)}
}

// Lock acquires the lock for the given key, creating it on first use.
func (k *KeyedMutex) Lock(key int64) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
}

// Unlock releases the lock for the given key. Must follow a Lock on the
// same key.
func (k *KeyedMutex) Unlock(key int64) {
	k.mu.Lock()
	l := k.locks[key]
	k.mu.Unlock()

	l.Unlock()
}
