// Package keylock provides per-key mutual exclusion. The PTO admission
// check uses it to serialize the overlap read and the request insert for
// one (team, role) pair without blocking unrelated teams.
package keylock

import (
	"context"
	"sync"
	"time"
)

type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

func (k *KeyLock) get(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	return e
}

func (k *KeyLock) put(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

// Lock blocks until the key is held or the context is done.
func (k *KeyLock) Lock(ctx context.Context, key string) error {
	e := k.get(key)
	select {
	case e.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.put(key, e)
		return ctx.Err()
	}
}

// TryLock attempts to take the key, waiting at most wait.
func (k *KeyLock) TryLock(key string, wait time.Duration) bool {
	e := k.get(key)
	if wait <= 0 {
		select {
		case e.ch <- struct{}{}:
			return true
		default:
			k.put(key, e)
			return false
		}
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case e.ch <- struct{}{}:
		return true
	case <-timer.C:
		k.put(key, e)
		return false
	}
}

// Unlock releases a held key. Unlocking a key that is not held panics,
// same as sync.Mutex.
func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	k.mu.Unlock()
	if !ok {
		panic("keylock: unlock of unheld key " + key)
	}
	select {
	case <-e.ch:
	default:
		panic("keylock: unlock of unheld key " + key)
	}
	k.put(key, e)
}
