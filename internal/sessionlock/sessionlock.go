package sessionlock

// Package sessionlock serializes commands against a single session.
// Every mutating handler takes the session's lock for the duration of
// the command, so no two commands ever interleave on the same aggregate.
// Different sessions share nothing and proceed independently.

import "sync"

type Keeper struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeeper() *Keeper {
	return &Keeper{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given session key, creating it on
// first use, and returns the matching unlock function. Locks are kept
// for the life of the process; the key space is bounded by the number of
// sessions ever hosted.
func (k *Keeper) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
