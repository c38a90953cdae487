package memory

import "sync"

// lockSet hands out one mutex per key. An entry lives only while some transaction
// holds or waits on it.
type lockSet struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func newLockSet() *lockSet {
	return &lockSet{locks: make(map[string]*keyLock)}
}

// acquire blocks until key is held by the caller. Every acquire needs a matching release.
func (l *lockSet) acquire(key string) {
	l.mu.Lock()
	k, ok := l.locks[key]
	if !ok {
		k = &keyLock{}
		l.locks[key] = k
	}
	k.refs++
	l.mu.Unlock()

	k.Lock()
}

func (l *lockSet) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k, ok := l.locks[key]
	if !ok {
		return
	}
	k.Unlock()
	k.refs--
	if k.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *lockSet) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
