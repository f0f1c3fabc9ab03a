package service

import "sync"

// bookLocks hands out one mutex per book id and forgets it once nobody holds
// or waits for it.
type bookLocks struct {
	mu    sync.Mutex
	locks map[int64]*bookLock
}

type bookLock struct {
	sync.Mutex
	refs int
}

func newBookLocks() *bookLocks {
	return &bookLocks{locks: make(map[int64]*bookLock)}
}

// Lock blocks until the book is exclusively held and returns the release func.
func (b *bookLocks) Lock(bookID int64) (unlock func()) {
	b.mu.Lock()
	l, ok := b.locks[bookID]
	if !ok {
		l = &bookLock{}
		b.locks[bookID] = l
	}
	l.refs++
	b.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		b.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(b.locks, bookID)
		}
		b.mu.Unlock()
	}
}

func (b *bookLocks) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.locks)
}
