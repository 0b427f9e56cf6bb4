package session

import (
	"sync"

	"github.com/mcoot/cricle/internal/model"
)

// playerLocks serialises work per player while letting different players
// proceed in parallel. Entries are dropped once nobody holds or waits on them.
type playerLocks struct {
	mu    sync.Mutex
	locks map[model.PlayerID]*playerLock
}

type playerLock struct {
	sync.Mutex
	refs int
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{locks: make(map[model.PlayerID]*playerLock)}
}

// lock acquires the player's lock and returns the matching unlock func
func (p *playerLocks) lock(id model.PlayerID) func() {
	p.mu.Lock()
	l, ok := p.locks[id]
	if !ok {
		l = &playerLock{}
		p.locks[id] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, id)
		}
		p.mu.Unlock()
	}
}

// size returns the number of tracked players
func (p *playerLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
