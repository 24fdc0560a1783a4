package session

// store.go — in-memory session registry for the HTTP service. Sessions are
// isolated: each id owns its Session and nothing is shared between them.
// Nothing survives process exit.

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session: not found")

type entry struct {
	sess    *Session
	touched time.Time
}

// Store maps session ids to sessions. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

// NewStore returns an empty store. Sessions idle for longer than ttl are
// evicted; a ttl of 0 keeps them until deleted.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Create starts a new session and returns its snapshot.
func (st *Store) Create() Snapshot {
	id := uuid.NewString()
	s := New()

	st.mu.Lock()
	defer st.mu.Unlock()
	st.entries[id] = &entry{sess: s, touched: st.now()}
	return s.Snapshot(id)
}

// Get returns the snapshot of session id.
func (st *Store) Get(id string) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, err := st.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	e.touched = st.now()
	return e.sess.Snapshot(id), nil
}

// Update runs fn on session id while holding the store lock and returns
// the resulting snapshot. The session is left as fn left it even when fn
// fails.
func (st *Store) Update(id string, fn func(*Session) error) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, err := st.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	e.touched = st.now()
	if err := fn(e.sess); err != nil {
		return e.sess.Snapshot(id), err
	}
	return e.sess.Snapshot(id), nil
}

// Delete removes session id and reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	_, ok := st.entries[id]
	delete(st.entries, id)
	return ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}

// Evict drops expired sessions and returns how many were removed.
func (st *Store) Evict() int {
	if st.ttl <= 0 {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := st.now().Add(-st.ttl)
	n := 0
	for id, e := range st.entries {
		if e.touched.Before(cutoff) {
			delete(st.entries, id)
			n++
		}
	}
	return n
}

// Janitor calls Evict every interval until ctx is done. onEvict, if set,
// receives the count of each non-empty sweep.
func (st *Store) Janitor(ctx context.Context, interval time.Duration, onEvict func(int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := st.Evict(); n > 0 && onEvict != nil {
				onEvict(n)
			}
		}
	}
}

// lookup returns the live entry for id. Callers hold st.mu.
func (st *Store) lookup(id string) (*entry, error) {
	e, ok := st.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if st.ttl > 0 && st.now().Sub(e.touched) > st.ttl {
		delete(st.entries, id)
		return nil, ErrNotFound
	}
	return e, nil
}
