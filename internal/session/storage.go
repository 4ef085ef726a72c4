package session

import (
	"log"
	"sync"
	"time"

	"projectpulse/domain/table"

	"github.com/google/uuid"
)

// State holds everything one browser session owns: the loaded table and
// the current cascade selections. Nothing here is shared across sessions
// and nothing survives the process.
type State struct {
	ID         string
	Table      *table.Table
	Selections map[string]string
	LastSeen   time.Time
}

// Store is an in-memory session store keyed by session ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
	ttl      time.Duration
}

// NewStore creates a session store whose sessions expire after the given
// idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*State),
		ttl:      ttl,
	}
}

// Create allocates a new session and returns its ID.
func (s *Store) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &State{
		ID:         id,
		Selections: make(map[string]string),
		LastSeen:   time.Now(),
	}
	return id
}

// Exists reports whether the session is known and not expired. Expiry
// is checked here as well as in the janitor, so a session idle past the
// TTL is dead even before the next sweep.
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	return ok && time.Since(state.LastSeen) < s.ttl
}

// SetTable replaces the session's table and resets all selections; a new
// dataset invalidates any cascade built against the old one.
func (s *Store) SetTable(id string, t *table.Table) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return false
	}
	state.Table = t
	state.Selections = make(map[string]string)
	state.LastSeen = time.Now()
	return true
}

// Select records a dropdown selection and clears every selection
// downstream of it in the cascade.
func (s *Store) Select(id, column, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return false
	}

	clearing := false
	for _, col := range table.CascadeOrder {
		if clearing {
			delete(state.Selections, col)
		}
		if col == column {
			if value == "" {
				delete(state.Selections, col)
			} else {
				state.Selections[col] = value
			}
			clearing = true
		}
	}
	state.LastSeen = time.Now()
	return clearing
}

// Snapshot returns the session's table plus a freshly built constraint
// set. The constraints are a copy: callers can never leak state back in.
// Takes the write lock because it refreshes LastSeen.
func (s *Store) Snapshot(id string) (*table.Table, table.Constraints, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return nil, nil, false
	}
	state.LastSeen = time.Now()

	constraints := table.CascadeConstraints(
		state.Selections[table.ColumnWeek],
		state.Selections[table.ColumnAccount],
		state.Selections[table.ColumnClient],
		state.Selections[table.ColumnProject],
	)
	return state.Table, constraints, true
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CleanupExpired removes sessions idle longer than the store TTL.
func (s *Store) CleanupExpired() int {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, state := range s.sessions {
		if state.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor launches a background loop that periodically evicts
// expired sessions.
func (s *Store) StartJanitor(interval time.Duration) {
	go func() {
		for {
			time.Sleep(interval)
			if removed := s.CleanupExpired(); removed > 0 {
				log.Printf("[SessionJanitor] Removed %d expired sessions (%d live)", removed, s.Count())
			}
		}
	}()
}
