package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Store is an in-memory registry of active sessions keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*State),
	}
}

// Create registers a new session and returns its id.
func (st *Store) Create() string {
	id := uuid.New().String()

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[id] = NewState()

	return id
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (*State, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	state, exists := st.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Count returns the number of active sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
