package session

import "sync"

// MemoryStore keeps sessions in-process. Sessions survive until completion,
// cancellation or replacement; abandoned ones linger, which is acceptable at
// this scale.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewMemoryStore initializes an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]Session)}
}

// Get returns the user's session when one exists.
func (m *MemoryStore) Get(userID int64) (Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok, nil
}

// Put stores or replaces the user's session.
func (m *MemoryStore) Put(userID int64, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
	return nil
}

// Delete discards the user's session.
func (m *MemoryStore) Delete(userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}
