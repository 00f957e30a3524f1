package quiz

import (
	"sync"
)

// Store holds live sessions in memory, keyed by session ID.
type Store struct {
	lock     sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

func (s *Store) Add(session *Session) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.sessions[session.ID] = session
}

// Get looks up a session by ID, reporting whether it exists.
func (s *Store) Get(id string) (*Session, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *Store) Remove(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Count() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.sessions)
}
