package memory

import (
	"context"
	"sync"

	"konvert/internal/domain/session"
	"konvert/internal/metrics"
	"konvert/pkg/errors"
)

// SessionStore implements session.Store with process-local storage.
// Sessions are created lazily and never persisted across restarts.
type SessionStore struct {
	sessions map[int64]*session.Session
	mu       sync.RWMutex
}

// NewSessionStore creates a new in-memory session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*session.Session),
	}
}

// Get retrieves a session by telegram ID
func (s *SessionStore) Get(ctx context.Context, telegramID int64) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[telegramID]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "session for telegram_id %d", telegramID)
	}
	return sess, nil
}

// GetOrCreate retrieves a session, creating one at the initial state
func (s *SessionStore) GetOrCreate(ctx context.Context, telegramID int64) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[telegramID]
	if !ok {
		sess = session.New(telegramID)
		s.sessions[telegramID] = sess
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
	}
	return sess, nil
}

// Save stores a session
func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.TelegramID] = sess
	return nil
}

// Delete removes a session
func (s *SessionStore) Delete(ctx context.Context, telegramID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, telegramID)
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return nil
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
