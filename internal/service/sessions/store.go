package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Store потокобезопасное in-memory хранилище сессий бронирования.
// Сессии эфемерны: живут до отправки формы или истечения TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   Logger
}

// NewStore создает хранилище сессий с указанным TTL
func NewStore(ttl time.Duration, logger Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create создает новую сессию с криптослучайным идентификатором
func (s *Store) Create() (*Session, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - generate id: %v", ErrInternal, err)
	}

	session := newSession(id, time.Now())

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return session, nil
}

// Get возвращает сессию по идентификатору и продлевает ее TTL
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	session.touch(time.Now())
	return session, nil
}

// Delete удаляет сессию (после успешной отправки формы)
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// RunJanitor периодически удаляет истекшие сессии, пока контекст жив
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := s.sweep(time.Now())
			if removed > 0 {
				s.logger.Info("Session janitor: removed %d expired sessions", removed)
			}
		}
	}
}

func (s *Store) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.expired(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func generateID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
