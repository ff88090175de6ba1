// Package session keeps transient per-visitor state in memory. Nothing is
// persisted; a restart or an idle timeout discards every session.
package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kusasa/backend/agent"
)

// ErrNotFound is returned for unknown or expired sessions
var ErrNotFound = errors.New("session not found or expired")

// Session is one visitor's state machine
type Session struct {
	ID         string
	CreatedAt  time.Time
	Controller *agent.Controller

	mu       sync.Mutex
	lastSeen time.Time
}

// LastSeen returns the time of the last access
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Store holds live sessions with a sliding idle timeout
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after ttl of inactivity
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// TTL returns the idle timeout
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create starts a new session on the landing view
func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		Controller: agent.NewController(agent.NewState()),
		lastSeen:   now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns a live session and refreshes its idle timer
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if s.expired(sess, now) {
		s.Delete(id)
		return nil, ErrNotFound
	}
	sess.touch(now)
	return sess, nil
}

// Delete drops a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of stored sessions, expired or not
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were dropped
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every interval until ctx is cancelled
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("[Session] Evicted %d idle sessions", n)
			}
		}
	}
}

// A session with an analysis in flight is never expired
func (s *Store) expired(sess *Session, now time.Time) bool {
	if sess.Controller.State().Stage.Busy() {
		return false
	}
	return now.Sub(sess.LastSeen()) > s.ttl
}
