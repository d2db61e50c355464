package usecase

import (
	"sync"
	"time"

	"hybrid-command-router/internal/model"
)

const maxSessionHistory = 10

type session struct {
	exchanges  []model.Exchange
	lastActive time.Time
}

// sessionStore keeps short-term conversation memory per session so the
// classifier can see the prior intent. Sessions idle past the TTL are
// pruned by a background sweep.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	s := &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
	go s.sweep()
	return s
}

func (s *sessionStore) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, sess := range s.sessions {
			if sess.lastActive.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

func (s *sessionStore) remember(sessionID string, ex model.Exchange) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	sess.exchanges = append(sess.exchanges, ex)
	if len(sess.exchanges) > maxSessionHistory {
		sess.exchanges = sess.exchanges[len(sess.exchanges)-maxSessionHistory:]
	}
	sess.lastActive = ex.At
}

func (s *sessionStore) history(sessionID string) []model.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make([]model.Exchange, len(sess.exchanges))
	copy(out, sess.exchanges)
	return out
}

func (s *sessionStore) priorIntent(sessionID string) model.Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || len(sess.exchanges) == 0 {
		return model.IntentUnknown
	}
	return sess.exchanges[len(sess.exchanges)-1].Intent
}
