// Package session tracks loaded CVs. Each load produces a session
// holding an immutable document snapshot; queries resolve their session
// and scan that snapshot, so a concurrent reload never bleeds into a
// running query.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/NavindyaD/cv-chat/internal/qa"
)

// DefaultID is the session used when a caller does not supply one, e.g.
// the MCP tools and single-user HTTP setups.
const DefaultID = "default"

// Session is one loaded CV.
type Session struct {
	ID         string    `json:"session_id"`
	Filename   string    `json:"filename"`
	ContentLen int       `json:"content_length"`
	LoadedAt   time.Time `json:"loaded_at"`
	LastUsed   time.Time `json:"last_used"`

	doc qa.Document
}

// Document returns the session's CV snapshot.
func (s Session) Document() qa.Document { return s.doc }

// Store is a thread-safe in-memory session registry with TTL eviction.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Put stores a freshly loaded CV under id, replacing any previous
// document wholesale, and returns a copy of the session. An empty id
// allocates a new ULID.
func (s *Store) Put(id, filename, text string) Session {
	if id == "" {
		id = NewID()
	}
	now := time.Now()
	sess := &Session{
		ID:         id,
		Filename:   filename,
		ContentLen: len(text),
		LoadedAt:   now,
		LastUsed:   now,
		doc:        qa.NewDocument(text),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
	return *sess
}

// Get returns a copy of the session with the given id, refreshing its
// TTL. Callers only ever see copies: the stored session (and its
// LastUsed field in particular) is touched exclusively under the store
// mutex, so readers can encode or inspect the result without a lock.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	sess.LastUsed = time.Now()
	return *sess, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup removes sessions idle past the TTL.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, sess := range s.sessions {
		if now.Sub(sess.LastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// StartCleanup runs Cleanup on a ticker until the context is canceled.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}
