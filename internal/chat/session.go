package chat

import (
	"context"
	"sync"
	"time"
)

// Step identifies where a session currently is in the guided admin
// data-entry dialogue.
type Step string

const (
	StepNone          Step = "none"
	StepAwaitPassword Step = "await_password"
	StepAwaitMovie    Step = "await_movie"
	StepAwaitShowing  Step = "await_showing"
)

// ConversationState is the dialogue state of one session. It is keyed by
// session identity in a SessionStore so concurrent admin flows from
// different clients cannot corrupt each other.
type ConversationState struct {
	Authenticated bool `json:"authenticated"`
	Step          Step `json:"step"`
}

// Idle reports whether the session has no admin flow in progress.
func (s ConversationState) Idle() bool {
	return s.Step == "" || s.Step == StepNone
}

// SessionStore keeps ConversationState keyed by session identity. Entries
// expire after the store's TTL, so an abandoned admin flow resets to idle
// on its own instead of trapping the session forever.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (ConversationState, error)
	Put(ctx context.Context, sessionID string, state ConversationState) error
	Reset(ctx context.Context, sessionID string) error
}

// MemoryStore is the in-process SessionStore used when Redis is not
// available. Expiry is checked lazily on read.
type MemoryStore struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	state     ConversationState
	expiresAt time.Time
}

// NewMemoryStore returns a MemoryStore whose entries live for ttl after
// their last write.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, entries: make(map[string]memoryEntry)}
}

// Get returns the stored state for the session, or an idle state when the
// session is unknown or its entry has expired.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (ConversationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return ConversationState{Step: StepNone}, nil
	}
	return e.state, nil
}

// Put stores the state and refreshes the entry's expiry.
func (s *MemoryStore) Put(_ context.Context, sessionID string, state ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{state: state, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

// Reset drops the session's entry, returning it to idle.
func (s *MemoryStore) Reset(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}
