package core

import (
	"fmt"
	"sync"
)

// Store is the ordered, in-memory set of messages for the session.
// Attach is its only mutation.
type Store struct {
	mu       sync.RWMutex
	messages []Message
	index    map[string]int
	version  uint64
}

// NewStore creates a store seeded with msgs in the given order
func NewStore(msgs []Message) (*Store, error) {
	s := &Store{
		messages: make([]Message, 0, len(msgs)),
		index:    make(map[string]int, len(msgs)),
	}
	for i, m := range msgs {
		if m.ID == "" {
			return nil, fmt.Errorf("message at position %d has an empty id", i)
		}
		if _, dup := s.index[m.ID]; dup {
			return nil, fmt.Errorf("duplicate message id %q", m.ID)
		}
		s.index[m.ID] = len(s.messages)
		s.messages = append(s.messages, m.clone())
	}
	return s, nil
}

// Attach replaces the analysis of message id with result and applies any
// envelope override in the same critical section. An unknown id leaves the
// store untouched and returns false.
func (s *Store) Attach(id string, result *AnalysisResult, override *EnvelopeOverride) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}

	m := s.messages[i]
	m.Analysis = result.Clone()
	if override != nil {
		if override.Subject != nil {
			m.Subject = *override.Subject
		}
		if override.Body != nil {
			m.Body = *override.Body
		}
		if override.SenderEmail != nil {
			m.SenderEmail = *override.SenderEmail
		}
	}
	s.messages[i] = m
	s.version++
	return true
}

// Get returns a copy of the message with the given id
func (s *Store) Get(id string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Message{}, false
	}
	return s.messages[i].clone(), true
}

// Snapshot returns a deep copy of all messages in store order together with
// the version they were read at
func (s *Store) Snapshot() ([]Message, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	for i, m := range s.messages {
		out[i] = m.clone()
	}
	return out, s.version
}

// Len returns the number of messages
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Version increases by one on every successful Attach
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
