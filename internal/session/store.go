// Package session provides in-memory, per-session property collections. A
// collection is an ordered, append-only sequence owned by exactly one session;
// nothing is persisted beyond process lifetime.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/propwise/propwise/pkg/constants"
	"github.com/propwise/propwise/pkg/property"
)

// ErrSessionNotFound indicates a session identifier is unknown to the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrPropertyNotFound indicates a property index is out of range for a session.
var ErrPropertyNotFound = errors.New("property not found")

// Store holds all live sessions. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]property.Input
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string][]property.Input)}
}

// Create allocates a new empty session and returns its identifier.
func (s *Store) Create() (string, error) {
	buf := make([]byte, constants.SessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	id := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = nil
	return id, nil
}

// Append adds a property to the end of a session's collection and returns its
// zero-based index. Duplicates are legal; inputs are never edited or removed.
func (s *Store) Append(sessionID string, in property.Input) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputs, ok := s.sessions[sessionID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	s.sessions[sessionID] = append(inputs, in)
	return len(inputs), nil
}

// Properties returns a copy of a session's ordered collection. The copy keeps
// callers from aliasing store-internal slices.
func (s *Store) Properties(sessionID string) ([]property.Input, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inputs, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	out := make([]property.Input, len(inputs))
	copy(out, inputs)
	return out, nil
}

// Property returns the input at the given index within a session.
func (s *Store) Property(sessionID string, index int) (property.Input, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inputs, ok := s.sessions[sessionID]
	if !ok {
		return property.Input{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if index < 0 || index >= len(inputs) {
		return property.Input{}, fmt.Errorf("%w: index %d out of range for %d properties", ErrPropertyNotFound, index, len(inputs))
	}
	return inputs[index], nil
}

// Delete removes a session and its collection.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
