// Package favorites holds each session's saved-content set. State is
// session-scoped and lives behind explicit accessors; there is no shared
// global set.
package favorites

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store keeps one favorites set per session key. The key is the
// authenticated subject, or an explicit session identifier for anonymous
// browsing. Favorites are in-memory and vanish with the process, matching
// their session-scoped contract.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]map[uuid.UUID]struct{}
}

// NewStore creates an empty favorites store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]map[uuid.UUID]struct{}),
	}
}

// Add marks a content item as a favorite for the session.
func (s *Store) Add(sessionKey string, contentID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sessions[sessionKey]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		s.sessions[sessionKey] = set
	}
	set[contentID] = struct{}{}
}

// Remove clears a favorite. Removing an absent entry is a no-op.
func (s *Store) Remove(sessionKey string, contentID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.sessions[sessionKey]; ok {
		delete(set, contentID)
		if len(set) == 0 {
			delete(s.sessions, sessionKey)
		}
	}
}

// Contains reports whether the session has favorited the content item.
func (s *Store) Contains(sessionKey string, contentID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sessions[sessionKey]
	if !ok {
		return false
	}
	_, ok = set[contentID]
	return ok
}

// List returns the session's favorites in a stable order.
func (s *Store) List(sessionKey string) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sessions[sessionKey]
	if !ok {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Clear drops the whole session.
func (s *Store) Clear(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey)
}
