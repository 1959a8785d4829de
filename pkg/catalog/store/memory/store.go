package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// Store implements catalog.Store using in-memory storage
type Store struct {
	mu      sync.RWMutex
	items   map[uuid.UUID]*catalog.ContentItem
	byType  map[catalog.ContentType][]uuid.UUID
	byTopic map[catalog.Topic][]uuid.UUID
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		items:   make(map[uuid.UUID]*catalog.ContentItem),
		byType:  make(map[catalog.ContentType][]uuid.UUID),
		byTopic: make(map[catalog.Topic][]uuid.UUID),
	}
}

func (s *Store) Put(ctx context.Context, item *catalog.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[item.ID]

	// Copy to keep callers from mutating stored state
	itemCopy := cloneItem(item)
	s.items[item.ID] = itemCopy

	if !existed {
		s.byType[item.Type] = append(s.byType[item.Type], item.ID)
		s.byTopic[item.Topic] = append(s.byTopic[item.Topic], item.ID)
		return nil
	}

	// Topic is mutable; keep its index in step. Type is fixed at creation.
	if prev.Topic != item.Topic {
		s.byTopic[prev.Topic] = removeID(s.byTopic[prev.Topic], item.ID)
		s.byTopic[item.Topic] = append(s.byTopic[item.Topic], item.ID)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*catalog.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, catalog.ErrContentNotFound
	}
	return cloneItem(item), nil
}

func (s *Store) QueryByType(ctx context.Context, contentType catalog.ContentType) ([]*catalog.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byType[contentType]), nil
}

func (s *Store) QueryByTopic(ctx context.Context, topic catalog.Topic) ([]*catalog.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byTopic[topic]), nil
}

func (s *Store) Scan(ctx context.Context, filters catalog.ItemFilters) ([]*catalog.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*catalog.ContentItem, 0, len(s.items))
	for _, item := range s.items {
		if filters.Matches(item) {
			result = append(result, cloneItem(item))
		}
	}

	sortNewestFirst(result)
	return result, nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return catalog.ErrContentNotFound
	}

	delete(s.items, id)
	s.byType[item.Type] = removeID(s.byType[item.Type], id)
	s.byTopic[item.Topic] = removeID(s.byTopic[item.Topic], id)
	return nil
}

func (s *Store) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return catalog.ErrContentNotFound
	}
	item.ViewCount++
	return nil
}

// collect resolves ids into item copies, newest-first.
func (s *Store) collect(ids []uuid.UUID) []*catalog.ContentItem {
	result := make([]*catalog.ContentItem, 0, len(ids))
	for _, id := range ids {
		if item, exists := s.items[id]; exists {
			result = append(result, cloneItem(item))
		}
	}
	sortNewestFirst(result)
	return result
}

func sortNewestFirst(items []*catalog.ContentItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// cloneItem deep-copies an item so stored state and returned state never alias.
func cloneItem(item *catalog.ContentItem) *catalog.ContentItem {
	itemCopy := *item
	if item.Tags != nil {
		itemCopy.Tags = append([]string(nil), item.Tags...)
	}
	if item.RelatedContentIDs != nil {
		itemCopy.RelatedContentIDs = append([]string(nil), item.RelatedContentIDs...)
	}
	return &itemCopy
}
