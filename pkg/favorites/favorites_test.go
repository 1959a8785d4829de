package favorites

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAddContainsRemove(t *testing.T) {
	store := NewStore()
	contentID := uuid.New()

	assert.False(t, store.Contains("alice", contentID))

	store.Add("alice", contentID)
	assert.True(t, store.Contains("alice", contentID))

	// Adding twice stays a single entry.
	store.Add("alice", contentID)
	assert.Len(t, store.List("alice"), 1)

	store.Remove("alice", contentID)
	assert.False(t, store.Contains("alice", contentID))
	assert.Empty(t, store.List("alice"))

	// Removing an absent entry is a no-op.
	store.Remove("alice", contentID)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore()
	shared := uuid.New()
	aliceOnly := uuid.New()

	store.Add("alice", shared)
	store.Add("alice", aliceOnly)
	store.Add("bob", shared)

	assert.Len(t, store.List("alice"), 2)
	assert.Len(t, store.List("bob"), 1)
	assert.False(t, store.Contains("bob", aliceOnly))

	store.Remove("alice", shared)
	assert.True(t, store.Contains("bob", shared), "removal never crosses sessions")
}

func TestListIsStable(t *testing.T) {
	store := NewStore()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		store.Add("alice", id)
	}

	first := store.List("alice")
	second := store.List("alice")
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestClear(t *testing.T) {
	store := NewStore()
	id := uuid.New()

	store.Add("alice", id)
	store.Clear("alice")

	assert.Empty(t, store.List("alice"))
	assert.False(t, store.Contains("alice", id))
}
