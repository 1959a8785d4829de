package catalog

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Store defines the interface for catalog persistence. Implementations
// surface only ErrContentNotFound and ErrStoreUnavailable (wrapped); the
// service layers validation and lifecycle rules on top.
type Store interface {
	// Put inserts or fully overwrites a record by primary key.
	// Last-write-wins; no version check.
	Put(ctx context.Context, item *ContentItem) error

	// Get is a point lookup by id.
	Get(ctx context.Context, id uuid.UUID) (*ContentItem, error)

	// QueryByType returns all records of a type, newest-first.
	QueryByType(ctx context.Context, contentType ContentType) ([]*ContentItem, error)

	// QueryByTopic returns all records under a topic, newest-first.
	QueryByTopic(ctx context.Context, topic Topic) ([]*ContentItem, error)

	// Scan returns all records matching the filter conjunction. An empty
	// filter set returns the full catalog. No pagination; the whole
	// matching set comes back in one call.
	Scan(ctx context.Context, filters ItemFilters) ([]*ContentItem, error)

	// Delete removes a record. No cascade; dangling related-content
	// references are tolerated.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViewCount bumps the counter by one.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// BlobStore defines the interface for the blob store gateway. One object
// per call, no retry, no multipart, no resumability.
type BlobStore interface {
	// GetUploadURL returns a time-limited write URL for an object key.
	GetUploadURL(ctx context.Context, objectKey, mimeType string) (string, error)

	// Upload writes the object directly, bypassing the presigned flow.
	Upload(ctx context.Context, objectKey, mimeType string, reader io.Reader) error

	// GetDownloadURL returns a time-limited read URL.
	GetDownloadURL(ctx context.Context, objectKey string) (string, error)

	// Download reads the object directly.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes the object.
	Delete(ctx context.Context, objectKey string) error

	// List returns metadata for every object under the prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

// ObjectInfo describes an object sitting in the blob store.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// EventSink defines the interface for catalog event handling.
type EventSink interface {
	ContentCreated(ctx context.Context, item *ContentItem) error
	ContentUpdated(ctx context.Context, item *ContentItem) error
	ContentDeleted(ctx context.Context, id uuid.UUID) error
	ContentViewed(ctx context.Context, id uuid.UUID) error
}
