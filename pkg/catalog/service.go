package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Service is the content-catalog boundary the front-end calls. Every
// operation is synchronous from the caller's perspective; the service never
// retries on its own.
type Service interface {
	// GetUploadURL issues a short-lived presigned write URL together with
	// the storage key the service generated for it.
	GetUploadURL(ctx context.Context, req GetUploadURLRequest) (*UploadTarget, error)

	// Content operations
	CreateContent(ctx context.Context, req CreateContentRequest) (*ContentItem, error)
	GetContent(ctx context.Context, filters ItemFilters) ([]*ContentItem, error)
	GetContentByID(ctx context.Context, id uuid.UUID) (*ContentItem, error)
	UpdateContent(ctx context.Context, id uuid.UUID, req UpdateContentRequest) (*ContentItem, error)
	DeleteContent(ctx context.Context, id uuid.UUID) error

	// Lifecycle operations
	PublishContent(ctx context.Context, id uuid.UUID) (*ContentItem, error)
	UnpublishContent(ctx context.Context, id uuid.UUID) (*ContentItem, error)
	ArchiveContent(ctx context.Context, id uuid.UUID) (*ContentItem, error)

	// Analytics
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	// ResetViewCount is administrative and not exposed over HTTP.
	ResetViewCount(ctx context.Context, id uuid.UUID) error
}
