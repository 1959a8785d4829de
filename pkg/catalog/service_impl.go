package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	store     Store
	blobStore BlobStore
	eventSink EventSink
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithStore sets the catalog store for the service
func WithStore(store Store) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithBlobStore sets the blob store gateway for the service
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.blobStore = store
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if s.blobStore == nil {
		return nil, fmt.Errorf("blob store is required")
	}
	if s.eventSink == nil {
		s.eventSink = NewNoopEventSink()
	}

	return s, nil
}

// Upload operations

func (s *service) GetUploadURL(ctx context.Context, req GetUploadURLRequest) (*UploadTarget, error) {
	if req.FileName == "" || req.MimeType == "" {
		return nil, fmt.Errorf("%w: file_name and content_type are required", ErrValidationFailed)
	}

	key := generateObjectKey(req.FileName, req.MimeType)

	url, err := s.blobStore.GetUploadURL(ctx, key, req.MimeType)
	if err != nil {
		return nil, &StorageError{
			Key: key,
			Op:  "get_upload_url",
			Err: fmt.Errorf("%w: %v", ErrStoreUnavailable, err),
		}
	}

	return &UploadTarget{UploadURL: url, Key: key}, nil
}

// generateObjectKey builds the storage key for an upload. The caller owns
// the asset name only; the key itself belongs to the service.
func generateObjectKey(fileName, mimeType string) string {
	return fmt.Sprintf("content/%s/%d-%s", mimeType, time.Now().UnixMilli(), sanitizeFileName(fileName))
}

func sanitizeFileName(name string) string {
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// Content operations

func (s *service) CreateContent(ctx context.Context, req CreateContentRequest) (*ContentItem, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	level := req.ContentLevel
	if level == "" {
		level = LevelBeginner
	}

	now := time.Now().UTC()
	item := &ContentItem{
		ID:                uuid.New(),
		Type:              req.Type,
		Title:             req.Title,
		Description:       req.Description,
		PrimaryAssetKey:   req.PrimaryAssetKey,
		ThumbnailAssetKey: req.ThumbnailAssetKey,
		Topic:             req.Topic,
		MediaType:         req.MediaType,
		ContentLevel:      level,
		Tags:              dedupeTags(req.Tags),
		DurationMinutes:   req.DurationMinutes,
		ViewCount:         0,
		Status:            ContentStatusDraft,
		AuthorID:          req.AuthorID,
		RelatedContentIDs: req.RelatedContentIDs,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.store.Put(ctx, item); err != nil {
		return nil, &ContentError{ContentID: item.ID, Op: "create", Err: err}
	}

	// Events are advisory; never fail the operation over them.
	_ = s.eventSink.ContentCreated(ctx, item)

	return item, nil
}

func validateCreate(req CreateContentRequest) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown content type %q", ErrValidationFailed, req.Type)
	}
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidationFailed)
	}
	if req.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidationFailed)
	}
	if req.PrimaryAssetKey == "" {
		return fmt.Errorf("%w: primary_asset_key is required", ErrValidationFailed)
	}
	if !req.Topic.IsValid() {
		return fmt.Errorf("%w: unknown topic %q", ErrValidationFailed, req.Topic)
	}
	if req.ContentLevel != "" && !req.ContentLevel.IsValid() {
		return fmt.Errorf("%w: unknown content level %q", ErrValidationFailed, req.ContentLevel)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration_minutes must be non-negative", ErrValidationFailed)
	}
	return nil
}

// dedupeTags drops duplicate labels while keeping first-seen order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func (s *service) GetContent(ctx context.Context, filters ItemFilters) ([]*ContentItem, error) {
	// Single-index filters go through the secondary indexes so the
	// newest-first ordering is guaranteed; everything else is a scan.
	switch {
	case filters.IsZero():
		return s.store.Scan(ctx, filters)
	case filters.Type != nil && filters.Topic == nil && filters.Status == nil && filters.ContentLevel == nil:
		return s.store.QueryByType(ctx, *filters.Type)
	case filters.Topic != nil && filters.Type == nil && filters.Status == nil && filters.ContentLevel == nil:
		return s.store.QueryByTopic(ctx, *filters.Topic)
	default:
		return s.store.Scan(ctx, filters)
	}
}

func (s *service) GetContentByID(ctx context.Context, id uuid.UUID) (*ContentItem, error) {
	return s.store.Get(ctx, id)
}

func (s *service) UpdateContent(ctx context.Context, id uuid.UUID, req UpdateContentRequest) (*ContentItem, error) {
	if req.IsZero() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidationFailed)
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(item, req); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(ctx, item); err != nil {
		return nil, &ContentError{ContentID: id, Op: "update", Err: err}
	}

	_ = s.eventSink.ContentUpdated(ctx, item)

	return item, nil
}

func applyUpdate(item *ContentItem, req UpdateContentRequest) error {
	if req.Type != nil && *req.Type != item.Type {
		return fmt.Errorf("%w: type is fixed at creation", ErrImmutableField)
	}
	if req.Title != nil {
		if *req.Title == "" {
			return fmt.Errorf("%w: title cannot be empty", ErrValidationFailed)
		}
		item.Title = *req.Title
	}
	if req.Description != nil {
		if *req.Description == "" {
			return fmt.Errorf("%w: description cannot be empty", ErrValidationFailed)
		}
		item.Description = *req.Description
	}
	if req.PrimaryAssetKey != nil {
		if *req.PrimaryAssetKey == "" {
			return fmt.Errorf("%w: primary_asset_key cannot be empty", ErrValidationFailed)
		}
		item.PrimaryAssetKey = *req.PrimaryAssetKey
	}
	if req.ThumbnailAssetKey != nil {
		item.ThumbnailAssetKey = *req.ThumbnailAssetKey
	}
	if req.Topic != nil {
		if !req.Topic.IsValid() {
			return fmt.Errorf("%w: unknown topic %q", ErrValidationFailed, *req.Topic)
		}
		item.Topic = *req.Topic
	}
	if req.MediaType != nil {
		item.MediaType = *req.MediaType
	}
	if req.ContentLevel != nil {
		if !req.ContentLevel.IsValid() {
			return fmt.Errorf("%w: unknown content level %q", ErrValidationFailed, *req.ContentLevel)
		}
		item.ContentLevel = *req.ContentLevel
	}
	if req.Tags != nil {
		item.Tags = dedupeTags(*req.Tags)
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 0 {
			return fmt.Errorf("%w: duration_minutes must be non-negative", ErrValidationFailed)
		}
		item.DurationMinutes = *req.DurationMinutes
	}
	if req.AuthorID != nil {
		item.AuthorID = *req.AuthorID
	}
	if req.RelatedContentIDs != nil {
		item.RelatedContentIDs = *req.RelatedContentIDs
	}
	if req.Status != nil {
		if err := ValidateTransition(item.Status, *req.Status); err != nil {
			return err
		}
		item.Status = *req.Status
	}
	return nil
}

func (s *service) DeleteContent(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.eventSink.ContentDeleted(ctx, id)

	return nil
}

// Lifecycle operations

func (s *service) PublishContent(ctx context.Context, id uuid.UUID) (*ContentItem, error) {
	return s.setStatus(ctx, id, ContentStatusPublished)
}

func (s *service) UnpublishContent(ctx context.Context, id uuid.UUID) (*ContentItem, error) {
	return s.setStatus(ctx, id, ContentStatusDraft)
}

func (s *service) ArchiveContent(ctx context.Context, id uuid.UUID) (*ContentItem, error) {
	return s.setStatus(ctx, id, ContentStatusArchived)
}

func (s *service) setStatus(ctx context.Context, id uuid.UUID, status ContentStatus) (*ContentItem, error) {
	return s.UpdateContent(ctx, id, UpdateContentRequest{Status: &status})
}

// Analytics

func (s *service) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if err := s.store.IncrementViewCount(ctx, id); err != nil {
		return err
	}

	_ = s.eventSink.ContentViewed(ctx, id)

	return nil
}

func (s *service) ResetViewCount(ctx context.Context, id uuid.UUID) error {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	item.ViewCount = 0
	item.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(ctx, item); err != nil {
		return &ContentError{ContentID: id, Op: "reset_view_count", Err: err}
	}

	return nil
}
