package catalog

// Request/Response DTOs

// GetUploadURLRequest contains parameters for issuing a presigned upload URL.
type GetUploadURLRequest struct {
	FileName string `json:"file_name"`
	MimeType string `json:"content_type"`
}

// CreateContentRequest contains parameters for registering a new catalog
// record. The asset bytes must already be in the blob store; the service
// only records the keys (upload first, register second).
type CreateContentRequest struct {
	Type              ContentType  `json:"type"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	PrimaryAssetKey   string       `json:"primary_asset_key"`
	ThumbnailAssetKey string       `json:"thumbnail_asset_key,omitempty"`
	Topic             Topic        `json:"topic"`
	MediaType         string       `json:"media_type"`
	ContentLevel      ContentLevel `json:"content_level,omitempty"`
	Tags              []string     `json:"tags,omitempty"`
	DurationMinutes   int          `json:"duration_minutes,omitempty"`
	AuthorID          string       `json:"author_id,omitempty"`
	RelatedContentIDs []string     `json:"related_content_ids,omitempty"`
}

// UpdateContentRequest contains the partial field set for updating a content
// item. Nil fields are left untouched. Type is immutable after creation:
// sending it with the current value is a no-op, any other value is rejected.
// Status changes go through the lifecycle rules.
type UpdateContentRequest struct {
	Type              *ContentType   `json:"type,omitempty"`
	Title             *string        `json:"title,omitempty"`
	Description       *string        `json:"description,omitempty"`
	PrimaryAssetKey   *string        `json:"primary_asset_key,omitempty"`
	ThumbnailAssetKey *string        `json:"thumbnail_asset_key,omitempty"`
	Topic             *Topic         `json:"topic,omitempty"`
	MediaType         *string        `json:"media_type,omitempty"`
	ContentLevel      *ContentLevel  `json:"content_level,omitempty"`
	Tags              *[]string      `json:"tags,omitempty"`
	DurationMinutes   *int           `json:"duration_minutes,omitempty"`
	AuthorID          *string        `json:"author_id,omitempty"`
	RelatedContentIDs *[]string      `json:"related_content_ids,omitempty"`
	Status            *ContentStatus `json:"status,omitempty"`
}

// IsZero reports whether the request carries no fields at all.
func (r UpdateContentRequest) IsZero() bool {
	return r.Type == nil && r.Title == nil && r.Description == nil &&
		r.PrimaryAssetKey == nil && r.ThumbnailAssetKey == nil && r.Topic == nil &&
		r.MediaType == nil && r.ContentLevel == nil && r.Tags == nil &&
		r.DurationMinutes == nil && r.AuthorID == nil &&
		r.RelatedContentIDs == nil && r.Status == nil
}
