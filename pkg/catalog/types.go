package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is the domain type for the three kinds of catalog content.
type ContentType string

// Content type constants (typed).
const (
	ContentTypeVideo   ContentType = "video"
	ContentTypeArticle ContentType = "article"
	ContentTypeAudio   ContentType = "audio"
)

// IsValid reports whether t is one of the known content types.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeVideo, ContentTypeArticle, ContentTypeAudio:
		return true
	}
	return false
}

// ContentStatus is the domain type for content lifecycle states.
type ContentStatus string

// Content status constants (typed).
const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusDraft, ContentStatusPublished, ContentStatusArchived:
		return true
	}
	return false
}

// ContentLevel is the audience difficulty of a content item.
type ContentLevel string

// Content level constants (typed).
const (
	LevelBeginner     ContentLevel = "beginner"
	LevelIntermediate ContentLevel = "intermediate"
	LevelAdvanced     ContentLevel = "advanced"
)

// IsValid reports whether l is one of the known levels.
func (l ContentLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Topic is one of the fixed topic categories content is organized under.
type Topic string

// The ten topic categories.
const (
	TopicFocusOrganization   Topic = "Focus & Organization"
	TopicSocialNavigation    Topic = "Social Navigation"
	TopicSportsCompetition   Topic = "Sports & Competition"
	TopicSelfDiscovery       Topic = "Self-Discovery"
	TopicParentResources     Topic = "Parent Resources"
	TopicSkillBuilding       Topic = "Skill Building"
	TopicMoodBoosters        Topic = "Mood Boosters"
	TopicEatingPatterns      Topic = "Eating Patterns"
	TopicADHDSuperpowers     Topic = "ADHD Superpowers"
	TopicEmotionalManagement Topic = "Emotional Management"
)

// Topics lists every topic category in display order.
func Topics() []Topic {
	return []Topic{
		TopicFocusOrganization,
		TopicSocialNavigation,
		TopicSportsCompetition,
		TopicSelfDiscovery,
		TopicParentResources,
		TopicSkillBuilding,
		TopicMoodBoosters,
		TopicEatingPatterns,
		TopicADHDSuperpowers,
		TopicEmotionalManagement,
	}
}

// IsValid reports whether t is one of the fixed topic categories.
func (t Topic) IsValid() bool {
	for _, known := range Topics() {
		if t == known {
			return true
		}
	}
	return false
}

// ContentItem is the central catalog entity. ID and Type together form the
// retrieval key; Type is fixed at creation and never mutated afterwards.
type ContentItem struct {
	ID                uuid.UUID     `json:"id"`
	Type              ContentType   `json:"type"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	PrimaryAssetKey   string        `json:"primary_asset_key"`
	ThumbnailAssetKey string        `json:"thumbnail_asset_key,omitempty"`
	Topic             Topic         `json:"topic"`
	MediaType         string        `json:"media_type"`
	ContentLevel      ContentLevel  `json:"content_level"`
	Tags              []string      `json:"tags,omitempty"`
	DurationMinutes   int           `json:"duration_minutes,omitempty"`
	ViewCount         int64         `json:"view_count"`
	Status            ContentStatus `json:"status"`
	AuthorID          string        `json:"author_id,omitempty"`
	RelatedContentIDs []string      `json:"related_content_ids,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ItemFilters is a conjunction of equality filters for listing content.
// A nil field matches everything for that dimension.
type ItemFilters struct {
	Type         *ContentType
	Topic        *Topic
	Status       *ContentStatus
	ContentLevel *ContentLevel
}

// Matches reports whether item satisfies every set filter.
func (f ItemFilters) Matches(item *ContentItem) bool {
	if f.Type != nil && item.Type != *f.Type {
		return false
	}
	if f.Topic != nil && item.Topic != *f.Topic {
		return false
	}
	if f.Status != nil && item.Status != *f.Status {
		return false
	}
	if f.ContentLevel != nil && item.ContentLevel != *f.ContentLevel {
		return false
	}
	return true
}

// IsZero reports whether no filter is set.
func (f ItemFilters) IsZero() bool {
	return f.Type == nil && f.Topic == nil && f.Status == nil && f.ContentLevel == nil
}

// UploadTarget is a short-lived write URL plus the storage key it writes to.
// URLs are single-use from the workflow's point of view; a fresh one is
// requested for every upload step.
type UploadTarget struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}
