package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
	memorystore "github.com/yesigotthis/adhd-hub/pkg/catalog/store/memory"
	memoryblob "github.com/yesigotthis/adhd-hub/pkg/catalog/storage/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []catalog.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []catalog.Option{},
			expectError: true,
		},
		{
			name: "store only should fail",
			options: []catalog.Option{
				catalog.WithStore(memorystore.New()),
			},
			expectError: true,
		},
		{
			name: "store and blob store should succeed",
			options: []catalog.Option{
				catalog.WithStore(memorystore.New()),
				catalog.WithBlobStore(memoryblob.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := catalog.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T) catalog.Service {
	t.Helper()

	svc, err := catalog.New(
		catalog.WithStore(memorystore.New()),
		catalog.WithBlobStore(memoryblob.New()),
		catalog.WithEventSink(catalog.NewNoopEventSink()),
	)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc
}

func validCreateRequest() catalog.CreateContentRequest {
	return catalog.CreateContentRequest{
		Type:            catalog.ContentTypeVideo,
		Title:           "Intro to Body Doubling",
		Description:     "Why working alongside someone else helps you start.",
		PrimaryAssetKey: "content/video/mp4/1700000000000-intro.mp4",
		Topic:           catalog.TopicFocusOrganization,
		MediaType:       "video/mp4",
	}
}

func TestGetUploadURL(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	target, err := svc.GetUploadURL(ctx, catalog.GetUploadURLRequest{
		FileName: "My Video (final).mp4",
		MimeType: "video/mp4",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, target.UploadURL)
	assert.True(t, strings.HasPrefix(target.Key, "content/video/mp4/"), "key %q", target.Key)
	assert.True(t, strings.HasSuffix(target.Key, "My_Video_(final).mp4"), "key %q", target.Key)

	t.Run("missing file name", func(t *testing.T) {
		_, err := svc.GetUploadURL(ctx, catalog.GetUploadURLRequest{MimeType: "video/mp4"})
		assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	})

	t.Run("missing mime type", func(t *testing.T) {
		_, err := svc.GetUploadURL(ctx, catalog.GetUploadURLRequest{FileName: "a.mp4"})
		assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	})
}

func TestCreateContentDefaults(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	item, err := svc.CreateContent(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, catalog.ContentStatusDraft, item.Status)
	assert.Equal(t, int64(0), item.ViewCount)
	assert.Equal(t, catalog.LevelBeginner, item.ContentLevel)
	assert.True(t, item.CreatedAt.Equal(item.UpdatedAt))
}

func TestCreateContentValidation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*catalog.CreateContentRequest)
	}{
		{"missing title", func(r *catalog.CreateContentRequest) { r.Title = "" }},
		{"missing description", func(r *catalog.CreateContentRequest) { r.Description = "" }},
		{"missing primary key", func(r *catalog.CreateContentRequest) { r.PrimaryAssetKey = "" }},
		{"unknown type", func(r *catalog.CreateContentRequest) { r.Type = "podcast" }},
		{"unknown topic", func(r *catalog.CreateContentRequest) { r.Topic = "Cooking" }},
		{"unknown level", func(r *catalog.CreateContentRequest) { r.ContentLevel = "expert" }},
		{"negative duration", func(r *catalog.CreateContentRequest) { r.DurationMinutes = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateContent(ctx, req)
			assert.ErrorIs(t, err, catalog.ErrValidationFailed)
		})
	}
}

func TestCreateContentDedupesTags(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.Tags = []string{"focus", "adhd", "focus", "school", "adhd"}

	item, err := svc.CreateContent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"focus", "adhd", "school"}, item.Tags)
}

func TestPublishUnpublishLifecycle(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, validCreateRequest())
	require.NoError(t, err)

	published, err := svc.PublishContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ContentStatusPublished, published.Status)
	assert.Equal(t, created.Title, published.Title)
	assert.Equal(t, created.PrimaryAssetKey, published.PrimaryAssetKey)
	assert.False(t, published.UpdatedAt.Before(created.UpdatedAt))

	unpublished, err := svc.UnpublishContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ContentStatusDraft, unpublished.Status)

	// Same-state transition is an idempotent no-op.
	again, err := svc.UnpublishContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ContentStatusDraft, again.Status)
}

func TestArchivedIsTerminal(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, validCreateRequest())
	require.NoError(t, err)

	archived, err := svc.ArchiveContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ContentStatusArchived, archived.Status)

	_, err = svc.PublishContent(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrInvalidStatusTransition)

	_, err = svc.UnpublishContent(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrInvalidStatusTransition)

	// Archiving again stays a no-op.
	_, err = svc.ArchiveContent(ctx, created.ID)
	assert.NoError(t, err)
}

func TestUpdateContentPartial(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, validCreateRequest())
	require.NoError(t, err)

	newTitle := "Body Doubling, Revisited"
	updated, err := svc.UpdateContent(ctx, created.ID, catalog.UpdateContentRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Everything else is untouched.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.PrimaryAssetKey, updated.PrimaryAssetKey)
	assert.Equal(t, created.Topic, updated.Topic)
	assert.Equal(t, created.MediaType, updated.MediaType)
	assert.Equal(t, created.ContentLevel, updated.ContentLevel)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.ViewCount, updated.ViewCount)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestUpdateContentValidation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("empty title rejected", func(t *testing.T) {
		empty := ""
		_, err := svc.UpdateContent(ctx, created.ID, catalog.UpdateContentRequest{Title: &empty})
		assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	})

	t.Run("unknown topic rejected", func(t *testing.T) {
		bad := catalog.Topic("Gardening")
		_, err := svc.UpdateContent(ctx, created.ID, catalog.UpdateContentRequest{Topic: &bad})
		assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	})

	t.Run("unknown id", func(t *testing.T) {
		title := "X"
		_, err := svc.UpdateContent(ctx, uuid.New(), catalog.UpdateContentRequest{Title: &title})
		assert.ErrorIs(t, err, catalog.ErrContentNotFound)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		_, err := svc.UpdateContent(ctx, created.ID, catalog.UpdateContentRequest{})
		assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	})

	t.Run("type change rejected", func(t *testing.T) {
		article := catalog.ContentTypeArticle
		_, err := svc.UpdateContent(ctx, created.ID, catalog.UpdateContentRequest{Type: &article})
		assert.ErrorIs(t, err, catalog.ErrImmutableField)
	})

	t.Run("same type accepted", func(t *testing.T) {
		same := created.Type
		title := "Body Doubling Basics"
		updated, err := svc.UpdateContent(ctx, created.ID, catalog.UpdateContentRequest{
			Type:  &same,
			Title: &title,
		})
		require.NoError(t, err)
		assert.Equal(t, created.Type, updated.Type)
		assert.Equal(t, title, updated.Title)
	})
}

func TestDeleteContent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContent(ctx, created.ID))

	_, err = svc.GetContentByID(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrContentNotFound)

	err = svc.DeleteContent(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrContentNotFound)
}

func TestGetContentFilters(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	video := validCreateRequest()

	article := validCreateRequest()
	article.Type = catalog.ContentTypeArticle
	article.MediaType = "text/html"
	article.Topic = catalog.TopicParentResources
	article.PrimaryAssetKey = "content/text/html/1700000000001-guide.html"

	audio := validCreateRequest()
	audio.Type = catalog.ContentTypeAudio
	audio.MediaType = "audio/mpeg"
	audio.PrimaryAssetKey = "content/audio/mpeg/1700000000002-calm.mp3"

	for _, req := range []catalog.CreateContentRequest{video, article, audio} {
		_, err := svc.CreateContent(ctx, req)
		require.NoError(t, err)
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		items, err := svc.GetContent(ctx, catalog.ItemFilters{})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("type filter", func(t *testing.T) {
		vt := catalog.ContentTypeVideo
		items, err := svc.GetContent(ctx, catalog.ItemFilters{Type: &vt})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, catalog.ContentTypeVideo, items[0].Type)
	})

	t.Run("topic filter", func(t *testing.T) {
		topic := catalog.TopicFocusOrganization
		items, err := svc.GetContent(ctx, catalog.ItemFilters{Topic: &topic})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("conjunction of filters", func(t *testing.T) {
		topic := catalog.TopicFocusOrganization
		at := catalog.ContentTypeAudio
		items, err := svc.GetContent(ctx, catalog.ItemFilters{Type: &at, Topic: &topic})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, catalog.ContentTypeAudio, items[0].Type)
	})

	t.Run("status filter", func(t *testing.T) {
		status := catalog.ContentStatusPublished
		items, err := svc.GetContent(ctx, catalog.ItemFilters{Status: &status})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestViewCountScenario(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, catalog.ContentStatusDraft, created.Status)
	assert.Equal(t, int64(0), created.ViewCount)

	published, err := svc.PublishContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ContentStatusPublished, published.Status)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.IncrementViewCount(ctx, created.ID))
	}

	got, err := svc.GetContentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ViewCount)

	require.NoError(t, svc.ResetViewCount(ctx, created.ID))
	got, err = svc.GetContentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.ViewCount)

	require.NoError(t, svc.DeleteContent(ctx, created.ID))
	_, err = svc.GetContentByID(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrContentNotFound)
}
