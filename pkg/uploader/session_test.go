package uploader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// fakeBackend stands in for the content service plus the blob store.
type fakeBackend struct {
	mu            sync.Mutex
	server        *httptest.Server
	uploadCalls   int
	blobs         map[string][]byte
	registered    []catalog.CreateContentRequest
	failPutAfter  int // fail blob PUTs once this many succeeded (0 = never)
	failRegister  bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{blobs: make(map[string][]byte)}

	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		var req catalog.GetUploadURLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		b.mu.Lock()
		b.uploadCalls++
		key := fmt.Sprintf("content/%s/%d-%s", req.MimeType, b.uploadCalls, req.FileName)
		b.mu.Unlock()

		json.NewEncoder(w).Encode(catalog.UploadTarget{
			UploadURL: b.server.URL + "/blob/" + key,
			Key:       key,
		})
	})
	mux.HandleFunc("/blob/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		if b.failPutAfter > 0 && len(b.blobs) >= b.failPutAfter {
			http.Error(w, "storage throttled", http.StatusServiceUnavailable)
			return
		}

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		b.blobs[strings.TrimPrefix(r.URL.Path, "/blob/")] = body
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/content", func(w http.ResponseWriter, r *http.Request) {
		if b.failRegister {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}

		var req catalog.CreateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		b.mu.Lock()
		b.registered = append(b.registered, req)
		b.mu.Unlock()

		now := time.Now().UTC()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(catalog.ContentItem{
			ID:                uuid.New(),
			Type:              req.Type,
			Title:             req.Title,
			Description:       req.Description,
			PrimaryAssetKey:   req.PrimaryAssetKey,
			ThumbnailAssetKey: req.ThumbnailAssetKey,
			Topic:             req.Topic,
			MediaType:         req.MediaType,
			ContentLevel:      catalog.LevelBeginner,
			Status:            catalog.ContentStatusDraft,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func articleSelection() Selection {
	return Selection{
		Primary: File{
			Name:     "guide.html",
			MimeType: "text/html",
			Data:     strings.NewReader("<h1>guide</h1>"),
		},
		Metadata: Metadata{
			Type:        catalog.ContentTypeArticle,
			Title:       "A Guide to Waiting Mode",
			Description: "Why a 3pm appointment eats the whole day.",
			Topic:       catalog.TopicEmotionalManagement,
		},
	}
}

func videoSelection() Selection {
	sel := Selection{
		Primary: File{
			Name:     "intro.mp4",
			MimeType: "video/mp4",
			Data:     strings.NewReader("video-bytes"),
		},
		Thumbnail: &File{
			Name:     "intro.jpg",
			MimeType: "image/jpeg",
			Data:     strings.NewReader("jpeg-bytes"),
		},
		Metadata: Metadata{
			Type:        catalog.ContentTypeVideo,
			Title:       "Intro to Body Doubling",
			Description: "Working alongside someone else.",
			Topic:       catalog.TopicFocusOrganization,
		},
	}
	return sel
}

func TestRunArticleSkipsThumbnailStep(t *testing.T) {
	backend := newFakeBackend(t)
	session := NewSession(NewClient(backend.server.URL))

	require.NoError(t, session.Select(articleSelection()))
	require.Equal(t, StateSelectingFiles, session.State())

	item, err := session.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, StateDone, session.State())
	assert.Equal(t, item, session.Result())
	assert.Equal(t, 1, backend.uploadCalls, "one fresh URL for one file")
	assert.Len(t, backend.blobs, 1)
	require.Len(t, backend.registered, 1)
	assert.Empty(t, backend.registered[0].ThumbnailAssetKey)
	assert.Equal(t, "text/html", backend.registered[0].MediaType)
}

func TestRunVideoUploadsBothFiles(t *testing.T) {
	backend := newFakeBackend(t)
	session := NewSession(NewClient(backend.server.URL))

	require.NoError(t, session.Select(videoSelection()))

	item, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateDone, session.State())
	assert.Equal(t, 2, backend.uploadCalls, "each file gets its own fresh URL")
	assert.Len(t, backend.blobs, 2)
	require.Len(t, backend.registered, 1)
	assert.NotEmpty(t, backend.registered[0].ThumbnailAssetKey)
	assert.NotEqual(t, item.PrimaryAssetKey, item.ThumbnailAssetKey)
}

func TestPreconditionsCheckedBeforeAnyNetworkCall(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Selection)
		wantErr error
	}{
		{"no primary file", func(s *Selection) { s.Primary = File{} }, ErrNoPrimaryFile},
		{"no title", func(s *Selection) { s.Metadata.Title = "" }, ErrNoTitle},
		{"no topic", func(s *Selection) { s.Metadata.Topic = "" }, ErrNoTopic},
		{"video without thumbnail", func(s *Selection) { s.Thumbnail = nil }, ErrNoThumbnail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend(t)
			session := NewSession(NewClient(backend.server.URL))

			sel := videoSelection()
			tt.mutate(&sel)
			require.NoError(t, session.Select(sel))

			_, err := session.Run(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, StateFailed, session.State())
			assert.Equal(t, 0, backend.uploadCalls, "no network call before validation")
			assert.Empty(t, backend.blobs)
		})
	}
}

func TestThumbnailFailureLeavesPrimaryOrphaned(t *testing.T) {
	backend := newFakeBackend(t)
	backend.failPutAfter = 1 // primary succeeds, thumbnail fails

	session := NewSession(NewClient(backend.server.URL))
	require.NoError(t, session.Select(videoSelection()))

	_, err := session.Run(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateFailed, session.State())
	assert.NotEmpty(t, session.Failure())
	assert.Len(t, backend.blobs, 1, "primary stays uploaded; no rollback")
	assert.Empty(t, backend.registered, "no catalog record without a complete upload")
}

func TestFailedSessionRequiresReset(t *testing.T) {
	backend := newFakeBackend(t)
	backend.failRegister = true

	session := NewSession(NewClient(backend.server.URL))
	require.NoError(t, session.Select(articleSelection()))

	_, err := session.Run(context.Background())
	require.Error(t, err)
	require.Equal(t, StateFailed, session.State())

	// No automatic retry; the session stays failed.
	assert.ErrorIs(t, session.Select(articleSelection()), ErrSessionFailed)
	_, err = session.Run(context.Background())
	assert.ErrorIs(t, err, ErrSessionFailed)

	session.Reset()
	assert.Equal(t, StateIdle, session.State())
	assert.Empty(t, session.Failure())

	backend.failRegister = false
	require.NoError(t, session.Select(articleSelection()))
	_, err = session.Run(context.Background())
	assert.NoError(t, err)
}

func TestRunWithoutSelection(t *testing.T) {
	backend := newFakeBackend(t)
	session := NewSession(NewClient(backend.server.URL))

	_, err := session.Run(context.Background())
	assert.ErrorIs(t, err, ErrNothingToRun)
}
