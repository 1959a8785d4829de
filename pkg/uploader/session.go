// Package uploader runs the two-phase upload workflow from the client
// side: upload the asset bytes first, register the catalog record second.
// A session owns one upload at a time and moves through a fixed set of
// states; there is no automatic retry and no rollback of uploaded assets.
package uploader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// State is an upload session's position in the workflow.
type State string

const (
	StateIdle                State = "idle"
	StateSelectingFiles      State = "selecting_files"
	StateUploadingPrimary    State = "uploading_primary"
	StateUploadingThumbnail  State = "uploading_thumbnail"
	StateRegisteringMetadata State = "registering_metadata"
	StateDone                State = "done"
	StateFailed              State = "failed"
)

// Preconditions not met before any network call has been made.
var (
	ErrNoPrimaryFile = errors.New("no primary file selected")
	ErrNoTitle       = errors.New("title is required")
	ErrNoTopic       = errors.New("topic is required")
	ErrNoThumbnail   = errors.New("video content requires a thumbnail")
	ErrSessionBusy   = errors.New("session already running")
	ErrNothingToRun  = errors.New("no files selected")
	ErrSessionFailed = errors.New("session failed; reset before reuse")
)

// File is one local file staged for upload.
type File struct {
	Name     string
	MimeType string
	Data     io.Reader
}

// Selection is everything the user chose before starting the upload:
// the files plus the metadata that will become the catalog record.
type Selection struct {
	Primary   File
	Thumbnail *File // required when Metadata.Type is video

	Metadata Metadata
}

// Metadata carries the catalog fields for the record to register.
type Metadata struct {
	Type              catalog.ContentType
	Title             string
	Description       string
	Topic             catalog.Topic
	ContentLevel      catalog.ContentLevel
	Tags              []string
	DurationMinutes   int
	AuthorID          string
	RelatedContentIDs []string
}

// Session is a single-owner upload workflow. One logical thread drives
// it; the mutex only guards state reads from other goroutines (progress
// display). A failed session stays failed until Reset.
type Session struct {
	client *Client

	mu        sync.RWMutex
	state     State
	selection *Selection
	result    *catalog.ContentItem
	failure   string
}

// NewSession creates an idle session bound to the given client.
func NewSession(client *Client) *Session {
	return &Session{client: client, state: StateIdle}
}

// State returns the session's current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Result returns the registered catalog item after a successful run.
func (s *Session) Result() *catalog.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Failure returns the user-facing message set when the session failed.
func (s *Session) Failure() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failure
}

// Select stages the files and metadata for the next run. Valid from Idle
// or SelectingFiles; re-selecting replaces the previous staging.
func (s *Session) Select(sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle, StateSelectingFiles:
	case StateFailed:
		return ErrSessionFailed
	default:
		return ErrSessionBusy
	}

	s.selection = &sel
	s.state = StateSelectingFiles
	return nil
}

// Run executes the staged upload end to end. Preconditions are checked
// before the first network call; each upload step fetches its own fresh
// URL. A thumbnail failure leaves the already-uploaded primary asset in
// the blob store untouched: the catalog record does not exist yet, so
// the orphan is harmless.
func (s *Session) Run(ctx context.Context) (*catalog.ContentItem, error) {
	s.mu.Lock()
	if s.state == StateFailed {
		s.mu.Unlock()
		return nil, ErrSessionFailed
	}
	if s.state != StateSelectingFiles || s.selection == nil {
		s.mu.Unlock()
		return nil, ErrNothingToRun
	}
	sel := s.selection
	s.mu.Unlock()

	if err := validateSelection(sel); err != nil {
		return nil, s.fail(err)
	}

	s.setState(StateUploadingPrimary)
	primaryKey, err := s.uploadFile(ctx, sel.Primary)
	if err != nil {
		return nil, s.fail(fmt.Errorf("primary upload: %w", err))
	}

	thumbnailKey := ""
	if sel.Metadata.Type == catalog.ContentTypeVideo {
		s.setState(StateUploadingThumbnail)
		thumbnailKey, err = s.uploadFile(ctx, *sel.Thumbnail)
		if err != nil {
			return nil, s.fail(fmt.Errorf("thumbnail upload: %w", err))
		}
	}

	s.setState(StateRegisteringMetadata)
	item, err := s.client.RegisterContent(ctx, catalog.CreateContentRequest{
		Type:              sel.Metadata.Type,
		Title:             sel.Metadata.Title,
		Description:       sel.Metadata.Description,
		PrimaryAssetKey:   primaryKey,
		ThumbnailAssetKey: thumbnailKey,
		Topic:             sel.Metadata.Topic,
		MediaType:         sel.Primary.MimeType,
		ContentLevel:      sel.Metadata.ContentLevel,
		Tags:              sel.Metadata.Tags,
		DurationMinutes:   sel.Metadata.DurationMinutes,
		AuthorID:          sel.Metadata.AuthorID,
		RelatedContentIDs: sel.Metadata.RelatedContentIDs,
	})
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.state = StateDone
	s.result = item
	s.selection = nil
	s.mu.Unlock()
	return item, nil
}

// Reset returns the session to Idle, clearing any staging, result, or
// failure. This is the only way out of Failed.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.selection = nil
	s.result = nil
	s.failure = ""
}

// uploadFile fetches a fresh single-use URL and PUTs the file to it.
func (s *Session) uploadFile(ctx context.Context, f File) (string, error) {
	target, err := s.client.RequestUploadURL(ctx, f.Name, f.MimeType)
	if err != nil {
		return "", err
	}
	if err := s.client.PutObject(ctx, target.UploadURL, f.MimeType, f.Data); err != nil {
		return "", err
	}
	return target.Key, nil
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Session) fail(err error) error {
	s.mu.Lock()
	s.state = StateFailed
	s.failure = err.Error()
	s.mu.Unlock()
	return err
}

func validateSelection(sel *Selection) error {
	if sel.Primary.Data == nil || sel.Primary.Name == "" {
		return ErrNoPrimaryFile
	}
	if sel.Metadata.Title == "" {
		return ErrNoTitle
	}
	if sel.Metadata.Topic == "" {
		return ErrNoTopic
	}
	if sel.Metadata.Type == catalog.ContentTypeVideo &&
		(sel.Thumbnail == nil || sel.Thumbnail.Data == nil || sel.Thumbnail.Name == "") {
		return ErrNoThumbnail
	}
	return nil
}
