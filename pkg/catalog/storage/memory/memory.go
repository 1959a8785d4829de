package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// Gateway is an in-memory implementation of the catalog.BlobStore interface.
// Upload URLs are synthetic; the workflow treats them like any presigned URL
// but tests exercise Upload directly.
type Gateway struct {
	mu        sync.RWMutex
	objects   map[string][]byte
	mimeTypes map[string]string
	modified  map[string]time.Time
}

// New creates a new in-memory blob store gateway
func New() *Gateway {
	return &Gateway{
		objects:   make(map[string][]byte),
		mimeTypes: make(map[string]string),
		modified:  make(map[string]time.Time),
	}
}

// GetUploadURL returns a synthetic write URL for an object key
func (g *Gateway) GetUploadURL(ctx context.Context, objectKey, mimeType string) (string, error) {
	return fmt.Sprintf("memory://upload/%s", objectKey), nil
}

// Upload stores the object bytes directly
func (g *Gateway) Upload(ctx context.Context, objectKey, mimeType string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.objects[objectKey] = data
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	g.mimeTypes[objectKey] = mimeType
	g.modified[objectKey] = time.Now().UTC()
	return nil
}

// GetDownloadURL returns a synthetic read URL for an object key
func (g *Gateway) GetDownloadURL(ctx context.Context, objectKey string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.objects[objectKey]; !exists {
		return "", missingObject(objectKey, "get_download_url")
	}
	return fmt.Sprintf("memory://download/%s", objectKey), nil
}

// Download reads the object bytes directly
func (g *Gateway) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	data, exists := g.objects[objectKey]
	if !exists {
		return nil, missingObject(objectKey, "download")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes the object
func (g *Gateway) Delete(ctx context.Context, objectKey string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.objects[objectKey]; !exists {
		return missingObject(objectKey, "delete")
	}
	delete(g.objects, objectKey)
	delete(g.mimeTypes, objectKey)
	delete(g.modified, objectKey)
	return nil
}

// List returns metadata for every object under prefix
func (g *Gateway) List(ctx context.Context, prefix string) ([]catalog.ObjectInfo, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var result []catalog.ObjectInfo
	for key, data := range g.objects {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		result = append(result, catalog.ObjectInfo{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: g.modified[key],
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

// missingObject keeps the blob store error contract: callers only ever see
// ErrStoreUnavailable from this layer.
func missingObject(objectKey, op string) error {
	return &catalog.StorageError{
		Backend: "memory",
		Key:     objectKey,
		Op:      op,
		Err:     fmt.Errorf("%w: object not found", catalog.ErrStoreUnavailable),
	}
}

// SetModified backdates an object's modification time. Test helper for
// exercising grace-period logic.
func (g *Gateway) SetModified(objectKey string, t time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.objects[objectKey]; exists {
		g.modified[objectKey] = t
	}
}
