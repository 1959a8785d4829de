// Package reconcile sweeps the blob store for orphaned assets. The
// two-phase upload workflow puts bytes in the blob store before the
// catalog record exists, so a failed or abandoned session leaves objects
// behind with nothing referencing them. The sweep runs on demand, never
// during an upload, and only touches objects past a grace period so that
// in-flight sessions keep their freshly uploaded assets.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// KeyPrefix is the blob namespace the sweep inspects. Upload keys are
// always issued under it.
const KeyPrefix = "content/"

// DefaultGracePeriod leaves generous room for slow uploads before an
// unreferenced object counts as orphaned.
const DefaultGracePeriod = 24 * time.Hour

// Sweeper cross-checks blob keys against catalog records.
type Sweeper struct {
	store       catalog.Store
	blobStore   catalog.BlobStore
	gracePeriod time.Duration
	dryRun      bool
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithGracePeriod overrides the default grace period.
func WithGracePeriod(d time.Duration) Option {
	return func(s *Sweeper) { s.gracePeriod = d }
}

// WithDryRun reports orphans without deleting them.
func WithDryRun(dry bool) Option {
	return func(s *Sweeper) { s.dryRun = dry }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sweeper) { s.logger = l }
}

// New creates a sweeper over the given store pair.
func New(store catalog.Store, blobStore catalog.BlobStore, opts ...Option) *Sweeper {
	s := &Sweeper{
		store:       store,
		blobStore:   blobStore,
		gracePeriod: DefaultGracePeriod,
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report summarizes one sweep.
type Report struct {
	Scanned  int      `json:"scanned"`
	Orphaned []string `json:"orphaned,omitempty"`
	Deleted  int      `json:"deleted"`
	Skipped  int      `json:"skipped"`
}

// Run lists blobs under the content prefix and deletes every object that
// no catalog record references and whose last modification is older than
// the grace period. Referenced and recent objects are left alone.
func (s *Sweeper) Run(ctx context.Context) (*Report, error) {
	referenced, err := s.referencedKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect referenced keys: %w", err)
	}

	objects, err := s.blobStore.List(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}

	cutoff := s.now().Add(-s.gracePeriod)
	report := &Report{Scanned: len(objects)}

	for _, obj := range objects {
		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		if obj.LastModified.After(cutoff) {
			report.Skipped++
			continue
		}

		report.Orphaned = append(report.Orphaned, obj.Key)
		if s.dryRun {
			s.logger.InfoContext(ctx, "orphaned blob (dry run)", "key", obj.Key, "modified", obj.LastModified)
			continue
		}

		if err := s.blobStore.Delete(ctx, obj.Key); err != nil {
			// Keep sweeping; the next run picks this one up again.
			s.logger.WarnContext(ctx, "failed to delete orphaned blob", "key", obj.Key, "error", err)
			continue
		}
		report.Deleted++
		s.logger.InfoContext(ctx, "deleted orphaned blob", "key", obj.Key, "modified", obj.LastModified)
	}

	return report, nil
}

// referencedKeys gathers every asset key the catalog still points at.
func (s *Sweeper) referencedKeys(ctx context.Context) (map[string]struct{}, error) {
	items, err := s.store.Scan(ctx, catalog.ItemFilters{})
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{}, len(items)*2)
	for _, item := range items {
		if item.PrimaryAssetKey != "" {
			keys[item.PrimaryAssetKey] = struct{}{}
		}
		if item.ThumbnailAssetKey != "" {
			keys[item.ThumbnailAssetKey] = struct{}{}
		}
	}
	return keys, nil
}
