package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogEventSink writes catalog events to a structured logger.
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink creates an event sink backed by logger. A nil logger
// falls back to slog.Default().
func NewLogEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger}
}

func (s *LogEventSink) ContentCreated(ctx context.Context, item *ContentItem) error {
	s.logger.InfoContext(ctx, "content created",
		"content_id", item.ID.String(), "type", item.Type, "topic", item.Topic)
	return nil
}

func (s *LogEventSink) ContentUpdated(ctx context.Context, item *ContentItem) error {
	s.logger.InfoContext(ctx, "content updated",
		"content_id", item.ID.String(), "status", item.Status)
	return nil
}

func (s *LogEventSink) ContentDeleted(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "content deleted", "content_id", id.String())
	return nil
}

func (s *LogEventSink) ContentViewed(ctx context.Context, id uuid.UUID) error {
	s.logger.DebugContext(ctx, "content viewed", "content_id", id.String())
	return nil
}
