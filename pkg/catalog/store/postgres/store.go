package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Store implements catalog.Store using PostgreSQL
type Store struct {
	db DBTX
}

// New creates a new PostgreSQL store
func New(db DBTX) *Store {
	return &Store{db: db}
}

// NewWithPool creates a new PostgreSQL store with a connection pool
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

const itemColumns = `
	id, type, title, description, primary_asset_key, thumbnail_asset_key,
	topic, media_type, content_level, tags, duration_minutes, view_count,
	status, author_id, related_content_ids, created_at, updated_at`

// storeError wraps driver failures as the catalog's storage-unavailable error.
func storeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s: %s (code %s)", catalog.ErrStoreUnavailable, op, pgErr.Message, pgErr.Code)
	}
	return fmt.Errorf("%w: %s: %v", catalog.ErrStoreUnavailable, op, err)
}

func (s *Store) Put(ctx context.Context, item *catalog.ContentItem) error {
	query := `
		INSERT INTO content_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			primary_asset_key = EXCLUDED.primary_asset_key,
			thumbnail_asset_key = EXCLUDED.thumbnail_asset_key,
			topic = EXCLUDED.topic,
			media_type = EXCLUDED.media_type,
			content_level = EXCLUDED.content_level,
			tags = EXCLUDED.tags,
			duration_minutes = EXCLUDED.duration_minutes,
			view_count = EXCLUDED.view_count,
			status = EXCLUDED.status,
			author_id = EXCLUDED.author_id,
			related_content_ids = EXCLUDED.related_content_ids,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.Exec(ctx, query,
		item.ID, item.Type, item.Title, item.Description,
		item.PrimaryAssetKey, nullable(item.ThumbnailAssetKey),
		item.Topic, item.MediaType, item.ContentLevel, item.Tags,
		item.DurationMinutes, item.ViewCount, item.Status,
		nullable(item.AuthorID), item.RelatedContentIDs,
		item.CreatedAt, item.UpdatedAt)

	if err != nil {
		return storeError("put", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*catalog.ContentItem, error) {
	query := `SELECT ` + itemColumns + ` FROM content_items WHERE id = $1`
	return s.scanOne(s.db.QueryRow(ctx, query, id))
}

func (s *Store) QueryByType(ctx context.Context, contentType catalog.ContentType) ([]*catalog.ContentItem, error) {
	query := `SELECT ` + itemColumns + ` FROM content_items WHERE type = $1 ORDER BY created_at DESC`
	rows, err := s.db.Query(ctx, query, contentType)
	if err != nil {
		return nil, storeError("query by type", err)
	}
	defer rows.Close()
	return s.scanAll(rows)
}

func (s *Store) QueryByTopic(ctx context.Context, topic catalog.Topic) ([]*catalog.ContentItem, error) {
	query := `SELECT ` + itemColumns + ` FROM content_items WHERE topic = $1 ORDER BY created_at DESC`
	rows, err := s.db.Query(ctx, query, topic)
	if err != nil {
		return nil, storeError("query by topic", err)
	}
	defer rows.Close()
	return s.scanAll(rows)
}

func (s *Store) Scan(ctx context.Context, filters catalog.ItemFilters) ([]*catalog.ContentItem, error) {
	query := `SELECT ` + itemColumns + ` FROM content_items WHERE 1=1`
	var args []interface{}

	appendFilter := func(column string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(" AND %s = $%d", column, len(args))
	}

	if filters.Type != nil {
		appendFilter("type", *filters.Type)
	}
	if filters.Topic != nil {
		appendFilter("topic", *filters.Topic)
	}
	if filters.Status != nil {
		appendFilter("status", *filters.Status)
	}
	if filters.ContentLevel != nil {
		appendFilter("content_level", *filters.ContentLevel)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("scan", err)
	}
	defer rows.Close()
	return s.scanAll(rows)
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return storeError("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrContentNotFound
	}
	return nil
}

func (s *Store) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE content_items SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return storeError("increment view count", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrContentNotFound
	}
	return nil
}

func (s *Store) scanOne(row pgx.Row) (*catalog.ContentItem, error) {
	var item catalog.ContentItem
	var thumbnail, authorID *string

	err := row.Scan(
		&item.ID, &item.Type, &item.Title, &item.Description,
		&item.PrimaryAssetKey, &thumbnail, &item.Topic, &item.MediaType,
		&item.ContentLevel, &item.Tags, &item.DurationMinutes,
		&item.ViewCount, &item.Status, &authorID,
		&item.RelatedContentIDs, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrContentNotFound
		}
		return nil, storeError("get", err)
	}

	if thumbnail != nil {
		item.ThumbnailAssetKey = *thumbnail
	}
	if authorID != nil {
		item.AuthorID = *authorID
	}
	return &item, nil
}

func (s *Store) scanAll(rows pgx.Rows) ([]*catalog.ContentItem, error) {
	var result []*catalog.ContentItem
	for rows.Next() {
		item, err := s.scanOne(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("scan rows", err)
	}
	return result, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
