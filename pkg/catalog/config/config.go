// Package config loads server configuration from the environment and
// assembles the catalog service from it.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yesigotthis/adhd-hub/pkg/catalog"
	memorystore "github.com/yesigotthis/adhd-hub/pkg/catalog/store/memory"
	pgstore "github.com/yesigotthis/adhd-hub/pkg/catalog/store/postgres"
	memoryblob "github.com/yesigotthis/adhd-hub/pkg/catalog/storage/memory"
	s3blob "github.com/yesigotthis/adhd-hub/pkg/catalog/storage/s3"
)

// ServerConfig is the full environment-driven configuration for the
// content server.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// StoreBackend selects catalog persistence: "memory" or "postgres".
	StoreBackend string `env:"STORE_BACKEND" env-default:"memory"`
	DB           DbConfig

	// BlobBackend selects asset storage: "memory" or "s3".
	BlobBackend string `env:"BLOB_BACKEND" env-default:"memory"`
	S3          S3Config

	Auth AuthConfig
}

// DbConfig holds Postgres connection settings.
type DbConfig struct {
	Port     uint16 `env:"CONTENT_PG_PORT" env-default:"5432"`
	Host     string `env:"CONTENT_PG_HOST" env-default:"localhost"`
	Name     string `env:"CONTENT_PG_NAME" env-default:"adhd_hub"`
	User     string `env:"CONTENT_PG_USER" env-default:"content"`
	Password string `env:"CONTENT_PG_PASSWORD" env-default:"pwd"`
}

// S3Config holds blob store settings. The endpoint default targets a
// local MinIO for development.
type S3Config struct {
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	BucketName      string `env:"AWS_S3_BUCKET" env-default:"yesigotthis-content"`
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	PresignDuration int    `env:"AWS_S3_PRESIGN_DURATION" env-default:"3600"`
	CreateBucket    bool   `env:"AWS_S3_CREATE_BUCKET" env-default:"false"`
}

// AuthConfig holds token verification settings.
type AuthConfig struct {
	// JWTSecret signs and verifies HS256 tokens. Required outside
	// development.
	JWTSecret string `env:"AUTH_JWT_SECRET" env-default:""`
}

// Load reads configuration from the environment.
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.StoreBackend != "memory" && c.StoreBackend != "postgres" {
		return fmt.Errorf("store backend must be 'memory' or 'postgres', got %q", c.StoreBackend)
	}
	if c.BlobBackend != "memory" && c.BlobBackend != "s3" {
		return fmt.Errorf("blob backend must be 'memory' or 's3', got %q", c.BlobBackend)
	}
	if c.BlobBackend == "s3" && c.S3.BucketName == "" {
		return errors.New("s3 bucket name is required when using the s3 blob backend")
	}
	if c.Environment != "development" && c.Auth.JWTSecret == "" {
		return errors.New("jwt secret is required outside development")
	}
	return nil
}

// DatabaseURL renders the Postgres connection string.
func (c DbConfig) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

// BuildService assembles the catalog service from the configuration. The
// returned stores are also handed back so callers can wire supporting
// components (reconciliation) against the same instances.
func (c *ServerConfig) BuildService(ctx context.Context, logger *slog.Logger) (catalog.Service, catalog.Store, catalog.BlobStore, error) {
	store, err := c.buildStore(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build store: %w", err)
	}

	blobStore, err := c.buildBlobStore()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build blob store: %w", err)
	}

	svc, err := catalog.New(
		catalog.WithStore(store),
		catalog.WithBlobStore(blobStore),
		catalog.WithEventSink(catalog.NewLogEventSink(logger)),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	return svc, store, blobStore, nil
}

func (c *ServerConfig) buildStore(ctx context.Context) (catalog.Store, error) {
	switch c.StoreBackend {
	case "postgres":
		pool, err := pgxpool.New(ctx, c.DB.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return pgstore.NewWithPool(pool), nil
	default:
		return memorystore.New(), nil
	}
}

func (c *ServerConfig) buildBlobStore() (catalog.BlobStore, error) {
	switch c.BlobBackend {
	case "s3":
		return s3blob.New(s3blob.Config{
			Region:                 c.S3.Region,
			Bucket:                 c.S3.BucketName,
			AccessKeyID:            c.S3.AccessKeyID,
			SecretAccessKey:        c.S3.SecretAccessKey,
			Endpoint:               c.S3.Endpoint,
			UsePathStyle:           c.S3.UsePathStyle,
			PresignDuration:        c.S3.PresignDuration,
			CreateBucketIfNotExist: c.S3.CreateBucket,
		})
	default:
		return memoryblob.New(), nil
	}
}
