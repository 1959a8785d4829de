package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/yesigotthis/adhd-hub/pkg/catalog"
)

// Config options for the S3 backend
type Config struct {
	Region          string // AWS region
	Bucket          string // S3 bucket name
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	Endpoint        string // Optional custom endpoint for S3-compatible services
	UsePathStyle    bool   // Use path-style addressing (default: false)
	PresignDuration int    // Duration in seconds for presigned URLs (default: 3600)

	// MinIO/S3-compatible service options
	CreateBucketIfNotExist bool // Create bucket if it doesn't exist
}

// Gateway is an S3-compatible implementation of the catalog.BlobStore interface
type Gateway struct {
	client          *s3.Client
	bucket          string
	presignClient   *s3.PresignClient
	presignDuration time.Duration
	config          Config
}

// New creates a new S3-compatible blob store gateway
func New(config Config) (*Gateway, error) {
	if config.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}

	if config.Region == "" {
		config.Region = "us-east-1"
	}

	if config.PresignDuration == 0 {
		config.PresignDuration = 3600 // 1 hour default
	}

	var awsCfg aws.Config
	var err error

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			)),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Options []func(*s3.Options)

	// Custom endpoint for S3-compatible services (MinIO, etc.)
	if config.Endpoint != "" {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = config.UsePathStyle
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Options...)
	presignClient := s3.NewPresignClient(client)

	gateway := &Gateway{
		client:          client,
		bucket:          config.Bucket,
		presignClient:   presignClient,
		presignDuration: time.Duration(config.PresignDuration) * time.Second,
		config:          config,
	}

	if config.CreateBucketIfNotExist {
		if err := gateway.createBucketIfNotExists(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return gateway, nil
}

// createBucketIfNotExists creates the bucket if it doesn't exist
func (g *Gateway) createBucketIfNotExists(ctx context.Context) error {
	_, err := g.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(g.bucket),
	})

	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket

	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) &&
		!strings.Contains(err.Error(), "BadRequest") &&
		!strings.Contains(err.Error(), "NoSuchBucket") {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	createInput := &s3.CreateBucketInput{
		Bucket: aws.String(g.bucket),
	}

	// Location constraint is required for regions other than us-east-1
	if g.config.Region != "us-east-1" {
		createInput.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(g.config.Region),
		}
	}

	_, err = g.client.CreateBucket(ctx, createInput)
	if err != nil {
		if strings.Contains(err.Error(), "BucketAlreadyExists") ||
			strings.Contains(err.Error(), "BucketAlreadyOwnedByYou") {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

// GetUploadURL returns a presigned URL for uploading one object. The URL is
// time-limited and the caller must send the same Content-Type when PUTing.
func (g *Gateway) GetUploadURL(ctx context.Context, objectKey, mimeType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(mimeType),
	}

	result, err := g.presignClient.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = g.presignDuration
	})

	if err != nil {
		return "", g.wrapError("presign_put", objectKey, err)
	}

	return result.URL, nil
}

// Upload uploads content directly to S3
func (g *Gateway) Upload(ctx context.Context, objectKey, mimeType string, reader io.Reader) error {
	uploader := manager.NewUploader(g.client)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(objectKey),
		Body:        reader,
		ContentType: aws.String(mimeType),
	}

	if _, err := uploader.Upload(ctx, input); err != nil {
		return g.wrapError("upload", objectKey, err)
	}

	return nil
}

// GetDownloadURL returns a presigned URL for downloading content
func (g *Gateway) GetDownloadURL(ctx context.Context, objectKey string) (string, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(objectKey),
	}

	result, err := g.presignClient.PresignGetObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = g.presignDuration
	})

	if err != nil {
		return "", g.wrapError("presign_get", objectKey, err)
	}

	return result.URL, nil
}

// Download downloads content directly from S3
func (g *Gateway) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	result, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		return nil, g.wrapError("download", objectKey, err)
	}

	return result.Body, nil
}

// Delete deletes content from S3
func (g *Gateway) Delete(ctx context.Context, objectKey string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		return g.wrapError("delete", objectKey, err)
	}

	return nil
}

// List returns metadata for every object under prefix, paging through the
// bucket until the listing is exhausted.
func (g *Gateway) List(ctx context.Context, prefix string) ([]catalog.ObjectInfo, error) {
	var result []catalog.ObjectInfo

	paginator := s3.NewListObjectsV2Paginator(g.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, g.wrapError("list", prefix, err)
		}
		for _, object := range page.Contents {
			info := catalog.ObjectInfo{
				Key: aws.ToString(object.Key),
			}
			if object.Size != nil {
				info.Size = *object.Size
			}
			if object.LastModified != nil {
				info.LastModified = *object.LastModified
			}
			result = append(result, info)
		}
	}

	return result, nil
}

func (g *Gateway) wrapError(op, key string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		err = fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return &catalog.StorageError{
		Backend: "s3",
		Key:     key,
		Op:      op,
		Err:     fmt.Errorf("%w: %v", catalog.ErrStoreUnavailable, err),
	}
}
