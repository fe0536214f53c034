package minio

import (
	"context"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Client wraps the MinIO client with the transfer policy used by this service:
// a fixed part size and a fixed number of concurrent part-upload workers.
type Client struct {
	client *minio.Client
	config *Config
	logger *zap.Logger
}

// NewClient creates a new object storage client.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, ErrInvalidArgument
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, WrapErrorWithMessage("NewClient", err, "invalid configuration")
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	}

	if cfg.Region != "" {
		opts.Region = cfg.Region
	}

	if cfg.Transport != nil {
		opts.Transport = cfg.Transport
	}

	minioClient, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, WrapErrorWithMessage("NewClient", err, "failed to create minio client")
	}

	if cfg.TraceEnabled {
		minioClient.TraceOn(os.Stderr)
	}

	client := &Client{
		client: minioClient,
		config: cfg,
		logger: logger,
	}

	if logger != nil {
		logger.Info("object storage client initialized",
			zap.String("endpoint", cfg.Endpoint),
			zap.String("region", cfg.Region),
			zap.Bool("use_ssl", cfg.UseSSL),
			zap.Uint64("part_size", cfg.PartSize),
			zap.Uint("upload_workers", cfg.UploadWorkers),
		)
	}

	return client, nil
}

// Ping checks if the storage server is accessible by listing buckets.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.ListBuckets(ctx)
	if err != nil {
		return WrapErrorWithMessage("Ping", err, "failed to connect to object storage")
	}
	return nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context, bucketName string) error {
	if bucketName == "" {
		return WrapError("EnsureBucket", ErrInvalidBucketName, bucketName, "")
	}

	exists, err := c.client.BucketExists(ctx, bucketName)
	if err != nil {
		return WrapError("EnsureBucket", err, bucketName, "")
	}

	if !exists {
		if err := c.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: c.config.Region}); err != nil {
			return WrapError("EnsureBucket", err, bucketName, "")
		}

		if c.logger != nil {
			c.logger.Info("bucket created", zap.String("bucket", bucketName))
		}
	}

	return nil
}

// Config returns the client configuration.
func (c *Client) Config() *Config {
	return c.config
}

// GetUnderlyingClient returns the underlying MinIO client for operations
// not covered by this wrapper.
func (c *Client) GetUnderlyingClient() *minio.Client {
	return c.client
}
