package data

import (
	"context"
	"io"
	"net/url"
	"time"

	pkgminio "github.com/lk2023060901/fileshare-backend/internal/pkg/minio"
	"go.uber.org/zap"
)

const defaultContentType = "application/octet-stream"

// MinIOObjectStore implements biz.ObjectStore over the object storage client.
type MinIOObjectStore struct {
	client *pkgminio.Client
	bucket string
}

func NewMinIOObjectStore(client *pkgminio.Client, bucket string) *MinIOObjectStore {
	return &MinIOObjectStore{client: client, bucket: bucket}
}

func (s *MinIOObjectStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = defaultContentType
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, pkgminio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinIOObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.client.GetObject(ctx, s.bucket, key)
}

func (s *MinIOObjectStore) IsBackendReported(err error) bool {
	return pkgminio.IsBackendReported(err)
}

// Presigner is the slice of the storage client the grant issuer needs.
type Presigner interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration, reqParams url.Values) (*url.URL, error)
}

// Shortener is the external link-shortening collaborator.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// AccessGrantIssuer implements biz.GrantIssuer: it requests a signed,
// time-bounded URL from the storage backend and optionally replaces it with a
// shortened alias. Shortener failures are never fatal to issuance.
type AccessGrantIssuer struct {
	presigner Presigner
	bucket    string
	shortener Shortener
	logger    *zap.Logger
}

// NewAccessGrantIssuer creates the issuer. shortener may be nil to disable
// aliasing.
func NewAccessGrantIssuer(presigner Presigner, bucket string, shortener Shortener, logger *zap.Logger) *AccessGrantIssuer {
	return &AccessGrantIssuer{
		presigner: presigner,
		bucket:    bucket,
		shortener: shortener,
		logger:    logger,
	}
}

func (i *AccessGrantIssuer) IssueURL(ctx context.Context, storageKey string, durationMinutes int) (string, error) {
	expiry := time.Duration(durationMinutes) * time.Minute

	signedURL, err := i.presigner.PresignedGetObject(ctx, i.bucket, storageKey, expiry, nil)
	if err != nil {
		return "", err
	}
	signed := signedURL.String()

	if i.shortener == nil {
		return signed, nil
	}

	short, err := i.shortener.Shorten(ctx, signed)
	if err != nil {
		i.logger.Warn("shortener failed, using signed url",
			zap.String("storage_key", storageKey),
			zap.Error(err))
		return signed, nil
	}
	if short == "" {
		return signed, nil
	}

	return short, nil
}
