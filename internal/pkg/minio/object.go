package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PutObjectOptions represents options for uploading an object
type PutObjectOptions struct {
	// ContentType is the content type of the object
	ContentType string
	// UserMetadata is custom metadata for the object
	UserMetadata map[string]string
	// Progress is a reader to track upload progress
	Progress io.Reader
}

// UploadInfo represents information about an uploaded object
type UploadInfo struct {
	Bucket    string
	Key       string
	ETag      string
	Size      int64
	Location  string
	VersionID string
}

// ObjectInfo represents object metadata
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified string
	Metadata     map[string]string
}

// PutObject streams an object into a bucket. The reader is consumed as-is and
// is never buffered whole in memory: payloads at or above the configured part
// size are split into fixed-size parts uploaded by the configured number of
// concurrent workers, and the backend reassembles them. The call returns only
// after every part completed or the transfer failed as a whole. No cleanup of
// partial parts is attempted on failure.
func (c *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts PutObjectOptions) (UploadInfo, error) {
	if bucketName == "" {
		return UploadInfo{}, WrapError("PutObject", ErrInvalidBucketName, bucketName, objectName)
	}

	if objectName == "" {
		return UploadInfo{}, WrapError("PutObject", ErrInvalidObjectName, bucketName, objectName)
	}

	minioOpts := minio.PutObjectOptions{
		ContentType:  opts.ContentType,
		UserMetadata: opts.UserMetadata,
		Progress:     opts.Progress,
		PartSize:     c.config.PartSize,
		NumThreads:   c.config.UploadWorkers,
	}

	info, err := c.client.PutObject(ctx, bucketName, objectName, reader, objectSize, minioOpts)
	if err != nil {
		return UploadInfo{}, WrapError("PutObject", err, bucketName, objectName)
	}

	if c.logger != nil {
		c.logger.Info("object uploaded",
			zap.String("bucket", bucketName),
			zap.String("object", objectName),
			zap.Int64("size", info.Size),
			zap.String("etag", info.ETag),
		)
	}

	return UploadInfo{
		Bucket:    info.Bucket,
		Key:       info.Key,
		ETag:      info.ETag,
		Size:      info.Size,
		Location:  info.Location,
		VersionID: info.VersionID,
	}, nil
}

// GetObject opens an object for reading and returns the stream together with
// its stored content type. The caller owns the returned stream and must close it.
func (c *Client) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, string, error) {
	if bucketName == "" {
		return nil, "", WrapError("GetObject", ErrInvalidBucketName, bucketName, objectName)
	}

	if objectName == "" {
		return nil, "", WrapError("GetObject", ErrInvalidObjectName, bucketName, objectName)
	}

	object, err := c.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", WrapError("GetObject", err, bucketName, objectName)
	}

	// GetObject is lazy; Stat performs the request and surfaces missing keys.
	stat, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, "", WrapError("GetObject", err, bucketName, objectName)
	}

	return object, stat.ContentType, nil
}

// StatObject gets object metadata without reading the payload.
func (c *Client) StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error) {
	if bucketName == "" {
		return ObjectInfo{}, WrapError("StatObject", ErrInvalidBucketName, bucketName, objectName)
	}

	if objectName == "" {
		return ObjectInfo{}, WrapError("StatObject", ErrInvalidObjectName, bucketName, objectName)
	}

	info, err := c.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, WrapError("StatObject", err, bucketName, objectName)
	}

	return ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  info.ContentType,
		LastModified: info.LastModified.Format("2006-01-02 15:04:05"),
		Metadata:     info.UserMetadata,
	}, nil
}
