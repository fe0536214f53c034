package minio

import (
	"errors"
	"net/http"
)

const (
	// DefaultPartSize is the payload size at or above which a transfer is
	// split into concurrently uploaded parts (5 MiB, the S3 minimum part size).
	DefaultPartSize = 5 * 1024 * 1024

	// DefaultUploadWorkers is the number of parts uploaded concurrently
	// within one multipart transfer.
	DefaultUploadWorkers = 10
)

// Config represents the configuration for the object storage client.
type Config struct {
	// Endpoint is the S3-compatible object storage endpoint.
	// Examples: "s3.amazonaws.com", "localhost:9000".
	Endpoint string

	// AccessKeyID is the access key for authentication.
	AccessKeyID string

	// SecretAccessKey is the secret key for authentication.
	SecretAccessKey string

	// Region is the region of the object storage (optional).
	Region string

	// UseSSL determines whether to use HTTPS (true) or HTTP (false).
	UseSSL bool

	// PartSize is the fixed part size for multipart transfers. Payloads at or
	// above this size are split into parts; smaller payloads go up in one request.
	PartSize uint64

	// UploadWorkers is the number of parts uploaded concurrently for one object.
	UploadWorkers uint

	// Transport is a custom HTTP transport (optional).
	Transport *http.Transport

	// TraceEnabled enables HTTP request/response tracing for debugging.
	TraceEnabled bool
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("minio: endpoint is required")
	}

	if c.AccessKeyID == "" {
		return errors.New("minio: access key ID is required")
	}

	if c.SecretAccessKey == "" {
		return errors.New("minio: secret access key is required")
	}

	if c.PartSize != 0 && c.PartSize < DefaultPartSize {
		return errors.New("minio: part size below the 5 MiB S3 minimum")
	}

	return nil
}

// SetDefaults sets default values for unspecified configuration fields.
func (c *Config) SetDefaults() {
	if c.PartSize == 0 {
		c.PartSize = DefaultPartSize
	}

	if c.UploadWorkers == 0 {
		c.UploadWorkers = DefaultUploadWorkers
	}
}
