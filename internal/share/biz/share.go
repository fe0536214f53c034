package biz

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// ObjectStore streams file bytes to durable object storage.
type ObjectStore interface {
	// Put streams the payload under key. It must not buffer the whole stream
	// in memory and returns only when the transfer completed or failed whole.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Get opens the stored object and returns its stream and content type.
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	// IsBackendReported reports whether err was signaled by the backend's
	// protocol rather than being a transport-level or unexpected failure.
	IsBackendReported(err error) bool
}

// GrantIssuer produces a time-bounded URL for an already-stored object.
type GrantIssuer interface {
	IssueURL(ctx context.Context, storageKey string, durationMinutes int) (string, error)
}

// CodeRenderer encodes a URL into a scannable vector image.
type CodeRenderer interface {
	Render(url string) (string, error)
}

// ShareRecordRepo persists and retrieves share records. Write-once: records
// are never updated after Create.
type ShareRecordRepo interface {
	Create(ctx context.Context, record *ShareRecord) error
	GetByID(ctx context.Context, id string) (*ShareRecord, error)
}

// UploadRequest is one inbound upload.
type UploadRequest struct {
	FileName        string
	SizeBytes       int64
	DurationMinutes int
	ContentType     string
	Body            io.Reader
}

// UploadResult is the outcome of a successful pipeline run.
type UploadResult struct {
	Record *ShareRecord
	URL    string
}

// ShareUseCase coordinates the upload pipeline:
//
//	Received -> Stored -> GrantIssued -> Rendered -> Persisted
//
// Stages run strictly sequentially, no stage is retried, and the first failure
// aborts the run with a stage-tagged error. The use case holds no mutable
// state across requests.
type ShareUseCase struct {
	store    ObjectStore
	issuer   GrantIssuer
	renderer CodeRenderer
	repo     ShareRecordRepo

	maxUploadSize int64
	logger        *zap.Logger
}

// NewShareUseCase wires the pipeline's collaborators. maxUploadSize bounds the
// declared payload size accepted at validation.
func NewShareUseCase(
	store ObjectStore,
	issuer GrantIssuer,
	renderer CodeRenderer,
	repo ShareRecordRepo,
	maxUploadSize int64,
	logger *zap.Logger,
) *ShareUseCase {
	return &ShareUseCase{
		store:         store,
		issuer:        issuer,
		renderer:      renderer,
		repo:          repo,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Upload runs one full pipeline attempt for the request. Exactly one run is
// attempted; retrying is the caller's decision.
func (uc *ShareUseCase) Upload(ctx context.Context, req *UploadRequest) (*UploadResult, error) {
	// Received: reject before any side effect.
	if req == nil || req.Body == nil || req.FileName == "" {
		return nil, newStageError(StageValidation, "no file payload provided", nil)
	}
	if req.SizeBytes > uc.maxUploadSize {
		uc.logger.Warn("upload rejected: payload exceeds limit",
			zap.String("file", req.FileName),
			zap.Int64("size", req.SizeBytes),
			zap.Int64("max", uc.maxUploadSize))
		return nil, newStageError(StageValidation, "file exceeds the maximum allowed size", nil)
	}
	if req.DurationMinutes <= 0 {
		return nil, newStageError(StageValidation, "access duration must be positive", nil)
	}

	record := NewShareRecord(req.FileName, req.SizeBytes, req.DurationMinutes)
	log := uc.logger.With(zap.String("record_id", record.ID), zap.String("storage_key", record.StorageKey))

	// Received -> Stored: stream the payload. On failure the partial object
	// may or may not exist in the store; no cleanup is attempted.
	if err := uc.store.Put(ctx, record.StorageKey, req.Body, req.SizeBytes, req.ContentType); err != nil {
		if uc.store.IsBackendReported(err) {
			log.Error("storage backend rejected the upload", zap.Error(err))
			return nil, newStageError(StageStorage, "object storage rejected the upload", err)
		}
		log.Error("unexpected storage failure", zap.Error(err))
		return nil, newStageError(StageStorage, "unexpected failure while storing the file", err)
	}
	log.Info("file stored", zap.Int64("size", record.SizeBytes))

	// Stored -> GrantIssued. A failure here leaves the object orphaned in
	// storage; the backend's lifecycle rules are the only recourse.
	url, err := uc.issuer.IssueURL(ctx, record.StorageKey, record.DurationMinutes)
	if err != nil {
		log.Error("failed to issue access grant", zap.Error(err))
		return nil, newStageError(StageGrant, "failed to issue the access link", err)
	}

	// GrantIssued -> Rendered. URL and code image transition together.
	codeImage, err := uc.renderer.Render(url)
	if err != nil {
		log.Error("failed to render code image", zap.Error(err))
		return nil, newStageError(StageRender, "failed to render the share code", err)
	}
	record.ApplyGrant(url, codeImage)
	log.Info("access grant issued", zap.Int("duration_minutes", record.DurationMinutes))

	// Rendered -> Persisted. The most consequential partial-failure state:
	// a live URL has been handed out with no durable record of it. Log the
	// orphaned grant so an operator can reconcile by hand.
	if err := uc.repo.Create(ctx, record); err != nil {
		log.Error("metadata write failed after grant was issued; url is live but unrecorded",
			zap.String("url", record.URL),
			zap.Error(err))
		return nil, newStageError(StageMetadata, "failed to record the upload", err)
	}
	log.Info("share record persisted")

	return &UploadResult{Record: record, URL: record.URL}, nil
}

// GetRecord looks up a persisted share record by id.
func (uc *ShareUseCase) GetRecord(ctx context.Context, id string) (*ShareRecord, error) {
	return uc.repo.GetByID(ctx, id)
}

// Download streams the stored object for a record back to the caller.
func (uc *ShareUseCase) Download(ctx context.Context, storageKey string) (io.ReadCloser, string, error) {
	return uc.store.Get(ctx, storageKey)
}
