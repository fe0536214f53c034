package service

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/fileshare-backend/internal/pkg/response"
	"github.com/lk2023060901/fileshare-backend/internal/share/biz"
	"go.uber.org/zap"
)

// ShareService exposes the upload pipeline over HTTP.
type ShareService struct {
	uc     *biz.ShareUseCase
	logger *zap.Logger
}

func NewShareService(uc *biz.ShareUseCase, logger *zap.Logger) *ShareService {
	return &ShareService{
		uc:     uc,
		logger: logger,
	}
}

func (s *ShareService) RegisterRoutes(r *gin.RouterGroup) {
	shares := r.Group("/shares")
	{
		shares.POST("", s.UploadFile)
		shares.GET("/:id", s.GetRecord)
		shares.GET("/:id/file", s.DownloadFile)
	}
}

type UploadResponse struct {
	ID               string `json:"id"`
	URL              string `json:"url"`
	CodeSVG          string `json:"code_svg"`
	SizeBytes        int64  `json:"size_bytes"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

type RecordResponse struct {
	ID              string `json:"id"`
	BaseName        string `json:"base_name"`
	Extension       string `json:"extension"`
	CreatedAt       string `json:"created_at"`
	StorageKey      string `json:"storage_key"`
	SizeBytes       int64  `json:"size_bytes"`
	DurationMinutes int    `json:"duration_minutes"`
	URL             string `json:"url"`
	CodeSVG         string `json:"code_svg"`
}

// UploadFile accepts a multipart upload with a "file" part and a
// "duration_minutes" field and runs the full pipeline.
func (s *ShareService) UploadFile(c *gin.Context) {
	durationStr := c.PostForm("duration_minutes")
	if durationStr == "" {
		durationStr = c.Query("duration_minutes")
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		response.StageError(c, http.StatusBadRequest, string(biz.StageValidation), "duration_minutes must be a number of minutes")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.StageError(c, http.StatusBadRequest, string(biz.StageValidation), "no file payload provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("failed to open uploaded file", zap.Error(err))
		response.InternalError(c, "failed to read the upload")
		return
	}
	defer file.Close()

	result, err := s.uc.Upload(c.Request.Context(), &biz.UploadRequest{
		FileName:        fileHeader.Filename,
		SizeBytes:       fileHeader.Size,
		DurationMinutes: duration,
		ContentType:     fileHeader.Header.Get("Content-Type"),
		Body:            file,
	})
	if err != nil {
		s.handlePipelineError(c, err)
		return
	}

	response.Created(c, UploadResponse{
		ID:               result.Record.ID,
		URL:              result.URL,
		CodeSVG:          result.Record.CodeImage,
		SizeBytes:        result.Record.SizeBytes,
		ExpiresInMinutes: result.Record.DurationMinutes,
	})
}

// GetRecord returns the persisted metadata for one upload.
func (s *ShareService) GetRecord(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "invalid record id")
		return
	}

	record, err := s.uc.GetRecord(c.Request.Context(), id)
	if err != nil {
		s.logger.Warn("record lookup failed", zap.String("record_id", id), zap.Error(err))
		response.NotFound(c, "share record not found")
		return
	}

	response.Success(c, toRecordResponse(record))
}

// DownloadFile streams the stored object for a record back to the caller.
func (s *ShareService) DownloadFile(c *gin.Context) {
	id := c.Param("id")

	record, err := s.uc.GetRecord(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "share record not found")
		return
	}

	stream, contentType, err := s.uc.Download(c.Request.Context(), record.StorageKey)
	if err != nil {
		s.logger.Error("failed to open stored object",
			zap.String("record_id", id),
			zap.String("storage_key", record.StorageKey),
			zap.Error(err))
		response.Error(c, http.StatusBadGateway, "failed to read the stored file")
		return
	}
	defer stream.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": `attachment; filename="` + record.BaseName + record.Extension + `"`,
	}
	c.DataFromReader(http.StatusOK, record.SizeBytes, contentType, stream, extraHeaders)
}

// handlePipelineError maps a stage-tagged failure onto an HTTP status without
// leaking backend detail.
func (s *ShareService) handlePipelineError(c *gin.Context, err error) {
	stage := biz.StageOf(err)
	message := biz.UserMessage(err)

	var status int
	switch stage {
	case biz.StageValidation:
		status = http.StatusBadRequest
	case biz.StageStorage, biz.StageGrant:
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if stage != biz.StageValidation {
		s.logger.Error("upload pipeline failed", zap.String("stage", string(stage)), zap.Error(err))
	}

	response.StageError(c, status, string(stage), message)
}

func toRecordResponse(record *biz.ShareRecord) RecordResponse {
	return RecordResponse{
		ID:              record.ID,
		BaseName:        record.BaseName,
		Extension:       record.Extension,
		CreatedAt:       record.CreatedAt.Format("2006-01-02 15:04:05"),
		StorageKey:      record.StorageKey,
		SizeBytes:       record.SizeBytes,
		DurationMinutes: record.DurationMinutes,
		URL:             record.URL,
		CodeSVG:         record.CodeImage,
	}
}
