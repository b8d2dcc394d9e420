package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	httperr "github.com/aevon-lab/anomaly-explorer/internal/core/errors"
	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed      = "Failed to read request body"
	msgInvalidJSON         = "Invalid JSON body"
	msgPersistFailed       = "Failed to persist annotation"
	msgDuplicateAnnotation = "Annotation already exists"
	msgJobNotFound         = "Job not found"
	defaultUsername        = "anonymous"
)

// ingestionError carries the structured HTTP error shape from a helper back to the handler.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler handles POST /v1/annotations. The server assigns the id and
// the create/modify timestamps; the stored annotation is echoed back.
func (s *Service) IngestHandler(c *gin.Context) {
	ann, payloadSize, err := s.parseAnnotation(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.validateAnnotation(c.Request.Context(), ann); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Ingestion] Received annotation",
		"annotation_id", ann.ID,
		"job_id", ann.JobID,
		"type", ann.Type,
		"payload_size", payloadSize)

	if err := s.persistAnnotation(c.Request.Context(), ann); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ann)
}

// parseAnnotation reads the size-limited body and binds it into an Annotation.
func (s *Service) parseAnnotation(c *gin.Context) (*v1.Annotation, int, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var ann v1.Annotation
	if err := c.ShouldBindJSON(&ann); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	now := s.nowFn().UTC()
	ann.ID = s.newID()
	ann.Key = ""
	ann.CreateTime = now
	ann.ModifiedTime = now
	if ann.CreateUsername == "" {
		ann.CreateUsername = defaultUsername
	}
	ann.ModifiedUsername = ann.CreateUsername
	if ann.Event == "" {
		ann.Event = "user"
	}
	return &ann, len(bodyBytes), nil
}

// validateAnnotation checks the annotation itself, then that it points at an
// existing job and detector.
func (s *Service) validateAnnotation(ctx context.Context, ann *v1.Annotation) *ingestionError {
	if err := ann.Validate(); err != nil {
		slog.Warn("[Ingestion] Annotation validation failed", "error", err, "job_id", ann.JobID)
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpAnnotationInvalidError,
			message:    err.Error(),
		}
	}

	j, err := s.jobs.Get(ctx, ann.JobID)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return &ingestionError{
				statusCode: http.StatusNotFound,
				errorType:  httperr.HttpJobNotFoundError,
				message:    msgJobNotFound,
				details:    map[string]interface{}{"job_id": ann.JobID},
			}
		}
		slog.Error("[Ingestion] Failed to load job", "error", err, "job_id", ann.JobID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    err.Error(),
		}
	}

	if ann.DetectorIndex != nil {
		if _, err := j.Detector(*ann.DetectorIndex); err != nil {
			return &ingestionError{
				statusCode: http.StatusBadRequest,
				errorType:  httperr.HttpAnnotationInvalidError,
				message:    err.Error(),
			}
		}
	}

	return nil
}

// persistAnnotation saves the annotation to the backing store.
func (s *Service) persistAnnotation(ctx context.Context, ann *v1.Annotation) *ingestionError {
	if err := s.store.SaveAnnotation(ctx, ann); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("[Ingestion] Duplicate annotation rejected", "annotation_id", ann.ID, "job_id", ann.JobID)
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateAnnotation,
				message:    msgDuplicateAnnotation,
			}
		}

		slog.Error("[Ingestion] Failed to persist annotation", "error", err, "annotation_id", ann.ID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	return nil
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
