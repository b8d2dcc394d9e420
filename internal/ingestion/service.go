// Package ingestion accepts user annotations for anomaly detection jobs.
package ingestion

import (
	"time"

	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Service struct {
	jobs             job.Repository
	store            storage.AnnotationStore
	maxBodySizeBytes int
	nowFn            func() time.Time
	newID            func() string
}

func NewService(jobs job.Repository, store storage.AnnotationStore, maxBodySizeMB int) *Service {
	if jobs == nil {
		panic("ingestion: job repository must not be nil")
	}
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		jobs:             jobs,
		store:            store,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            time.Now,
		newID:            func() string { return uuid.NewString() },
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/annotations", s.IngestHandler)
}
