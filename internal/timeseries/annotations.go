package timeseries

import (
	"context"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/aevon-lab/anomaly-explorer/internal/focus"
)

// GetAnnotations returns the annotations of the window grouped by job id.
func (c *Client) GetAnnotations(ctx context.Context, q focus.AnnotationsQuery) (*v1.AnnotationsResponse, error) {
	annotations, err := withRetry(ctx, c, "annotations", func(ctx context.Context) ([]v1.Annotation, error) {
		return c.annotations.QueryAnnotations(ctx, storage.AnnotationFilter{
			JobIDs:        q.JobIDs,
			Start:         q.Earliest,
			End:           q.Latest,
			DetectorIndex: q.DetectorIndex,
			Entities:      q.Entities,
			Limit:         q.MaxAnnotations,
		})
	})
	if err != nil {
		return nil, err
	}

	byJob := make(map[string][]v1.Annotation, len(q.JobIDs))
	for _, jobID := range q.JobIDs {
		byJob[jobID] = []v1.Annotation{}
	}
	for _, a := range annotations {
		byJob[a.JobID] = append(byJob[a.JobID], a)
	}

	return &v1.AnnotationsResponse{
		Success:     true,
		Annotations: byJob,
		TotalCount:  len(annotations),
	}, nil
}
