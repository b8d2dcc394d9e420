package focus

import (
	"errors"
	"net/http"

	httperr "github.com/aevon-lab/anomaly-explorer/internal/core/errors"
	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all focus API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/jobs", s.HandleListJobs)
	r.GET("/v1/jobs/:job_id/focus", s.HandleFocusData)
	r.GET("/v1/jobs/:job_id/loading", s.HandleLoadingStream)
}

// HandleFocusData handles GET /v1/jobs/:job_id/focus
// Query parameters: detector_index, interval, start, end, forecast_id, function, model_plot, entity
func (s *Service) HandleFocusData(c *gin.Context) {
	var uri struct {
		JobID string `uri:"job_id" binding:"required"`
	}
	var query FocusQueryRequest

	// Bind URI parameters (job_id)
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid path parameters",
			Details:   err.Error(),
		})
		return
	}

	// Bind query parameters (start, end, interval, ...)
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}
	query.JobID = uri.JobID

	resp, err := s.LoadFocusData(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuery):
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid focus query",
				Details:   err.Error(),
			})
		case errors.Is(err, job.ErrJobNotFound):
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpJobNotFoundError,
				Message:   "Job not found",
				Details:   err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to load focus data",
				Details:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// jobSummary is the list view of a job definition.
type jobSummary struct {
	JobID       string   `json:"job_id"`
	Description string   `json:"description,omitempty"`
	BucketSpan  string   `json:"bucket_span"`
	Detectors   []string `json:"detectors"`
	ModelPlot   bool     `json:"model_plot_enabled"`
}

// HandleListJobs handles GET /v1/jobs
func (s *Service) HandleListJobs(c *gin.Context) {
	jobs, err := s.jobs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to list jobs",
			Details:   err.Error(),
		})
		return
	}

	out := make([]jobSummary, 0, len(jobs))
	for _, j := range jobs {
		detectors := make([]string, 0, len(j.Detectors))
		for _, d := range j.Detectors {
			desc := d.Description
			if desc == "" {
				desc = d.Function
				if d.FieldName != "" {
					desc += "(" + d.FieldName + ")"
				}
			}
			detectors = append(detectors, desc)
		}
		out = append(out, jobSummary{
			JobID:       j.JobID,
			Description: j.Description,
			BucketSpan:  j.BucketSpan.Expression,
			Detectors:   detectors,
			ModelPlot:   j.ModelPlot.Enabled,
		})
	}

	c.JSON(http.StatusOK, gin.H{"jobs": out})
}
