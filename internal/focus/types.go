package focus

import (
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
)

const (
	// MaxScheduledEvents caps the scheduled events loaded for one focus window.
	MaxScheduledEvents = 10
	// scheduledEventsPerBucket is the number of events kept per chart bucket.
	scheduledEventsPerBucket = 1
	// AnnotationsDefaultQuerySize caps the annotations loaded for one focus window.
	AnnotationsDefaultQuerySize = 500
)

// Load outcomes reported to telemetry.
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial" // annotations failed, chart still served
	OutcomeError   = "error"
)

// FocusRequest describes one focus window of a job's detector.
type FocusRequest struct {
	CriteriaFields   []v1.Entity
	DetectorIndex    int
	Interval         aggregation.Interval
	ForecastID       string // empty when no forecast is shown
	ModelPlotEnabled bool
	Entities         []v1.Entity // non-blank entity filters
	Earliest         time.Time
	Latest           time.Time
	Job              *job.Job
	// FunctionDescription overrides the charted function ("mean", "sum", ...).
	FunctionDescription string
}

// ForecastRequest is either NoForecast or a ForecastQuery, decided before any
// fetch is dispatched.
type ForecastRequest interface {
	forecastRequest()
}

// NoForecast means the focus window shows no forecast.
type NoForecast struct{}

func (NoForecast) forecastRequest()    {}
func (ForecastQuery) forecastRequest() {}

// FocusQueryRequest is the HTTP shape of a focus query.
type FocusQueryRequest struct {
	JobID         string    `uri:"job_id" form:"-"`
	DetectorIndex int       `form:"detector_index"`
	Interval      string    `form:"interval"` // default: the job's bucket span
	Start         time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End           time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ForecastID    string    `form:"forecast_id"`
	Function      string    `form:"function"`
	ModelPlot     string    `form:"model_plot"` // true/false; default: derived from the job's model plot config
	Entities      []string  `form:"entity"`     // field:value, repeatable
}
