package focus

import (
	"context"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
)

// MetricQuery selects the metric series of one detector and entity combination.
type MetricQuery struct {
	Job           *job.Job
	DetectorIndex int
	Entities      []v1.Entity
	Earliest      time.Time
	Latest        time.Time
	Interval      time.Duration

	// ModelPlotEnabled reads model plot output instead of raw samples.
	ModelPlotEnabled bool
	// Aggregation overrides the detector's default backend aggregation when set.
	Aggregation      string
}

// AnomalyQuery selects record results. Results are unpaged.
type AnomalyQuery struct {
	JobIDs              []string
	CriteriaFields      []v1.Entity
	Threshold           float64
	Earliest            time.Time
	Latest              time.Time
	IntervalExpression  string
	FunctionDescription string
}

// ScheduledEventsQuery selects scheduled events grouped into chart buckets.
type ScheduledEventsQuery struct {
	JobIDs             []string
	Earliest           time.Time
	Latest             time.Time
	Interval           time.Duration
	MaxEventsPerBucket int
	MaxEvents          int
}

// AnnotationsQuery selects the annotations of a job.
type AnnotationsQuery struct {
	JobIDs         []string
	Earliest       time.Time
	Latest         time.Time
	MaxAnnotations int
	DetectorIndex  int
	Entities       []v1.Entity
}

// AggregationOverride replaces the aggregation applied to the prediction (Avg),
// upper bound (Max) and lower bound (Min) of forecast buckets.
type AggregationOverride struct {
	Avg string `json:"avg"`
	Max string `json:"max"`
	Min string `json:"min"`
}

// ForecastQuery selects the output of one forecast run.
type ForecastQuery struct {
	Job           *job.Job
	DetectorIndex int
	ForecastID    string
	Entities      []v1.Entity
	Earliest      time.Time
	Latest        time.Time
	Interval      time.Duration
	AggType       *AggregationOverride
}

// MetricSource loads metric series.
type MetricSource interface {
	GetMetricData(ctx context.Context, q MetricQuery) (*v1.MetricData, error)
}

// AnomalySource loads anomaly records.
type AnomalySource interface {
	GetAnomalyRecords(ctx context.Context, q AnomalyQuery) (*v1.AnomalyRecords, error)
}

// ScheduledEventSource loads scheduled events by bucket.
type ScheduledEventSource interface {
	GetScheduledEventsByBucket(ctx context.Context, q ScheduledEventsQuery) (*v1.ScheduledEventsByBucket, error)
}

// AnnotationSource loads annotations.
type AnnotationSource interface {
	GetAnnotations(ctx context.Context, q AnnotationsQuery) (*v1.AnnotationsResponse, error)
}

// ForecastSource loads forecast output.
type ForecastSource interface {
	GetForecastData(ctx context.Context, q ForecastQuery) (*v1.ForecastData, error)
}

// ChartProcessor shapes query results into chart points.
type ChartProcessor interface {
	ProcessMetricPlotResults(results []v1.MetricBucket, modelPlotEnabled bool) []v1.ChartPoint
	ProcessDataForFocusAnomalies(
		points []v1.ChartPoint,
		records []v1.AnomalyRecord,
		interval aggregation.Interval,
		modelPlotEnabled bool,
		functionDescription string,
	) []v1.ChartPoint
	ProcessScheduledEventsForChart(points []v1.ChartPoint, events []v1.ScheduledEventBucket, interval aggregation.Interval) []v1.ChartPoint
	ProcessForecastResults(results []v1.ForecastBucket) []v1.ForecastPoint
}

// Reporter receives focus load outcomes for telemetry.
type Reporter interface {
	ReportFocusLoad(jobID, outcome string, duration time.Duration)
	ReportAnnotationFailure(jobID string)
}

type nopReporter struct{}

func (nopReporter) ReportFocusLoad(string, string, time.Duration) {}
func (nopReporter) ReportAnnotationFailure(string)                {}
