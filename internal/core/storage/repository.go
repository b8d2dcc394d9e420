package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicate is returned when an annotation with the same id already exists.
	ErrDuplicate = errors.New("annotation already exists")

	// ErrTransient marks failures that may succeed when retried (lost
	// connections, serialization failures, server shutdown).
	ErrTransient = errors.New("transient storage failure")
)

// MetricSample is one raw input document of a datafeed source.
type MetricSample struct {
	Timestamp time.Time
	Entities  map[string]string
	Data      map[string]interface{}
}

// SampleFilter selects raw samples of one datafeed source in [Start, End).
type SampleFilter struct {
	Source   string
	Entities []v1.Entity
	Start    time.Time
	End      time.Time
}

// ModelPlotRow is the model output of one detector for one bucket.
type ModelPlotRow struct {
	Timestamp   time.Time
	Actual      decimal.NullDecimal
	ModelUpper  decimal.NullDecimal
	ModelLower  decimal.NullDecimal
	ModelMedian decimal.NullDecimal
}

// ModelPlotFilter selects model plot rows of one detector in [Start, End).
type ModelPlotFilter struct {
	JobID         string
	DetectorIndex int
	Entities      []v1.Entity
	Start         time.Time
	End           time.Time
}

// RecordFilter selects anomaly records in [Start, End).
type RecordFilter struct {
	JobIDs              []string
	DetectorIndex       *int
	Entities            []v1.Entity
	Start               time.Time
	End                 time.Time
	MinScore            float64
	FunctionDescription string
}

// ScheduledEvent is a calendar event attached to a job, active in [Start, End).
type ScheduledEvent struct {
	JobID       string
	Description string
	Start       time.Time
	End         time.Time
}

// EventFilter selects scheduled events overlapping [Start, End).
type EventFilter struct {
	JobIDs []string
	Start  time.Time
	End    time.Time
}

// AnnotationFilter selects annotations overlapping [Start, End).
// Annotations without a detector index or entity fields match any detector or entity.
type AnnotationFilter struct {
	JobIDs        []string
	Start         time.Time
	End           time.Time
	DetectorIndex int
	Entities      []v1.Entity
	Limit         int
}

// ForecastRow is the output of one forecast run for one bucket.
type ForecastRow struct {
	Timestamp  time.Time
	Prediction decimal.Decimal
	Upper      decimal.Decimal
	Lower      decimal.Decimal
}

// ForecastFilter selects the rows of one forecast run in [Start, End).
type ForecastFilter struct {
	JobID         string
	DetectorIndex int
	ForecastID    string
	Entities      []v1.Entity
	Start         time.Time
	End           time.Time
}

// MetricStore reads raw samples and model plot output.
type MetricStore interface {
	QueryMetricSamples(ctx context.Context, filter SampleFilter) ([]MetricSample, error)
	QueryModelPlot(ctx context.Context, filter ModelPlotFilter) ([]ModelPlotRow, error)
}

// ResultStore reads anomaly detection results.
type ResultStore interface {
	QueryAnomalyRecords(ctx context.Context, filter RecordFilter) ([]v1.AnomalyRecord, error)
	QueryScheduledEvents(ctx context.Context, filter EventFilter) ([]ScheduledEvent, error)
	QueryForecast(ctx context.Context, filter ForecastFilter) ([]ForecastRow, error)
}

// AnnotationStore stores and retrieves annotations.
type AnnotationStore interface {
	SaveAnnotation(ctx context.Context, annotation *v1.Annotation) error
	QueryAnnotations(ctx context.Context, filter AnnotationFilter) ([]v1.Annotation, error)
}
