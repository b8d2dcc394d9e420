package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricBucket is one bucket of a metric series. Upper and Lower are only
// valid when the series was read from model plot results.
type MetricBucket struct {
	Time  time.Time           `json:"time"`
	Value decimal.NullDecimal `json:"value"`
	Upper decimal.NullDecimal `json:"upper"`
	Lower decimal.NullDecimal `json:"lower"`
}

// MetricData is the metric series for one detector and entity combination,
// ascending by Time.
type MetricData struct {
	Success bool           `json:"success"`
	Results []MetricBucket `json:"results"`
}

// AnomalyRecord is a record-level anomaly result.
type AnomalyRecord struct {
	JobID               string    `json:"job_id"`
	ResultType          string    `json:"result_type"`
	DetectorIndex       int       `json:"detector_index"`
	Timestamp           time.Time `json:"timestamp"`
	BucketSpan          int64     `json:"bucket_span"` // seconds
	RecordScore         float64   `json:"record_score"`
	InitialRecordScore  float64   `json:"initial_record_score"`
	Probability         float64   `json:"probability"`
	MultiBucketImpact   *float64  `json:"multi_bucket_impact,omitempty"`
	Function            string    `json:"function"`
	FunctionDescription string    `json:"function_description"`
	FieldName           string    `json:"field_name,omitempty"`
	ByFieldName         string    `json:"by_field_name,omitempty"`
	ByFieldValue        string    `json:"by_field_value,omitempty"`
	OverFieldName       string    `json:"over_field_name,omitempty"`
	OverFieldValue      string    `json:"over_field_value,omitempty"`
	PartitionFieldName  string    `json:"partition_field_name,omitempty"`
	PartitionFieldValue string    `json:"partition_field_value,omitempty"`
	Actual              []float64 `json:"actual,omitempty"`
	Typical             []float64 `json:"typical,omitempty"`
	IsInterim           bool      `json:"is_interim"`
}

// AnomalyRecords is the unordered record set returned by the results store.
type AnomalyRecords struct {
	Success bool            `json:"success"`
	Records []AnomalyRecord `json:"records"`
}

// ScheduledEventBucket lists the descriptions of the scheduled events
// overlapping one chart bucket.
type ScheduledEventBucket struct {
	Time         time.Time `json:"time"`
	Descriptions []string  `json:"descriptions"`
}

// ScheduledEventsByBucket maps job id to the job's event buckets, ascending by Time.
type ScheduledEventsByBucket struct {
	Success bool                              `json:"success"`
	Events  map[string][]ScheduledEventBucket `json:"events"`
}

// ForecastBucket is one bucket of forecast output.
type ForecastBucket struct {
	Time       time.Time           `json:"time"`
	Prediction decimal.NullDecimal `json:"prediction"`
	Upper      decimal.NullDecimal `json:"upper"`
	Lower      decimal.NullDecimal `json:"lower"`
}

// ForecastData is the forecast series for one forecast run.
type ForecastData struct {
	Success bool             `json:"success"`
	Results []ForecastBucket `json:"results"`
}
