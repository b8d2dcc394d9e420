package v1

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ChartPoint is one point of the focus chart. Value is null for buckets that
// only exist because an anomaly or scheduled event falls into them.
type ChartPoint struct {
	Date  time.Time            `json:"date"`
	Value decimal.NullDecimal  `json:"value"`
	Upper *decimal.NullDecimal `json:"upper,omitempty"` // nil unless model plot is enabled
	Lower *decimal.NullDecimal `json:"lower,omitempty"`

	// Anomaly marker, set by the anomaly overlay.
	AnomalyScore        *float64  `json:"anomalyScore,omitempty"`
	Actual              []float64 `json:"actual,omitempty"`
	Typical             []float64 `json:"typical,omitempty"`
	Function            string    `json:"function,omitempty"`
	FunctionDescription string    `json:"functionDescription,omitempty"`
	ByFieldName         string    `json:"byFieldName,omitempty"`
	ByFieldValue        string    `json:"byFieldValue,omitempty"`
	MultiBucketImpact   *float64  `json:"multiBucketImpact,omitempty"`

	// Scheduled events overlapping the bucket, set by the event overlay.
	ScheduledEvents []string `json:"scheduledEvents,omitempty"`
}

// ForecastPoint is one point of a forecast series.
type ForecastPoint struct {
	Date  time.Time           `json:"date"`
	Value decimal.NullDecimal `json:"value"`
	Upper decimal.NullDecimal `json:"upper"`
	Lower decimal.NullDecimal `json:"lower"`
}

// FocusData is the chart-ready result for one focus window.
//
// FocusForecastData and ShowForecastCheckbox are only set when a forecast was
// requested. A requested forecast is always encoded, as [] when empty. FocusAnnotationError is only set when annotations failed to load,
// in which case FocusAnnotationData is empty.
type FocusData struct {
	FocusChartData       []ChartPoint           `json:"focusChartData"`
	AnomalyRecords       []AnomalyRecord        `json:"anomalyRecords"`
	ScheduledEvents      []ScheduledEventBucket `json:"scheduledEvents"`
	ShowForecastCheckbox *bool                  `json:"showForecastCheckbox,omitempty"`
	FocusAnnotationError string                 `json:"focusAnnotationError,omitempty"`
	FocusAnnotationData  []Annotation           `json:"focusAnnotationData"`
	FocusForecastData    []ForecastPoint        `json:"focusForecastData,omitempty"`
}

// MarshalJSON omits focusForecastData only when no forecast was requested.
func (d FocusData) MarshalJSON() ([]byte, error) {
	type plain FocusData
	out := struct {
		plain
		FocusForecastData *[]ForecastPoint `json:"focusForecastData,omitempty"`
	}{plain: plain(d)}

	if d.ShowForecastCheckbox != nil || d.FocusForecastData != nil {
		points := d.FocusForecastData
		if points == nil {
			points = []ForecastPoint{}
		}
		out.FocusForecastData = &points
	}
	return json.Marshal(out)
}
