// Package chart shapes query results into focus chart points.
package chart

import (
	"sort"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/shopspring/decimal"
)

// functionMetric is the detector function whose records carry min, mean and
// max; only records matching the charted function description are overlaid.
const functionMetric = "metric"

// Processor is the default set of slice processors used by the focus service.
type Processor struct{}

// NewProcessor returns a Processor.
func NewProcessor() Processor {
	return Processor{}
}

// ProcessMetricPlotResults converts metric buckets into ascending chart points.
// Model bounds are carried over only when model plot is enabled.
func (Processor) ProcessMetricPlotResults(results []v1.MetricBucket, modelPlotEnabled bool) []v1.ChartPoint {
	points := make([]v1.ChartPoint, 0, len(results))
	for _, r := range results {
		p := v1.ChartPoint{Date: r.Time, Value: r.Value}
		if modelPlotEnabled {
			upper, lower := r.Upper, r.Lower
			p.Upper = &upper
			p.Lower = &lower
		}
		points = append(points, p)
	}
	sortPoints(points)
	return points
}

// ProcessDataForFocusAnomalies marks the chart point of every anomaly record's
// bucket, adding null points for buckets with no metric data. When several
// records fall into one point the highest scoring record wins.
func (Processor) ProcessDataForFocusAnomalies(
	points []v1.ChartPoint,
	records []v1.AnomalyRecord,
	interval aggregation.Interval,
	modelPlotEnabled bool,
	functionDescription string,
) []v1.ChartPoint {
	missing := make(map[time.Time]struct{})
	for _, r := range records {
		if findPoint(points, r.Timestamp, interval.Duration) < 0 {
			missing[aggregation.BucketFor(r.Timestamp, interval.Duration)] = struct{}{}
		}
	}
	points = addNullPoints(points, missing, modelPlotEnabled)

	for _, r := range records {
		if r.Function == functionMetric && r.FunctionDescription != functionDescription {
			continue
		}
		i := findPoint(points, r.Timestamp, interval.Duration)
		if i < 0 {
			continue
		}
		p := &points[i]
		if p.AnomalyScore != nil && *p.AnomalyScore >= r.RecordScore {
			continue
		}

		score := r.RecordScore
		p.AnomalyScore = &score
		p.Function = r.Function
		p.FunctionDescription = r.FunctionDescription
		if len(r.Actual) > 0 {
			// Without a metric value the point would plot at zero; use the record's actual instead.
			if !p.Value.Valid || r.Function == functionMetric {
				p.Value = decimal.NewNullDecimal(decimal.NewFromFloat(r.Actual[0]))
			}
			p.Actual = r.Actual
			p.Typical = r.Typical
		}
		if r.ByFieldName != "" {
			p.ByFieldName = r.ByFieldName
			p.ByFieldValue = r.ByFieldValue
		}
		if r.MultiBucketImpact != nil {
			impact := *r.MultiBucketImpact
			p.MultiBucketImpact = &impact
		}
	}

	return points
}

// ProcessScheduledEventsForChart attaches scheduled event descriptions to the
// point of each event bucket, adding null points for buckets with no metric data.
func (Processor) ProcessScheduledEventsForChart(
	points []v1.ChartPoint,
	events []v1.ScheduledEventBucket,
	interval aggregation.Interval,
) []v1.ChartPoint {
	if len(events) == 0 {
		return points
	}

	missing := make(map[time.Time]struct{})
	for _, e := range events {
		if findPoint(points, e.Time, interval.Duration) < 0 {
			missing[aggregation.BucketFor(e.Time, interval.Duration)] = struct{}{}
		}
	}
	points = addNullPoints(points, missing, hasBounds(points))

	for _, e := range events {
		if i := findPoint(points, e.Time, interval.Duration); i >= 0 {
			points[i].ScheduledEvents = append(points[i].ScheduledEvents, e.Descriptions...)
		}
	}
	return points
}

// ProcessForecastResults converts forecast buckets into ascending forecast points.
func (Processor) ProcessForecastResults(results []v1.ForecastBucket) []v1.ForecastPoint {
	points := make([]v1.ForecastPoint, 0, len(results))
	for _, r := range results {
		points = append(points, v1.ForecastPoint{
			Date:  r.Time,
			Value: r.Prediction,
			Upper: r.Upper,
			Lower: r.Lower,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// findPoint returns the index of the point whose bucket contains t, preferring
// an exact timestamp match, or -1. points must be ascending by Date.
func findPoint(points []v1.ChartPoint, t time.Time, bucket time.Duration) int {
	// First point strictly after t; the candidate is the one before it.
	i := sort.Search(len(points), func(i int) bool {
		return points[i].Date.After(t)
	})
	if i == 0 {
		return -1
	}
	candidate := i - 1
	if points[candidate].Date.Equal(t) || t.Sub(points[candidate].Date) < bucket {
		return candidate
	}
	return -1
}

// addNullPoints inserts value-less points at times. With bounds set the new
// points carry null upper and lower bounds like the model plot points around them.
func addNullPoints(points []v1.ChartPoint, times map[time.Time]struct{}, bounds bool) []v1.ChartPoint {
	if len(times) == 0 {
		return points
	}
	for t := range times {
		p := v1.ChartPoint{Date: t}
		if bounds {
			p.Upper = &decimal.NullDecimal{}
			p.Lower = &decimal.NullDecimal{}
		}
		points = append(points, p)
	}
	sortPoints(points)
	return points
}

func sortPoints(points []v1.ChartPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}

func hasBounds(points []v1.ChartPoint) bool {
	for _, p := range points {
		if p.Upper != nil || p.Lower != nil {
			return true
		}
	}
	return false
}
