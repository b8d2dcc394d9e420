package timeseries

import (
	"context"
	"fmt"
	"sort"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/aevon-lab/anomaly-explorer/internal/focus"
	"github.com/shopspring/decimal"
)

// GetMetricData returns the detector's series bucketed by q.Interval. Model plot
// output is used when enabled, otherwise the datafeed's raw samples are folded
// with the requested aggregation or the detector's own.
func (c *Client) GetMetricData(ctx context.Context, q focus.MetricQuery) (*v1.MetricData, error) {
	if q.Interval <= 0 {
		return nil, fmt.Errorf("metric interval must be > 0")
	}
	detector, err := q.Job.Detector(q.DetectorIndex)
	if err != nil {
		return nil, err
	}

	agg := q.Aggregation
	if agg == "" {
		agg = detector.BackendAggregation()
	}
	if agg == "" {
		// Not chartable: rare, freq_rare, lat_long, ...
		return &v1.MetricData{Success: true, Results: []v1.MetricBucket{}}, nil
	}

	if q.ModelPlotEnabled {
		rows, err := withRetry(ctx, c, "model_plot", func(ctx context.Context) ([]storage.ModelPlotRow, error) {
			return c.metrics.QueryModelPlot(ctx, storage.ModelPlotFilter{
				JobID:         q.Job.JobID,
				DetectorIndex: q.DetectorIndex,
				Entities:      q.Entities,
				Start:         q.Earliest,
				End:           q.Latest,
			})
		})
		if err != nil {
			return nil, err
		}
		return &v1.MetricData{Success: true, Results: foldModelPlot(rows, q.Interval, agg)}, nil
	}

	if q.Job.Datafeed.Source == "" {
		return nil, fmt.Errorf("job %s has no datafeed source", q.Job.JobID)
	}
	samples, err := withRetry(ctx, c, "metric_samples", func(ctx context.Context) ([]storage.MetricSample, error) {
		return c.metrics.QueryMetricSamples(ctx, storage.SampleFilter{
			Source:   q.Job.Datafeed.Source,
			Entities: q.Entities,
			Start:    q.Earliest,
			End:      q.Latest,
		})
	})
	if err != nil {
		return nil, err
	}
	return &v1.MetricData{Success: true, Results: foldSamples(samples, q.Interval, agg, detector.FieldName)}, nil
}

// foldSamples groups raw samples into buckets and reduces each bucket.
// Samples without a usable field value are ignored, except for count.
func foldSamples(samples []storage.MetricSample, interval time.Duration, agg, field string) []v1.MetricBucket {
	buckets := map[time.Time][]decimal.Decimal{}
	distinct := map[time.Time]map[string]struct{}{}

	for _, s := range samples {
		bucket := aggregation.BucketFor(s.Timestamp, interval)
		switch agg {
		case aggregation.OpCount:
			buckets[bucket] = append(buckets[bucket], decimal.Zero)
		case aggregation.OpCardinality:
			raw, ok := s.Data[field]
			if !ok || raw == nil {
				continue
			}
			if distinct[bucket] == nil {
				distinct[bucket] = map[string]struct{}{}
			}
			distinct[bucket][fmt.Sprint(raw)] = struct{}{}
		default:
			v, ok := aggregation.ExtractDecimal(s.Data, field)
			if !ok {
				continue
			}
			buckets[bucket] = append(buckets[bucket], v)
		}
	}

	out := make([]v1.MetricBucket, 0, len(buckets)+len(distinct))
	for bucket, values := range distinct {
		out = append(out, v1.MetricBucket{
			Time:  bucket,
			Value: decimal.NewNullDecimal(decimal.NewFromInt(int64(len(values)))),
		})
	}
	for bucket, values := range buckets {
		value, ok := reduce(agg, values)
		if !ok {
			continue
		}
		out = append(out, v1.MetricBucket{Time: bucket, Value: decimal.NewNullDecimal(value)})
	}
	sortBuckets(out)
	return out
}

// foldModelPlot merges model plot rows into buckets of the requested interval.
// Actual values are reduced with agg (count series are summed); the bounds
// take the widest envelope of the merged rows.
func foldModelPlot(rows []storage.ModelPlotRow, interval time.Duration, agg string) []v1.MetricBucket {
	if agg == aggregation.OpCount {
		agg = aggregation.OpSum
	}

	type acc struct {
		actuals      []decimal.Decimal
		upper, lower decimal.NullDecimal
	}
	buckets := map[time.Time]*acc{}

	for _, r := range rows {
		bucket := aggregation.BucketFor(r.Timestamp, interval)
		a := buckets[bucket]
		if a == nil {
			a = &acc{}
			buckets[bucket] = a
		}
		if r.Actual.Valid {
			a.actuals = append(a.actuals, r.Actual.Decimal)
		}
		if r.ModelUpper.Valid && (!a.upper.Valid || r.ModelUpper.Decimal.GreaterThan(a.upper.Decimal)) {
			a.upper = r.ModelUpper
		}
		if r.ModelLower.Valid && (!a.lower.Valid || r.ModelLower.Decimal.LessThan(a.lower.Decimal)) {
			a.lower = r.ModelLower
		}
	}

	out := make([]v1.MetricBucket, 0, len(buckets))
	for bucket, a := range buckets {
		mb := v1.MetricBucket{Time: bucket, Upper: a.upper, Lower: a.lower}
		if value, ok := reduce(agg, a.actuals); ok {
			mb.Value = decimal.NewNullDecimal(value)
		}
		out = append(out, mb)
	}
	sortBuckets(out)
	return out
}

// reduce folds values with agg. Percentiles chart the median; aggregations
// without a registered operator fall back to the mean.
func reduce(agg string, values []decimal.Decimal) (decimal.Decimal, bool) {
	if agg == aggregation.OpPercentiles {
		return median(values)
	}
	if !aggregation.ValidOperator(agg) {
		return aggregation.Fold(aggregation.OpAvg, values)
	}
	return aggregation.Fold(agg, values)
}

func median(values []decimal.Decimal) (decimal.Decimal, bool) {
	if len(values) == 0 {
		return decimal.Zero, false
	}
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return decimal.Avg(sorted[mid-1], sorted[mid]), true
}

func sortBuckets(buckets []v1.MetricBucket) {
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Time.Before(buckets[j].Time) })
}
