package timeseries

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/aevon-lab/anomaly-explorer/internal/focus"
	"github.com/shopspring/decimal"
)

// defaultForecastAggregation averages predictions and keeps the widest bounds.
var defaultForecastAggregation = focus.AggregationOverride{
	Avg: aggregation.OpAvg,
	Max: aggregation.OpMax,
	Min: aggregation.OpMin,
}

// GetForecastData returns one forecast run bucketed by q.Interval.
func (c *Client) GetForecastData(ctx context.Context, q focus.ForecastQuery) (*v1.ForecastData, error) {
	if q.Interval <= 0 {
		return nil, fmt.Errorf("forecast interval must be > 0")
	}

	rows, err := withRetry(ctx, c, "forecast", func(ctx context.Context) ([]storage.ForecastRow, error) {
		return c.results.QueryForecast(ctx, storage.ForecastFilter{
			JobID:         q.Job.JobID,
			DetectorIndex: q.DetectorIndex,
			ForecastID:    q.ForecastID,
			Entities:      q.Entities,
			Start:         q.Earliest,
			End:           q.Latest,
		})
	})
	if err != nil {
		return nil, err
	}

	aggType := defaultForecastAggregation
	if q.AggType != nil {
		aggType = *q.AggType
	}
	return &v1.ForecastData{Success: true, Results: foldForecast(rows, q.Interval, aggType)}, nil
}

func foldForecast(rows []storage.ForecastRow, interval time.Duration, aggType focus.AggregationOverride) []v1.ForecastBucket {
	type acc struct {
		prediction, upper, lower []decimal.Decimal
	}
	buckets := map[time.Time]*acc{}
	var order []time.Time

	for _, r := range rows {
		bucket := aggregation.BucketFor(r.Timestamp, interval)
		a := buckets[bucket]
		if a == nil {
			a = &acc{}
			buckets[bucket] = a
			order = append(order, bucket)
		}
		a.prediction = append(a.prediction, r.Prediction)
		a.upper = append(a.upper, r.Upper)
		a.lower = append(a.lower, r.Lower)
	}

	out := make([]v1.ForecastBucket, 0, len(order))
	for _, bucket := range order {
		a := buckets[bucket]
		out = append(out, v1.ForecastBucket{
			Time:       bucket,
			Prediction: nullable(reduce(aggType.Avg, a.prediction)),
			Upper:      nullable(reduce(aggType.Max, a.upper)),
			Lower:      nullable(reduce(aggType.Min, a.lower)),
		})
	}
	return out
}

func nullable(d decimal.Decimal, ok bool) decimal.NullDecimal {
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
