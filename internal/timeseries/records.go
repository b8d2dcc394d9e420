package timeseries

import (
	"context"
	"fmt"
	"strconv"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/aevon-lab/anomaly-explorer/internal/focus"
)

// GetAnomalyRecords returns the records matching the criteria fields. The
// detector_index criterion selects the detector; every other criterion must
// match one of the record's entity fields. With an interval expression only
// the highest scoring record of each interval bucket is kept.
func (c *Client) GetAnomalyRecords(ctx context.Context, q focus.AnomalyQuery) (*v1.AnomalyRecords, error) {
	var bucket aggregation.Interval
	if q.IntervalExpression != "" {
		var err error
		if bucket, err = aggregation.ParseInterval(q.IntervalExpression); err != nil {
			return nil, err
		}
	}

	filter := storage.RecordFilter{
		JobIDs:              q.JobIDs,
		Start:               q.Earliest,
		End:                 q.Latest,
		MinScore:            q.Threshold,
		FunctionDescription: q.FunctionDescription,
	}
	for _, cf := range q.CriteriaFields {
		if cf.FieldName == v1.CriteriaDetectorIndex {
			idx, err := strconv.Atoi(cf.FieldValue)
			if err != nil {
				return nil, fmt.Errorf("invalid detector_index criterion %q: %w", cf.FieldValue, err)
			}
			filter.DetectorIndex = &idx
			continue
		}
		filter.Entities = append(filter.Entities, cf)
	}

	records, err := withRetry(ctx, c, "anomaly_records", func(ctx context.Context) ([]v1.AnomalyRecord, error) {
		return c.results.QueryAnomalyRecords(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	if bucket.Duration > 0 {
		records = topPerBucket(records, bucket.Duration)
	}
	if records == nil {
		records = []v1.AnomalyRecord{}
	}
	return &v1.AnomalyRecords{Success: true, Records: records}, nil
}

// topPerBucket keeps the highest scoring record of each bucket, in input
// order. The first record wins a tie.
func topPerBucket(records []v1.AnomalyRecord, interval time.Duration) []v1.AnomalyRecord {
	best := make(map[time.Time]int, len(records))
	for i, r := range records {
		b := aggregation.BucketFor(r.Timestamp, interval)
		if j, ok := best[b]; !ok || r.RecordScore > records[j].RecordScore {
			best[b] = i
		}
	}

	out := make([]v1.AnomalyRecord, 0, len(best))
	for i, r := range records {
		if best[aggregation.BucketFor(r.Timestamp, interval)] == i {
			out = append(out, r)
		}
	}
	return out
}
