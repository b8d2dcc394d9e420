package timeseries

import (
	"context"
	"fmt"
	"slices"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/aevon-lab/anomaly-explorer/internal/focus"
)

// GetScheduledEventsByBucket marks every chart bucket an event overlaps with
// the event's description. Each bucket keeps at most q.MaxEventsPerBucket
// descriptions and each job at most q.MaxEvents distinct events, earliest first.
func (c *Client) GetScheduledEventsByBucket(ctx context.Context, q focus.ScheduledEventsQuery) (*v1.ScheduledEventsByBucket, error) {
	if q.Interval <= 0 {
		return nil, fmt.Errorf("scheduled events interval must be > 0")
	}

	events, err := withRetry(ctx, c, "scheduled_events", func(ctx context.Context) ([]storage.ScheduledEvent, error) {
		return c.results.QueryScheduledEvents(ctx, storage.EventFilter{
			JobIDs: q.JobIDs,
			Start:  q.Earliest,
			End:    q.Latest,
		})
	})
	if err != nil {
		return nil, err
	}

	type jobBuckets struct {
		byTime map[time.Time][]string
		seen   map[string]struct{}
	}
	jobs := map[string]*jobBuckets{}

	for _, e := range events {
		jb := jobs[e.JobID]
		if jb == nil {
			jb = &jobBuckets{byTime: map[time.Time][]string{}, seen: map[string]struct{}{}}
			jobs[e.JobID] = jb
		}
		if _, ok := jb.seen[e.Description]; !ok {
			if q.MaxEvents > 0 && len(jb.seen) >= q.MaxEvents {
				continue
			}
			jb.seen[e.Description] = struct{}{}
		}

		from := e.Start
		if from.Before(q.Earliest) {
			from = q.Earliest
		}
		to := e.End
		if to.After(q.Latest) {
			to = q.Latest
		}
		if to.Before(from) {
			continue
		}
		// An instant event still marks the bucket it falls in.
		for t := aggregation.BucketFor(from, q.Interval); ; t = t.Add(q.Interval) {
			descs := jb.byTime[t]
			if !slices.Contains(descs, e.Description) &&
				(q.MaxEventsPerBucket <= 0 || len(descs) < q.MaxEventsPerBucket) {
				jb.byTime[t] = append(descs, e.Description)
			}
			if !t.Add(q.Interval).Before(to) {
				break
			}
		}
	}

	out := &v1.ScheduledEventsByBucket{Success: true, Events: make(map[string][]v1.ScheduledEventBucket, len(jobs))}
	for jobID, jb := range jobs {
		buckets := make([]v1.ScheduledEventBucket, 0, len(jb.byTime))
		for t, descs := range jb.byTime {
			buckets = append(buckets, v1.ScheduledEventBucket{Time: t, Descriptions: descs})
		}
		slices.SortFunc(buckets, func(a, b v1.ScheduledEventBucket) int {
			return a.Time.Compare(b.Time)
		})
		out.Events[jobID] = buckets
	}
	return out, nil
}
