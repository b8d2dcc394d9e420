// Package timeseries answers the focus queries from the explorer's storage.
package timeseries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	"github.com/aevon-lab/anomaly-explorer/internal/focus"
	"github.com/avast/retry-go/v4"
)

// RetryPolicy bounds the retries of transient storage failures.
type RetryPolicy struct {
	Attempts uint
	Delay    time.Duration
}

// DefaultRetryPolicy retries a transient failure twice with backoff from 100ms.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Delay: 100 * time.Millisecond}

// Client implements the focus query sources over the storage layer.
type Client struct {
	metrics     storage.MetricStore
	results     storage.ResultStore
	annotations storage.AnnotationStore
	retry       RetryPolicy
}

var (
	_ focus.MetricSource         = (*Client)(nil)
	_ focus.AnomalySource        = (*Client)(nil)
	_ focus.ScheduledEventSource = (*Client)(nil)
	_ focus.AnnotationSource     = (*Client)(nil)
	_ focus.ForecastSource       = (*Client)(nil)
)

// NewClient creates a query client. A zero policy uses DefaultRetryPolicy.
func NewClient(metrics storage.MetricStore, results storage.ResultStore, annotations storage.AnnotationStore, policy RetryPolicy) *Client {
	if policy.Attempts == 0 {
		policy = DefaultRetryPolicy
	}
	return &Client{
		metrics:     metrics,
		results:     results,
		annotations: annotations,
		retry:       policy,
	}
}

// Sources returns the client as every focus query source.
func (c *Client) Sources() focus.Sources {
	return focus.Sources{
		Metrics:     c,
		Anomalies:   c,
		Events:      c,
		Annotations: c,
		Forecasts:   c,
	}
}

// withRetry runs fn until it succeeds, fails with a non-transient error,
// runs out of attempts or ctx is done. The last error is returned unwrapped.
func withRetry[T any](ctx context.Context, c *Client, op string, fn func(context.Context) (T, error)) (T, error) {
	return retry.DoWithData(
		func() (T, error) {
			return fn(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(c.retry.Attempts),
		retry.Delay(c.retry.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, storage.ErrTransient)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("[Timeseries] Retrying storage query",
				"op", op,
				"attempt", n+1,
				"error", err,
			)
		}),
	)
}
