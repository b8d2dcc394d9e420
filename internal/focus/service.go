package focus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
	"github.com/aevon-lab/anomaly-explorer/internal/core/join"
	"github.com/aevon-lab/anomaly-explorer/internal/core/publish"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid focus query")

// Sources groups the query collaborators the service fetches from.
type Sources struct {
	Metrics     MetricSource
	Anomalies   AnomalySource
	Events      ScheduledEventSource
	Annotations AnnotationSource
	Forecasts   ForecastSource
}

// Service assembles focus chart data for the anomaly explorer.
type Service struct {
	sources  Sources
	charts   ChartProcessor
	jobs     job.Repository
	loading  *publish.LoadingTracker
	reporter Reporter
	nowFn    func() time.Time
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithReporter sets the telemetry reporter.
func WithReporter(r Reporter) Option {
	return func(s *Service) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithLoadingTracker shares a loading tracker with other components.
func WithLoadingTracker(t *publish.LoadingTracker) Option {
	return func(s *Service) {
		if t != nil {
			s.loading = t
		}
	}
}

// NewService creates a new focus service.
func NewService(sources Sources, charts ChartProcessor, jobs job.Repository, opts ...Option) *Service {
	if sources.Metrics == nil || sources.Anomalies == nil || sources.Events == nil ||
		sources.Annotations == nil || sources.Forecasts == nil {
		panic("focus: every query source must be set")
	}
	if charts == nil {
		panic("focus: chart processor must not be nil")
	}
	if jobs == nil {
		panic("focus: job repository must not be nil")
	}

	s := &Service{
		sources:  sources,
		charts:   charts,
		jobs:     jobs,
		loading:  publish.NewLoadingTracker(),
		reporter: nopReporter{},
		nowFn:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DataLoading publishes whether any focus load is in flight.
func (s *Service) DataLoading() *publish.Subject[bool] {
	return s.loading.DataLoading()
}

// GetFocusData fetches metric data, anomaly records, scheduled events,
// annotations and, when requested, forecast data concurrently and merges them
// into chart-ready focus data.
//
// A failure of the metric, anomaly, scheduled event or forecast source fails
// the call with that source's error. Annotation failures are reported through
// FocusAnnotationError instead.
func (s *Service) GetFocusData(ctx context.Context, req FocusRequest) (*v1.FocusData, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	detector, err := req.Job.Detector(req.DetectorIndex)
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}

	jobID := req.Job.JobID
	metricAggregation := ""
	if req.FunctionDescription != "" {
		metricAggregation = aggregation.ToBackendAggregation(req.FunctionDescription)
	}
	forecastReq := planForecast(req, detector)

	g := join.New(ctx)

	metricData := join.Go(g, func(ctx context.Context) (*v1.MetricData, error) {
		return s.sources.Metrics.GetMetricData(ctx, MetricQuery{
			Job:              req.Job,
			DetectorIndex:    req.DetectorIndex,
			Entities:         req.Entities,
			Earliest:         req.Earliest,
			Latest:           req.Latest,
			Interval:         req.Interval.Duration,
			ModelPlotEnabled: req.ModelPlotEnabled,
			Aggregation:      metricAggregation,
		})
	})

	records := join.Go(g, func(ctx context.Context) (*v1.AnomalyRecords, error) {
		return s.sources.Anomalies.GetAnomalyRecords(ctx, AnomalyQuery{
			JobIDs:              []string{jobID},
			CriteriaFields:      req.CriteriaFields,
			Threshold:           0,
			Earliest:            req.Earliest,
			Latest:              req.Latest,
			IntervalExpression:  req.Interval.Expression,
			FunctionDescription: req.FunctionDescription,
		})
	})

	eventsByBucket := join.Go(g, func(ctx context.Context) (*v1.ScheduledEventsByBucket, error) {
		return s.sources.Events.GetScheduledEventsByBucket(ctx, ScheduledEventsQuery{
			JobIDs:             []string{jobID},
			Earliest:           req.Earliest,
			Latest:             req.Latest,
			Interval:           req.Interval.Duration,
			MaxEventsPerBucket: scheduledEventsPerBucket,
			MaxEvents:          MaxScheduledEvents,
		})
	})

	annotations := join.GoRecover(g,
		func(ctx context.Context) (*v1.AnnotationsResponse, error) {
			return s.sources.Annotations.GetAnnotations(ctx, AnnotationsQuery{
				JobIDs:         []string{jobID},
				Earliest:       req.Earliest,
				Latest:         req.Latest,
				MaxAnnotations: AnnotationsDefaultQuerySize,
				DetectorIndex:  req.DetectorIndex,
				Entities:       req.Entities,
			})
		},
		func(err error) *v1.AnnotationsResponse {
			slog.Warn("[Focus] Annotations unavailable, continuing without them",
				"job_id", jobID,
				"error", err,
			)
			return &v1.AnnotationsResponse{
				Annotations: map[string][]v1.Annotation{},
				TotalCount:  0,
				Error:       extractErrorMessage(err),
				Success:     false,
			}
		},
	)

	var forecastData *join.Result[*v1.ForecastData]
	switch fq := forecastReq.(type) {
	case ForecastQuery:
		forecastData = join.Go(g, func(ctx context.Context) (*v1.ForecastData, error) {
			return s.sources.Forecasts.GetForecastData(ctx, fq)
		})
	default:
		forecastData = join.Resolved[*v1.ForecastData](nil)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.merge(req, metricData.Value(), records.Value(), eventsByBucket.Value(), annotations.Value(), forecastData.Value()), nil
}

func (s *Service) merge(
	req FocusRequest,
	metricData *v1.MetricData,
	recordsForCriteria *v1.AnomalyRecords,
	eventsByBucket *v1.ScheduledEventsByBucket,
	annotations *v1.AnnotationsResponse,
	forecastData *v1.ForecastData,
) *v1.FocusData {
	jobID := req.Job.JobID

	scheduledEvents := []v1.ScheduledEventBucket{}
	if eventsByBucket != nil && eventsByBucket.Events[jobID] != nil {
		scheduledEvents = eventsByBucket.Events[jobID]
	}

	anomalyRecords := []v1.AnomalyRecord{}
	if recordsForCriteria != nil && len(recordsForCriteria.Records) > 0 {
		anomalyRecords = descendingByTime(recordsForCriteria.Records)
	}

	var metricResults []v1.MetricBucket
	if metricData != nil {
		metricResults = metricData.Results
	}

	focusChartData := s.charts.ProcessMetricPlotResults(metricResults, req.ModelPlotEnabled)
	focusChartData = s.charts.ProcessDataForFocusAnomalies(
		focusChartData,
		anomalyRecords,
		req.Interval,
		req.ModelPlotEnabled,
		req.FunctionDescription,
	)
	focusChartData = s.charts.ProcessScheduledEventsForChart(focusChartData, scheduledEvents, req.Interval)

	if focusChartData == nil {
		focusChartData = []v1.ChartPoint{}
	}

	data := &v1.FocusData{
		ScheduledEvents:     scheduledEvents,
		AnomalyRecords:      anomalyRecords,
		FocusChartData:      focusChartData,
		FocusAnnotationData: []v1.Annotation{},
	}

	switch {
	case annotations == nil:
	case annotations.Error != "":
		data.FocusAnnotationError = annotations.Error
	default:
		data.FocusAnnotationData = keyedByTime(annotations.Annotations[jobID])
	}

	if forecastData != nil {
		data.FocusForecastData = s.charts.ProcessForecastResults(forecastData.Results)
		show := len(data.FocusForecastData) > 0
		data.ShowForecastCheckbox = &show
	}

	return data
}

// planForecast decides whether a forecast is fetched and with which
// aggregation. Without model plot data, sum and count series are charted by
// summing, so the forecast bounds have to be summed as well.
func planForecast(req FocusRequest, detector job.Detector) ForecastRequest {
	if req.ForecastID == "" {
		return NoForecast{}
	}

	var aggType *AggregationOverride
	backendAgg := detector.BackendAggregation()
	if !req.ModelPlotEnabled && (backendAgg == aggregation.OpSum || backendAgg == aggregation.OpCount) {
		aggType = &AggregationOverride{Avg: aggregation.OpSum, Max: aggregation.OpSum, Min: aggregation.OpSum}
	}

	return ForecastQuery{
		Job:           req.Job,
		DetectorIndex: req.DetectorIndex,
		ForecastID:    req.ForecastID,
		Entities:      req.Entities,
		Earliest:      req.Earliest,
		Latest:        req.Latest,
		Interval:      req.Interval.Duration,
		AggType:       aggType,
	}
}

// descendingByTime returns the records stable-sorted ascending by timestamp
// and then reversed, so records sharing a timestamp end up in reverse input order.
func descendingByTime(records []v1.AnomalyRecord) []v1.AnomalyRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b v1.AnomalyRecord) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	slices.Reverse(sorted)
	return sorted
}

// keyedByTime returns the annotations ascending by timestamp, each keyed with
// its 1-based position.
func keyedByTime(annotations []v1.Annotation) []v1.Annotation {
	sorted := slices.Clone(annotations)
	if sorted == nil {
		sorted = []v1.Annotation{}
	}
	slices.SortStableFunc(sorted, func(a, b v1.Annotation) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	for i := range sorted {
		sorted[i].Key = strconv.Itoa(i + 1)
	}
	return sorted
}

func (r FocusRequest) validate() error {
	if r.Job == nil {
		return invalidQueryf("job is required")
	}
	if r.Interval.Duration <= 0 {
		return invalidQueryf("interval must be > 0")
	}
	if r.Latest.Before(r.Earliest) {
		return invalidQueryf("latest must not be before earliest")
	}
	return nil
}

// extractErrorMessage returns a message suitable for display next to the chart.
func extractErrorMessage(err error) string {
	var withMessage interface{ UserMessage() string }
	if errors.As(err, &withMessage) && withMessage.UserMessage() != "" {
		return withMessage.UserMessage()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
