package focus

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
)

// LoadFocusData resolves an HTTP focus query against the job repository and
// runs GetFocusData while publishing the loading flag and reporting telemetry.
func (s *Service) LoadFocusData(ctx context.Context, q FocusQueryRequest) (*v1.FocusData, error) {
	req, err := s.buildRequest(ctx, q)
	if err != nil {
		return nil, err
	}

	done := s.loading.Begin()
	defer done()

	started := s.nowFn()
	data, err := s.GetFocusData(ctx, req)
	elapsed := s.nowFn().Sub(started)

	switch {
	case err != nil:
		s.reporter.ReportFocusLoad(q.JobID, OutcomeError, elapsed)
		slog.Error("[Focus] Failed to load focus data",
			"job_id", q.JobID,
			"detector_index", q.DetectorIndex,
			"error", err,
		)
		return nil, err
	case data.FocusAnnotationError != "":
		s.reporter.ReportAnnotationFailure(q.JobID)
		s.reporter.ReportFocusLoad(q.JobID, OutcomePartial, elapsed)
	default:
		s.reporter.ReportFocusLoad(q.JobID, OutcomeSuccess, elapsed)
	}

	slog.Debug("[Focus] Loaded focus data",
		"job_id", q.JobID,
		"points", len(data.FocusChartData),
		"records", len(data.AnomalyRecords),
		"duration", elapsed,
	)
	return data, nil
}

func (s *Service) buildRequest(ctx context.Context, q FocusQueryRequest) (FocusRequest, error) {
	j, err := s.jobs.Get(ctx, q.JobID)
	if err != nil {
		return FocusRequest{}, err
	}
	detector, err := j.Detector(q.DetectorIndex)
	if err != nil {
		return FocusRequest{}, invalidQueryf("%v", err)
	}

	interval := j.BucketSpan
	if q.Interval != "" {
		interval, err = aggregation.ParseInterval(q.Interval)
		if err != nil {
			return FocusRequest{}, invalidQueryf("%v", err)
		}
	}

	if q.End.Before(q.Start) {
		return FocusRequest{}, invalidQueryf("end time must not be before start time")
	}

	switch q.Function {
	case "", aggregation.FunctionMean, aggregation.FunctionSum, aggregation.FunctionMin, aggregation.FunctionMax:
	default:
		return FocusRequest{}, invalidQueryf("invalid function: %s (must be mean, sum, min, or max)", q.Function)
	}

	entities, err := parseEntities(q.Entities)
	if err != nil {
		return FocusRequest{}, err
	}
	entities = v1.NonBlank(entities)

	modelPlotEnabled := j.ModelPlotEnabledFor(entities) && detector.ModelPlotChartable()
	if q.ModelPlot != "" {
		requested, err := strconv.ParseBool(q.ModelPlot)
		if err != nil {
			return FocusRequest{}, invalidQueryf("invalid model_plot %q", q.ModelPlot)
		}
		modelPlotEnabled = requested && modelPlotEnabled
	}

	criteria := make([]v1.Entity, 0, len(entities)+1)
	criteria = append(criteria, v1.Entity{
		FieldName:  v1.CriteriaDetectorIndex,
		FieldValue: strconv.Itoa(q.DetectorIndex),
	})
	criteria = append(criteria, entities...)

	return FocusRequest{
		CriteriaFields:      criteria,
		DetectorIndex:       q.DetectorIndex,
		Interval:            interval,
		ForecastID:          q.ForecastID,
		ModelPlotEnabled:    modelPlotEnabled,
		Entities:            entities,
		Earliest:            q.Start,
		Latest:              q.End,
		Job:                 j,
		FunctionDescription: q.Function,
	}, nil
}

// parseEntities parses "field:value" filters. The value may itself contain colons.
func parseEntities(raw []string) ([]v1.Entity, error) {
	entities := make([]v1.Entity, 0, len(raw))
	for _, r := range raw {
		name, value, ok := strings.Cut(r, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, invalidQueryf("invalid entity %q (must be field:value)", r)
		}
		entities = append(entities, v1.Entity{FieldName: strings.TrimSpace(name), FieldValue: value})
	}
	return entities, nil
}
