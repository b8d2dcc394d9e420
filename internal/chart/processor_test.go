package chart

import (
	"testing"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	base     = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	interval = aggregation.Interval{Duration: 15 * time.Minute, Expression: "15m"}
)

func val(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func TestProcessMetricPlotResults(t *testing.T) {
	results := []v1.MetricBucket{
		{Time: at(15), Value: val(20), Upper: val(25), Lower: val(15)},
		{Time: at(0), Value: val(10), Upper: val(12), Lower: val(8)},
	}

	t.Run("model plot keeps bounds and sorts ascending", func(t *testing.T) {
		points := NewProcessor().ProcessMetricPlotResults(results, true)
		require.Len(t, points, 2)
		require.Equal(t, at(0), points[0].Date)
		require.Equal(t, "10", points[0].Value.Decimal.String())
		require.NotNil(t, points[0].Upper)
		require.Equal(t, "12", points[0].Upper.Decimal.String())
		require.Equal(t, "8", points[0].Lower.Decimal.String())
	})

	t.Run("without model plot bounds are dropped", func(t *testing.T) {
		points := NewProcessor().ProcessMetricPlotResults(results, false)
		require.Len(t, points, 2)
		require.Nil(t, points[0].Upper)
		require.Nil(t, points[0].Lower)
	})
}

func TestProcessDataForFocusAnomalies_MarksHighestScore(t *testing.T) {
	points := NewProcessor().ProcessMetricPlotResults([]v1.MetricBucket{
		{Time: at(0), Value: val(10)},
		{Time: at(15), Value: val(20)},
	}, false)

	records := []v1.AnomalyRecord{
		{Timestamp: at(20), RecordScore: 40, Function: "mean", Actual: []float64{30}, Typical: []float64{18}},
		{Timestamp: at(15), RecordScore: 85, Function: "mean", Actual: []float64{55}, Typical: []float64{19}, ByFieldName: "status", ByFieldValue: "500"},
	}

	points = NewProcessor().ProcessDataForFocusAnomalies(points, records, interval, false, "")
	require.Len(t, points, 2)
	require.Nil(t, points[0].AnomalyScore)
	require.NotNil(t, points[1].AnomalyScore)
	require.Equal(t, 85.0, *points[1].AnomalyScore)
	require.Equal(t, []float64{55}, points[1].Actual)
	require.Equal(t, "status", points[1].ByFieldName)
	// the metric value is kept when present
	require.Equal(t, "20", points[1].Value.Decimal.String())
}

func TestProcessDataForFocusAnomalies_AddsNullPoint(t *testing.T) {
	points := NewProcessor().ProcessMetricPlotResults([]v1.MetricBucket{
		{Time: at(0), Value: val(10), Upper: val(11), Lower: val(9)},
	}, true)

	impact := 2.5
	records := []v1.AnomalyRecord{
		{Timestamp: at(47), RecordScore: 60, Function: "mean", Actual: []float64{99}, MultiBucketImpact: &impact},
	}

	points = NewProcessor().ProcessDataForFocusAnomalies(points, records, interval, true, "")
	require.Len(t, points, 2)
	require.Equal(t, at(45), points[1].Date)
	require.Equal(t, "99", points[1].Value.Decimal.String(), "null value replaced by the record's actual")
	require.NotNil(t, points[1].Upper)
	require.False(t, points[1].Upper.Valid)
	require.Equal(t, 2.5, *points[1].MultiBucketImpact)
}

func TestProcessDataForFocusAnomalies_SkipsOtherMetricDescriptions(t *testing.T) {
	points := []v1.ChartPoint{{Date: at(0), Value: val(10)}}
	records := []v1.AnomalyRecord{
		{Timestamp: at(0), RecordScore: 70, Function: "metric", FunctionDescription: "max", Actual: []float64{50}},
		{Timestamp: at(0), RecordScore: 30, Function: "metric", FunctionDescription: "mean", Actual: []float64{12}},
	}

	points = NewProcessor().ProcessDataForFocusAnomalies(points, records, interval, false, "mean")
	require.Len(t, points, 1)
	require.Equal(t, 30.0, *points[0].AnomalyScore)
	require.Equal(t, "12", points[0].Value.Decimal.String(), "metric records always replace the value")
}

func TestProcessScheduledEventsForChart(t *testing.T) {
	points := []v1.ChartPoint{{Date: at(0), Value: val(10)}, {Date: at(15), Value: val(11)}}
	events := []v1.ScheduledEventBucket{
		{Time: at(15), Descriptions: []string{"maintenance"}},
		{Time: at(60), Descriptions: []string{"black friday"}},
	}

	points = NewProcessor().ProcessScheduledEventsForChart(points, events, interval)
	require.Len(t, points, 3)
	require.Equal(t, []string{"maintenance"}, points[1].ScheduledEvents)
	require.Equal(t, at(60), points[2].Date)
	require.False(t, points[2].Value.Valid)
	require.Equal(t, []string{"black friday"}, points[2].ScheduledEvents)
}

func TestProcessScheduledEventsForChart_NoEvents(t *testing.T) {
	points := []v1.ChartPoint{{Date: at(0), Value: val(10)}}
	require.Equal(t, points, NewProcessor().ProcessScheduledEventsForChart(points, nil, interval))
}

func TestProcessForecastResults(t *testing.T) {
	points := NewProcessor().ProcessForecastResults([]v1.ForecastBucket{
		{Time: at(30), Prediction: val(5), Upper: val(7), Lower: val(3)},
		{Time: at(15), Prediction: val(4), Upper: val(6), Lower: val(2)},
	})
	require.Len(t, points, 2)
	require.Equal(t, at(15), points[0].Date)
	require.Equal(t, "4", points[0].Value.Decimal.String())
	require.Equal(t, "7", points[1].Upper.Decimal.String())

	require.Empty(t, NewProcessor().ProcessForecastResults(nil))
}

func TestFindPoint(t *testing.T) {
	points := []v1.ChartPoint{{Date: at(0)}, {Date: at(15)}, {Date: at(30)}}

	require.Equal(t, -1, findPoint(points, at(-1), interval.Duration))
	require.Equal(t, 0, findPoint(points, at(0), interval.Duration))
	require.Equal(t, 0, findPoint(points, at(14), interval.Duration))
	require.Equal(t, 1, findPoint(points, at(15), interval.Duration))
	require.Equal(t, 2, findPoint(points, at(44), interval.Duration))
	require.Equal(t, -1, findPoint(points, at(45), interval.Duration))
	require.Equal(t, -1, findPoint(nil, at(0), interval.Duration))
}
