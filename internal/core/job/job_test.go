package job

import (
	"errors"
	"testing"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func TestJob_Detector(t *testing.T) {
	j := Job{JobID: "j1", Detectors: []Detector{{Function: "sum", FieldName: "bytes"}}}

	d, err := j.Detector(0)
	require.NoError(t, err)
	require.Equal(t, "sum", d.BackendAggregation())

	_, err = j.Detector(1)
	require.True(t, errors.Is(err, ErrDetectorNotFound))
	_, err = j.Detector(-1)
	require.ErrorIs(t, err, ErrDetectorNotFound)
}

func TestDetector_EntityFieldNames(t *testing.T) {
	d := Detector{ByFieldName: "status", PartitionFieldName: "region"}
	require.Equal(t, []string{"region", "status"}, d.EntityFieldNames())
	require.Empty(t, Detector{}.EntityFieldNames())
}

func TestDetector_ModelPlotChartable(t *testing.T) {
	require.True(t, Detector{Function: "mean"}.ModelPlotChartable())
	require.False(t, Detector{Function: "lat_long"}.ModelPlotChartable())
}

func TestJob_ModelPlotEnabledFor(t *testing.T) {
	entities := []v1.Entity{{FieldName: "region", FieldValue: "eu-west"}}

	disabled := Job{}
	require.False(t, disabled.ModelPlotEnabledFor(entities))

	enabled := Job{ModelPlot: ModelPlotConfig{Enabled: true}}
	require.True(t, enabled.ModelPlotEnabledFor(entities))

	withTerms := Job{ModelPlot: ModelPlotConfig{Enabled: true, Terms: "us-east, eu-west"}}
	require.True(t, withTerms.ModelPlotEnabledFor(entities))
	require.False(t, withTerms.ModelPlotEnabledFor([]v1.Entity{{FieldName: "region", FieldValue: "ap-south"}}))
}
