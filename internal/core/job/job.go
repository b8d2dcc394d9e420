package job

import (
	"errors"
	"fmt"
	"strings"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
)

// ErrJobNotFound is returned when a job id is not present in the repository.
var ErrJobNotFound = errors.New("job not found")

// ErrDetectorNotFound is returned for a detector index outside the job's detectors.
var ErrDetectorNotFound = errors.New("detector not found")

// Job is an anomaly detection job definition.
// Jobs are loaded at startup from YAML files and fingerprinted like any other config.
type Job struct {
	JobID       string
	Description string
	BucketSpan  aggregation.Interval
	Detectors   []Detector
	ModelPlot   ModelPlotConfig
	Datafeed    DatafeedConfig
	Fingerprint string // SHA-256 of the raw YAML file
}

// Detector is one analysis function of a job.
type Detector struct {
	Function           string `yaml:"function"`
	FieldName          string `yaml:"field_name"`
	ByFieldName        string `yaml:"by_field_name"`
	OverFieldName      string `yaml:"over_field_name"`
	PartitionFieldName string `yaml:"partition_field_name"`
	Description        string `yaml:"detector_description"`
}

// ModelPlotConfig controls whether model bounds are stored alongside results.
// Terms optionally restricts model plot to a comma separated list of by/partition values.
type ModelPlotConfig struct {
	Enabled bool   `yaml:"enabled"`
	Terms   string `yaml:"terms"`
}

// DatafeedConfig names the source the job reads its input documents from.
type DatafeedConfig struct {
	Source string `yaml:"source"`
}

// Detector returns the detector at index i.
func (j *Job) Detector(i int) (Detector, error) {
	if i < 0 || i >= len(j.Detectors) {
		return Detector{}, fmt.Errorf("%w: job %q has no detector %d", ErrDetectorNotFound, j.JobID, i)
	}
	return j.Detectors[i], nil
}

// EntityFieldNames returns the partition, over and by field names of a detector,
// in that order, skipping unset ones.
func (d Detector) EntityFieldNames() []string {
	var names []string
	for _, n := range []string{d.PartitionFieldName, d.OverFieldName, d.ByFieldName} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// BackendAggregation returns the backend aggregation matching the detector's function.
func (d Detector) BackendAggregation() string {
	return aggregation.FunctionToAggregation(d.Function)
}

// ModelPlotChartable reports whether the detector's model plot output can be charted.
// Geographic and information-content functions have no plottable model bounds.
func (d Detector) ModelPlotChartable() bool {
	switch d.Function {
	case "lat_long", "info_content", "high_info_content", "low_info_content":
		return false
	}
	return true
}

// ModelPlotEnabledFor reports whether model plot data exists for the given entities.
// With terms configured, every entity value must be one of the terms.
func (j *Job) ModelPlotEnabledFor(entities []v1.Entity) bool {
	if !j.ModelPlot.Enabled {
		return false
	}
	terms := splitTerms(j.ModelPlot.Terms)
	if len(terms) == 0 {
		return true
	}
	for _, e := range entities {
		if _, ok := terms[e.FieldValue]; !ok {
			return false
		}
	}
	return true
}

func splitTerms(raw string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms[t] = struct{}{}
		}
	}
	return terms
}
