package aggregation

import "strings"

// Detector function descriptions accepted as a chart override.
const (
	FunctionMean = "mean"
	FunctionSum  = "sum"
	FunctionMin  = "min"
	FunctionMax  = "max"
)

var functionToAggregation = map[string]string{
	"count":               OpCount,
	"high_count":          OpCount,
	"low_count":           OpCount,
	"non_zero_count":      OpCount,
	"high_non_zero_count": OpCount,
	"low_non_zero_count":  OpCount,
	"distinct_count":      OpCardinality,
	"high_distinct_count": OpCardinality,
	"low_distinct_count":  OpCardinality,
	"mean":                OpAvg,
	"high_mean":           OpAvg,
	"low_mean":            OpAvg,
	"metric":              OpAvg,
	"sum":                 OpSum,
	"high_sum":            OpSum,
	"low_sum":             OpSum,
	"non_null_sum":        OpSum,
	"high_non_null_sum":   OpSum,
	"low_non_null_sum":    OpSum,
	"min":                 OpMin,
	"max":                 OpMax,
	"median":              OpPercentiles,
	"high_median":         OpPercentiles,
	"low_median":          OpPercentiles,
}

// FunctionToAggregation maps a detector function to the backend aggregation
// used to chart its source data. Returns "" for functions that cannot be
// charted from source data (rare, freq_rare, info_content, lat_long, ...).
func FunctionToAggregation(function string) string {
	return functionToAggregation[strings.ToLower(strings.TrimSpace(function))]
}

// ToBackendAggregation translates a function description override
// ("mean", "sum", "min", "max") into backend aggregation vocabulary.
func ToBackendAggregation(description string) string {
	if description == FunctionMean {
		return OpAvg
	}
	return description
}
