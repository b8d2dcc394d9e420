package aggregation

// Backend aggregation names. These are what the metric store folds samples with
// and what detector functions are translated into.
const (
	OpCount       = "count"
	OpSum         = "sum"
	OpMin         = "min"
	OpMax         = "max"
	OpAvg         = "avg"
	OpCardinality = "cardinality"
	OpPercentiles = "percentiles"
)
