package aggregation

import (
	"github.com/shopspring/decimal"
)

// Aggregator defines the reduce semantics of a backend aggregation.
// To add a new aggregation: implement this interface and register it in Operators.
type Aggregator interface {
	// Initial returns the running value after the very first sample in a bucket.
	// count → 1; sum/min/max/avg → the incoming value itself.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds an incoming sample into the running value.
	Apply(current, incoming decimal.Decimal) decimal.Decimal

	// Final converts the running value into the bucket value once every
	// sample has been folded in.
	Final(current decimal.Decimal, samples int64) decimal.Decimal
}

// Operators is the registry of aggregations the metric store can fold raw samples with.
var Operators = map[string]Aggregator{
	OpCount: countAgg{},
	OpSum:   sumAgg{},
	OpMin:   minAgg{},
	OpMax:   maxAgg{},
	OpAvg:   avgAgg{},
}

// ValidOperator reports whether op is a registered aggregation.
func ValidOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}

// Fold reduces a bucket's samples with the named aggregation.
// Returns false when op is not registered or there are no samples.
func Fold(op string, samples []decimal.Decimal) (decimal.Decimal, bool) {
	agg, ok := Operators[op]
	if !ok || len(samples) == 0 {
		return decimal.Zero, false
	}
	value := agg.Initial(samples[0])
	for _, s := range samples[1:] {
		value = agg.Apply(value, s)
	}
	return agg.Final(value, int64(len(samples))), true
}

// countAgg increments by 1 per sample. The incoming value is ignored.
type countAgg struct{}

func (countAgg) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countAgg) Apply(cur, _ decimal.Decimal) decimal.Decimal { return cur.Add(decimal.NewFromInt(1)) }
func (countAgg) Final(cur decimal.Decimal, _ int64) decimal.Decimal {
	return cur
}

// sumAgg accumulates the sum of incoming values.
type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal          { return v }
func (sumAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal     { return cur.Add(inc) }
func (sumAgg) Final(cur decimal.Decimal, _ int64) decimal.Decimal { return cur }

// minAgg tracks the minimum value seen.
type minAgg struct{}

func (minAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (minAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.LessThan(cur) {
		return inc
	}
	return cur
}
func (minAgg) Final(cur decimal.Decimal, _ int64) decimal.Decimal { return cur }

// maxAgg tracks the maximum value seen.
type maxAgg struct{}

func (maxAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (maxAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.GreaterThan(cur) {
		return inc
	}
	return cur
}
func (maxAgg) Final(cur decimal.Decimal, _ int64) decimal.Decimal { return cur }

// avgAgg sums while folding and divides by the sample count at the end.
type avgAgg struct{}

func (avgAgg) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (avgAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }
func (avgAgg) Final(cur decimal.Decimal, samples int64) decimal.Decimal {
	if samples <= 0 {
		return decimal.Zero
	}
	return cur.Div(decimal.NewFromInt(samples))
}
