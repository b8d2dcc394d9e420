package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOperators_InitialAndApply(t *testing.T) {
	tests := []struct {
		name        string
		op          string
		incoming    decimal.Decimal
		current     decimal.Decimal
		next        decimal.Decimal
		wantInitial decimal.Decimal
		wantApply   decimal.Decimal
	}{
		{
			name:        "count",
			op:          OpCount,
			incoming:    decimal.NewFromInt(123),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(456),
			wantInitial: decimal.NewFromInt(1),
			wantApply:   decimal.NewFromInt(10),
		},
		{
			name:        "sum",
			op:          OpSum,
			incoming:    decimal.NewFromInt(3),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(4),
			wantInitial: decimal.NewFromInt(3),
			wantApply:   decimal.NewFromInt(13),
		},
		{
			name:        "min keeps lower",
			op:          OpMin,
			incoming:    decimal.NewFromInt(3),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(4),
			wantInitial: decimal.NewFromInt(3),
			wantApply:   decimal.NewFromInt(4),
		},
		{
			name:        "max keeps higher",
			op:          OpMax,
			incoming:    decimal.NewFromInt(3),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(4),
			wantInitial: decimal.NewFromInt(3),
			wantApply:   decimal.NewFromInt(9),
		},
		{
			name:        "avg accumulates a sum",
			op:          OpAvg,
			incoming:    decimal.NewFromInt(3),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(4),
			wantInitial: decimal.NewFromInt(3),
			wantApply:   decimal.NewFromInt(13),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agg, ok := Operators[tc.op]
			require.True(t, ok)
			require.True(t, tc.wantInitial.Equal(agg.Initial(tc.incoming)))
			require.True(t, tc.wantApply.Equal(agg.Apply(tc.current, tc.next)))
		})
	}
}

func TestFold(t *testing.T) {
	samples := []decimal.Decimal{
		decimal.NewFromInt(4),
		decimal.NewFromInt(10),
		decimal.NewFromInt(1),
	}

	tests := []struct {
		op   string
		want string
	}{
		{op: OpCount, want: "3"},
		{op: OpSum, want: "15"},
		{op: OpMin, want: "1"},
		{op: OpMax, want: "10"},
		{op: OpAvg, want: "5"},
	}

	for _, tc := range tests {
		t.Run(tc.op, func(t *testing.T) {
			got, ok := Fold(tc.op, samples)
			require.True(t, ok)
			require.Equal(t, tc.want, got.String())
		})
	}

	_, ok := Fold(OpPercentiles, samples)
	require.False(t, ok)
	_, ok = Fold(OpSum, nil)
	require.False(t, ok)
}

func TestValidOperator(t *testing.T) {
	require.True(t, ValidOperator(OpCount))
	require.True(t, ValidOperator(OpAvg))
	require.False(t, ValidOperator(OpCardinality))
	require.False(t, ValidOperator(""))
}

func TestFunctionToAggregation(t *testing.T) {
	require.Equal(t, OpAvg, FunctionToAggregation("mean"))
	require.Equal(t, OpAvg, FunctionToAggregation("high_mean"))
	require.Equal(t, OpSum, FunctionToAggregation("low_non_null_sum"))
	require.Equal(t, OpCount, FunctionToAggregation("high_non_zero_count"))
	require.Equal(t, OpCardinality, FunctionToAggregation("distinct_count"))
	require.Equal(t, OpPercentiles, FunctionToAggregation("median"))
	require.Equal(t, OpMax, FunctionToAggregation(" MAX "))
	require.Equal(t, "", FunctionToAggregation("rare"))
}

func TestToBackendAggregation(t *testing.T) {
	require.Equal(t, OpAvg, ToBackendAggregation(FunctionMean))
	require.Equal(t, OpSum, ToBackendAggregation(FunctionSum))
	require.Equal(t, OpMax, ToBackendAggregation(FunctionMax))
	require.Equal(t, "", ToBackendAggregation(""))
}
