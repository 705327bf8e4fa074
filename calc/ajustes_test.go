package calc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
)

func TestRentAdjustment_Monthly(t *testing.T) {
	r, err := calc.RentAdjustment(calc.AdjustmentInput{
		CurrentAmount: ars(100000),
		Percentage:    fiscal.NewPercent(10),
		Period:        calc.PeriodMonthly,
	})
	require.NoError(t, err)

	assert.True(t, r.Increase.Value.Equal(dec("10000")))
	assert.True(t, r.NewAmount.Value.Equal(dec("110000")))
	assert.Equal(t, 1, r.PeriodMultiplier)
	assert.True(t, r.TotalIncrease.Value.Equal(dec("10000")))
	assert.True(t, r.TotalNewAmount.Value.Equal(dec("110000")))
}

func TestRentAdjustment_PeriodMultipliers(t *testing.T) {
	tests := []struct {
		period calc.AdjustmentPeriod
		months int
	}{
		{calc.PeriodMonthly, 1},
		{calc.PeriodQuarterly, 3},
		{calc.PeriodSemiannual, 6},
		{calc.PeriodAnnual, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			r, err := calc.RentAdjustment(calc.AdjustmentInput{
				CurrentAmount: ars(50000),
				Percentage:    fiscal.NewPercent(8),
				Period:        tt.period,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.months, r.PeriodMultiplier)

			expected := r.Increase.Value.Mul(decimal.NewFromInt(int64(tt.months)))
			assert.True(t, r.TotalIncrease.Value.Equal(expected))
		})
	}
}

func TestRentAdjustment_NoCompounding(t *testing.T) {
	// GIVEN: 100,000 at 5% projected over a year
	// THEN: total is exactly 12 × the single increase (160,000), NOT the
	//       compounded 100,000 × 1.05^12 ≈ 179,585
	r, err := calc.RentAdjustment(calc.AdjustmentInput{
		CurrentAmount: ars(100000),
		Percentage:    fiscal.NewPercent(5),
		Period:        calc.PeriodAnnual,
	})
	require.NoError(t, err)

	assert.True(t, r.TotalIncrease.Value.Equal(dec("60000")))
	assert.True(t, r.TotalNewAmount.Value.Equal(dec("160000")))

	compounded := dec("1.05").Pow(decimal.NewFromInt(12)).Mul(dec("100000"))
	assert.False(t, r.TotalNewAmount.Value.Equal(compounded.Round(2)),
		"projection must not compound")
}

func TestRentAdjustment_UnknownPeriod(t *testing.T) {
	_, err := calc.RentAdjustment(calc.AdjustmentInput{
		CurrentAmount: ars(100000),
		Percentage:    fiscal.NewPercent(5),
		Period:        calc.AdjustmentPeriod("bimestral"),
	})
	require.Error(t, err)
	assert.True(t, fiscal.IsValidation(err))
}

func TestRentAdjustment_ZeroPercentage(t *testing.T) {
	r, err := calc.RentAdjustment(calc.AdjustmentInput{
		CurrentAmount: ars(100000),
		Percentage:    fiscal.NewPercent(0),
		Period:        calc.PeriodQuarterly,
	})
	require.NoError(t, err)
	assert.True(t, r.Increase.IsZero())
	assert.True(t, r.TotalNewAmount.Value.Equal(dec("100000")))
}
