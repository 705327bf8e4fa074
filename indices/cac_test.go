package indices_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitar/fiscal-engine/fiscal"
	"github.com/habitar/fiscal-engine/indices"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProject_ConstantVariation(t *testing.T) {
	// GIVEN: base 1,000,000 ARS and a synthetic source returning a flat
	// 10% for every month (all estimated)
	// THEN: the index compounds 110 -> 121 -> 133.1
	source := indices.NewStaticSource(nil, 10)

	p, err := indices.Project(indices.ProjectionInput{
		BaseAmount:     fiscal.NewMoney(1000000, fiscal.ARS),
		StartDate:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		DurationMonths: 3,
	}, source)
	require.NoError(t, err)
	require.Len(t, p.Entries, 3)

	assert.True(t, p.Entries[0].IndexValue.Equal(dec("110")))
	assert.True(t, p.Entries[1].IndexValue.Equal(dec("121")))
	assert.True(t, p.Entries[2].IndexValue.Equal(dec("133.1")))

	assert.True(t, p.Entries[2].CumulativePct.Equal(dec("33.1")))
	assert.True(t, p.FinalAmount.Value.Equal(dec("1331000")))

	// Start date normalizes to the first of the month; entries follow it
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), p.Entries[0].Date)
	for _, e := range p.Entries {
		assert.True(t, e.Estimated, "synthetic source has no published data")
	}
}

func TestProject_TagsPublishedVsEstimated(t *testing.T) {
	// GIVEN: published data for Feb and Mar 2024 only
	source := indices.NewStaticSource(map[string]float64{
		"2024-02": 11.9,
		"2024-03": 10.1,
	}, 3.0)

	p, err := indices.Project(indices.ProjectionInput{
		BaseAmount:     fiscal.NewMoney(500000, fiscal.ARS),
		StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 4,
	}, source)
	require.NoError(t, err)

	assert.False(t, p.Entries[0].Estimated) // Feb: published
	assert.False(t, p.Entries[1].Estimated) // Mar: published
	assert.True(t, p.Entries[2].Estimated)  // Apr: estimate
	assert.True(t, p.Entries[3].Estimated)  // May: estimate
}

func TestProject_EntriesReconstructFinalAmount(t *testing.T) {
	// Each entry must carry enough to re-derive its amount independently.
	p, err := indices.Project(indices.ProjectionInput{
		BaseAmount:     fiscal.NewMoney(2500000, fiscal.ARS),
		StartDate:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 12,
	}, indices.DefaultSource())
	require.NoError(t, err)

	hundred := decimal.NewFromInt(100)
	for _, e := range p.Entries {
		expected := p.BaseAmount.Value.Mul(e.IndexValue.Div(hundred))
		assert.True(t, e.Amount.Value.Equal(expected),
			"%s: amount %s does not match base × index/100 = %s", e.Date, e.Amount.Value, expected)
	}
	assert.True(t, p.FinalAmount.Value.Equal(p.Entries[len(p.Entries)-1].Amount.Value))
}

func TestProject_MonotoneForPositiveVariations(t *testing.T) {
	p, err := indices.Project(indices.ProjectionInput{
		BaseAmount:     fiscal.NewMoney(1000, fiscal.ARS),
		StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 24,
	}, indices.DefaultSource())
	require.NoError(t, err)

	prev := decimal.Zero
	for _, e := range p.Entries {
		assert.True(t, e.Amount.Value.GreaterThan(prev))
		prev = e.Amount.Value
	}
}

func TestProject_RejectsBadDurations(t *testing.T) {
	source := indices.DefaultSource()
	for _, months := range []int{0, -1, 121} {
		_, err := indices.Project(indices.ProjectionInput{
			BaseAmount:     fiscal.NewMoney(1000, fiscal.ARS),
			StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			DurationMonths: months,
		}, source)
		require.Error(t, err, "duration %d must be rejected", months)
		assert.True(t, fiscal.IsValidation(err))
	}
}
