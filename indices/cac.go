/*
cac.go - Construction-index accumulation arithmetic

PURPOSE:
  Projects a base amount across N months of index variations. Starting
  from index 100 at the contract month, each projected month multiplies
  the running index by (1 + variation/100) and re-prices the base amount.

GUARANTEE:
  Every monthly entry carries the variation applied, the resulting index
  value, the cumulative percentage since the start and the re-priced
  amount — enough to reconstruct the final figure independently:

    entry.Amount == baseAmount × entry.IndexValue / 100
*/
package indices

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitar/fiscal-engine/fiscal"
)

// MaxProjectionMonths bounds a projection; longer horizons are rejected
// rather than silently clamped.
const MaxProjectionMonths = 120

// baseIndex is the index value assigned to the contract month.
var baseIndex = decimal.NewFromInt(100)

// ProjectionInput is the contract's base figures.
type ProjectionInput struct {
	BaseAmount     fiscal.Money
	StartDate      time.Time
	DurationMonths int
}

// MonthEntry is one projected month.
type MonthEntry struct {
	Date          time.Time          // first day of the projected month
	Variation     fiscal.Percentage  // vs. the prior month
	IndexValue    decimal.Decimal    // running index, 100 = start month
	CumulativePct decimal.Decimal    // % change since the start month
	Amount        fiscal.Money       // base amount re-priced at this index
	Estimated     bool               // false when backed by published data
}

// Projection is the ordered month-by-month result.
type Projection struct {
	BaseAmount  fiscal.Money
	StartDate   time.Time
	Entries     []MonthEntry
	FinalAmount fiscal.Money
}

// Project accumulates the index across the duration, one entry per month
// starting the month after the contract month.
func Project(in ProjectionInput, source IndexSource) (*Projection, error) {
	if in.DurationMonths < 1 || in.DurationMonths > MaxProjectionMonths {
		return nil, fiscal.NewValidationError("duration_months", "must be between 1 and 120")
	}

	start := time.Date(in.StartDate.Year(), in.StartDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	result := &Projection{
		BaseAmount: in.BaseAmount,
		StartDate:  start,
		Entries:    make([]MonthEntry, 0, in.DurationMonths),
	}

	index := baseIndex
	for i := 1; i <= in.DurationMonths; i++ {
		month := start.AddDate(0, i, 0)
		variation, published := source.MonthlyVariation(month.Year(), month.Month())

		index = index.Mul(decimal.NewFromInt(1).Add(variation.Fraction()))

		result.Entries = append(result.Entries, MonthEntry{
			Date:          month,
			Variation:     variation,
			IndexValue:    index,
			CumulativePct: index.Sub(baseIndex), // index base 100 makes this the cumulative %
			Amount:        in.BaseAmount.Mul(index.Div(baseIndex)),
			Estimated:     !published,
		})
	}

	result.FinalAmount = result.Entries[len(result.Entries)-1].Amount
	return result, nil
}
