/*
ajustes.go - Rent adjustment calculator

PURPOSE:
  Applies an agreed adjustment percentage to the current rent and projects
  the result over the contract's adjustment period.

NO COMPOUNDING:
  The projection is deliberately linear: one period's increase repeated N
  times, never re-applied cumulatively.

    totalIncrease  = periodMultiplier × increase
    totalNewAmount = currentAmount + totalIncrease

  Contracts in this market state a fixed step per adjustment, so the
  compounded figure would overstate the projection. Preserve this.
*/
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/habitar/fiscal-engine/fiscal"
)

// AdjustmentPeriod is the contract's adjustment cadence.
type AdjustmentPeriod string

const (
	PeriodMonthly    AdjustmentPeriod = "mensual"
	PeriodQuarterly  AdjustmentPeriod = "trimestral"
	PeriodSemiannual AdjustmentPeriod = "semestral"
	PeriodAnnual     AdjustmentPeriod = "anual"
)

// Months returns the period multiplier (1/3/6/12).
func (p AdjustmentPeriod) Months() (int, error) {
	switch p {
	case PeriodMonthly:
		return 1, nil
	case PeriodQuarterly:
		return 3, nil
	case PeriodSemiannual:
		return 6, nil
	case PeriodAnnual:
		return 12, nil
	default:
		return 0, fiscal.NewValidationError("period", "must be mensual, trimestral, semestral or anual")
	}
}

// AdjustmentInput is the current rent plus the agreed step.
type AdjustmentInput struct {
	CurrentAmount fiscal.Money
	Percentage    fiscal.Percentage
	Period        AdjustmentPeriod
}

// AdjustmentResult is one period's step plus the linear projection.
type AdjustmentResult struct {
	CurrentAmount    fiscal.Money
	Increase         fiscal.Money
	NewAmount        fiscal.Money
	PeriodMultiplier int
	TotalIncrease    fiscal.Money
	TotalNewAmount   fiscal.Money
}

// RentAdjustment computes the adjusted rent and its linear projection.
func RentAdjustment(in AdjustmentInput) (*AdjustmentResult, error) {
	multiplier, err := in.Period.Months()
	if err != nil {
		return nil, err
	}

	increase := in.Percentage.ApplyTo(in.CurrentAmount)
	totalIncrease := increase.Mul(decimal.NewFromInt(int64(multiplier)))

	return &AdjustmentResult{
		CurrentAmount:    in.CurrentAmount,
		Increase:         increase,
		NewAmount:        in.CurrentAmount.Add(increase),
		PeriodMultiplier: multiplier,
		TotalIncrease:    totalIncrease,
		TotalNewAmount:   in.CurrentAmount.Add(totalIncrease),
	}, nil
}
