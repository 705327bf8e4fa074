/*
cedular.go - Cedular capital-gains tax calculator

PURPOSE:
  Argentina's impuesto cedular taxes the gain on a property sale at a
  flat per-jurisdiction rate, but only for properties acquired under the
  2018 fiscal reform and not covered by the vivienda única exemption.

APPLICABILITY:
  The regime does NOT apply when, checked in this order:
    1. the acquisition year is not informed  -> acquisition-year-unset
    2. the property predates the reform      -> acquired-before-2018
    3. it is the sole permanent residence    -> sole-residence-exempt
  The three reasons are mutually exclusive and individually reportable so
  the UI can explain WHY no tax is owed. "Not applicable" is a distinct
  state, never a zero amount: a taxed sale with no gain owes $0 and still
  reports Applies=true.
*/
package calc

import (
	"github.com/habitar/fiscal-engine/fiscal"
)

// NonApplicabilityReason explains why the cedular regime does not apply.
type NonApplicabilityReason string

const (
	ReasonAcquisitionYearUnset NonApplicabilityReason = "acquisition-year-unset"
	ReasonAcquiredBeforeCutoff NonApplicabilityReason = "acquired-before-2018"
	ReasonSoleResidenceExempt  NonApplicabilityReason = "sole-residence-exempt"
)

// CedularInput are the sale figures plus the applicability facts.
type CedularInput struct {
	PurchasePrice      fiscal.Money
	SalePrice          fiscal.Money
	DeductibleExpenses fiscal.Money
	Jurisdiction       fiscal.Jurisdiction
	AcquisitionYear    int
	SoleResidence      bool
}

// CedularResult reports the gain and, when the regime applies, the tax.
type CedularResult struct {
	Gain    fiscal.Money
	Applies bool
	Tax     *fiscal.Money          // nil when the regime does not apply
	Reason  NonApplicabilityReason // empty when Applies
}

// Cedular computes the capital-gains result for a property sale.
func Cedular(in CedularInput, rates fiscal.RateTable) (*CedularResult, error) {
	gain := in.SalePrice.Sub(in.PurchasePrice).Sub(in.DeductibleExpenses).ClampZero()

	result := &CedularResult{Gain: gain}

	switch {
	case in.AcquisitionYear == 0:
		result.Reason = ReasonAcquisitionYearUnset
		return result, nil
	case in.AcquisitionYear < rates.CedularCutoffYear:
		result.Reason = ReasonAcquiredBeforeCutoff
		return result, nil
	case in.SoleResidence:
		result.Reason = ReasonSoleResidenceExempt
		return result, nil
	}

	rate, err := rates.CedularRate(in.Jurisdiction)
	if err != nil {
		return nil, err
	}

	tax := rate.ApplyTo(gain)
	result.Applies = true
	result.Tax = &tax
	return result, nil
}
