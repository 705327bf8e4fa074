/*
rates.go - Jurisdiction and operation rate tables

PURPOSE:
  Every percentage and threshold that encodes legal/fiscal policy lives
  here as DATA, not as inline literals sprinkled through calculators.
  When the legislature moves the stamp-tax exemption threshold or a
  professional body changes a commission scale, the change is a table
  diff, not a code diff.

KEY CONCEPTS:
  - RateTable: The complete, immutable policy snapshot injected into
    every calculator call. Loaded once at startup, never mutated.
  - Lookups fail loudly: an unknown jurisdiction/operation key returns a
    ConfigurationError. A silent zero rate would mask a data defect.

CURRENT LAW (encoded in DefaultRateTable):
  - VAT:                   21%
  - Stamp tax:             CABA 2.7%, PBA 2.0% (split between parties)
  - Stamp exemption:       ARS 226,100,000 threshold, CABA primary homes
  - Cedular tax:           15% flat in both jurisdictions, for properties
                           acquired in 2018 or later
  - Commission scales:     per operation type, see DefaultRateTable

  The cedular table keeps a per-jurisdiction shape even though both rows
  currently coincide; official per-province rates are pending and the
  divergence point must stay available.

SEE ALSO:
  - config/: YAML overrides for every value in this file
  - calc/: The formula modules consuming these tables
*/
package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TABLE ROW TYPES
// =============================================================================

// CommissionPair is the two-sided commission scale for one operation type:
// the owner side (seller/landlord) and the client side (buyer/tenant).
type CommissionPair struct {
	Owner  Percentage
	Client Percentage
}

// EscrituraFees is the fee schedule applied to one contracting role.
// Zero-valued percentages mean the component does not apply to that role.
type EscrituraFees struct {
	Agency         Percentage // agency fee over transaction price
	Notary         Percentage // notary fee over transaction price
	OtherCosts     Percentage // sundry closing costs over transaction price
	Administrative Percentage // administrative costs over ARS writing price
	ReserveFund    Percentage // building reserve fund over transaction price
	VATOnFees      bool       // fee components accrue 21% VAT on top
}

// CommissionKey addresses a commission scale. Zone is only meaningful for
// residential rentals (CABA and PBA scales differ); for every other
// operation type it is left empty.
type CommissionKey struct {
	Operation OperationType
	Zone      Jurisdiction
}

// =============================================================================
// RATE TABLE - Immutable policy snapshot
// =============================================================================

// RateTable bundles every policy rate the calculators need. Treat it as
// immutable: it is built once (from defaults or config) and shared.
type RateTable struct {
	// VAT applied on top of fee components where EscrituraFees.VATOnFees.
	VAT Percentage

	// Stamp tax rate by jurisdiction, over the ARS writing price. The
	// full rate; party splitting is the calculator's rule.
	StampTax map[Jurisdiction]Percentage

	// StampExemptionThresholdARS is the primary-residence exemption
	// threshold (CABA only): only the ARS writing price above it is taxed.
	StampExemptionThresholdARS decimal.Decimal

	// Cedular capital-gains rate by jurisdiction.
	Cedular map[Jurisdiction]Percentage

	// CedularCutoffYear: acquisitions strictly before this year are out of
	// the cedular regime.
	CedularCutoffYear int

	// Commission scales by operation type (and zone, for residential).
	Commissions map[CommissionKey]CommissionPair

	// Escritura fee schedules by contracting role.
	EscrituraFees map[Role]EscrituraFees
}

// =============================================================================
// LOOKUPS - Unknown keys fail with ConfigurationError
// =============================================================================

// StampTaxRate returns the full stamp-tax rate for a jurisdiction.
func (t RateTable) StampTaxRate(j Jurisdiction) (Percentage, error) {
	rate, ok := t.StampTax[j]
	if !ok {
		return Percentage{}, &ConfigurationError{Table: "stamp_tax", Key: string(j)}
	}
	return rate, nil
}

// CedularRate returns the capital-gains rate for a jurisdiction.
func (t RateTable) CedularRate(j Jurisdiction) (Percentage, error) {
	rate, ok := t.Cedular[j]
	if !ok {
		return Percentage{}, &ConfigurationError{Table: "cedular", Key: string(j)}
	}
	return rate, nil
}

// CommissionFor returns the two-sided commission scale for an operation.
// Zone is ignored unless the operation is a residential rental.
func (t RateTable) CommissionFor(op OperationType, zone Jurisdiction) (CommissionPair, error) {
	key := CommissionKey{Operation: op}
	if op == OperationResidentialRental {
		key.Zone = zone
	}
	pair, ok := t.Commissions[key]
	if !ok {
		return CommissionPair{}, &ConfigurationError{
			Table: "commissions",
			Key:   fmt.Sprintf("%s/%s", key.Operation, key.Zone),
		}
	}
	return pair, nil
}

// EscrituraFeesFor returns the fee schedule for a contracting role.
func (t RateTable) EscrituraFeesFor(role Role) (EscrituraFees, error) {
	fees, ok := t.EscrituraFees[role]
	if !ok {
		return EscrituraFees{}, &ConfigurationError{Table: "escritura_fees", Key: string(role)}
	}
	return fees, nil
}

// =============================================================================
// DEFAULT TABLE - Current law, overridable via config
// =============================================================================

// DefaultRateTable returns the compiled-in policy snapshot.
func DefaultRateTable() RateTable {
	return RateTable{
		VAT: NewPercent(21),

		StampTax: map[Jurisdiction]Percentage{
			CABA: NewPercent(2.7),
			PBA:  NewPercent(2.0),
		},
		StampExemptionThresholdARS: decimal.NewFromInt(226_100_000),

		Cedular: map[Jurisdiction]Percentage{
			CABA: NewPercent(15),
			PBA:  NewPercent(15),
		},
		CedularCutoffYear: 2018,

		Commissions: map[CommissionKey]CommissionPair{
			{Operation: OperationSale}: {
				Owner:  NewPercent(3), // seller
				Client: NewPercent(4), // buyer
			},
			{Operation: OperationResidentialRental, Zone: CABA}: {
				Owner:  NewPercent(4.15), // landlord
				Client: NewPercent(0),    // tenant pays nothing in CABA
			},
			{Operation: OperationResidentialRental, Zone: PBA}: {
				Owner:  NewPercent(3),
				Client: NewPercent(5),
			},
			{Operation: OperationCommercialRental}: {
				Owner:  NewPercent(3),
				Client: NewPercent(5),
			},
			{Operation: OperationTemporaryRental}: {
				Owner:  NewPercent(10),
				Client: NewPercent(20),
			},
		},

		EscrituraFees: map[Role]EscrituraFees{
			RoleBuyer: {
				Agency:     NewPercent(4),
				Notary:     NewPercent(2),
				OtherCosts: NewPercent(0.75),
			},
			RoleSeller: {
				Agency:         NewPercent(3),
				Administrative: NewPercent(2),
			},
			RoleFirstRegistration: {
				Agency:      NewPercent(4),
				Notary:      NewPercent(3.5),
				ReserveFund: NewPercent(1),
				VATOnFees:   true,
			},
		},
	}
}
