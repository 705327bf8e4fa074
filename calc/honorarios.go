/*
honorarios.go - Agency commission calculator

PURPOSE:
  Computes the commission each contracting party owes the agency for a
  brokered operation. The scale depends on the operation type — and, for
  residential rentals, on the zone (CABA caps tenant commissions at zero).

PRESENTATION CONTRACT:
  The result carries party AMOUNTS only, never the percentages used. The
  platform deliberately shows clients what they owe without exposing the
  negotiated scale; keep rates out of this output.
*/
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/habitar/fiscal-engine/fiscal"
)

// Party labels per operation family.
const (
	PartySeller   = "vendedor"
	PartyBuyer    = "comprador"
	PartyLandlord = "locador"
	PartyTenant   = "locatario"
)

// HonorariosInput identifies the operation and its base amount. For
// temporary rentals the total may be derived from MonthlyAmount × Months
// when Amount is not supplied directly.
type HonorariosInput struct {
	Operation     fiscal.OperationType
	Amount        fiscal.Money
	Zone          fiscal.Jurisdiction // residential rentals only
	MonthlyAmount fiscal.Money        // temporary rentals, optional
	Months        int                 // temporary rentals, optional
}

// CommissionResult is one commission amount per contracting party.
// Deliberately rate-free (see the presentation contract above).
type CommissionResult struct {
	Operation   fiscal.OperationType
	BaseAmount  fiscal.Money
	OwnerParty  string // vendedor or locador
	OwnerFee    fiscal.Money
	ClientParty string // comprador or locatario
	ClientFee   fiscal.Money
}

// Honorarios computes both parties' commissions for an operation.
func Honorarios(in HonorariosInput, rates fiscal.RateTable) (*CommissionResult, error) {
	if in.Operation == fiscal.OperationResidentialRental &&
		in.Zone != fiscal.CABA && in.Zone != fiscal.PBA {
		return nil, fiscal.NewValidationError("zone", "residential rentals require zone caba or pba")
	}

	amount := in.Amount
	if in.Operation == fiscal.OperationTemporaryRental && !amount.IsPositive() && in.MonthlyAmount.IsPositive() {
		months := in.Months
		if months < 1 {
			months = 1
		}
		amount = in.MonthlyAmount.Mul(decimal.NewFromInt(int64(months)))
	}

	pair, err := rates.CommissionFor(in.Operation, in.Zone)
	if err != nil {
		return nil, err
	}

	ownerParty, clientParty := PartyLandlord, PartyTenant
	if in.Operation == fiscal.OperationSale {
		ownerParty, clientParty = PartySeller, PartyBuyer
	}

	return &CommissionResult{
		Operation:   in.Operation,
		BaseAmount:  amount,
		OwnerParty:  ownerParty,
		OwnerFee:    pair.Owner.ApplyTo(amount),
		ClientParty: clientParty,
		ClientFee:   pair.Client.ApplyTo(amount),
	}, nil
}
