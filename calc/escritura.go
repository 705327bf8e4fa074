/*
Package calc implements the platform's fiscal calculators.

PURPOSE:
  Each file is one formula module: escritura closing costs, honorarios
  (commissions), the cedular capital-gains tax, and rent adjustments.
  Every calculator is a pure function over normalized inputs plus an
  injected RateTable — no state, no I/O, safe to run concurrently.

KEY CONCEPTS IN THIS FILE (escritura.go):
  - EscrituraInput: role, jurisdiction, fx rate, prices, exemption flag
  - LineItem: one named cost with the rate that produced it
  - Breakdown: ordered line items + totalCosts + finalAmount

ALGORITHM:
  1. Look up the role's fee schedule and apply each percentage to the
     USD transaction price (administrative costs run over the ARS
     writing price and convert back).
  2. Where the schedule says so (first registration), add a 21% VAT line
     after each fee component.
  3. Stamp tax runs over the ARS writing price at the jurisdiction rate:
     half rate for buyer/seller (the tax is split between parties), full
     rate for a first registration. The CABA primary-residence exemption
     taxes only the excess above the legal threshold.
  4. finalAmount = transactionPrice + totalCosts for buyer/first
     registration, transactionPrice - totalCosts for the seller.

AUDITABILITY:
  Every line item records the rate that produced it, so each amount and
  both totals can be re-derived from the breakdown alone. No intermediate
  rounding: display rounding belongs to fiscal.FormatMoney.

SEE ALSO:
  - fiscal/rates.go: The fee schedules and stamp rates consumed here
  - honorarios.go, cedular.go, ajustes.go: The other formula modules
*/
package calc

import (
	"github.com/habitar/fiscal-engine/fiscal"
)

// =============================================================================
// INPUT / OUTPUT TYPES
// =============================================================================

// EscrituraInput are the caller-resolved inputs for a closing-cost
// calculation. Prices are USD; the exchange rate is already resolved
// (live quote or fallback) by the caller.
type EscrituraInput struct {
	Role             fiscal.Role
	Jurisdiction     fiscal.Jurisdiction
	ExchangeRate     fiscal.ExchangeRate
	WritingPrice     fiscal.Money // deed (escritura) value, USD
	TransactionPrice fiscal.Money // agreed sale price, USD
	StampTaxExempt   bool         // primary-residence exemption, CABA only
}

// LineItem is one named cost in a breakdown, carrying the rate that
// produced it so the amount is independently re-derivable.
type LineItem struct {
	Label  string
	Rate   fiscal.Percentage
	Amount fiscal.Money
}

// Breakdown is the complete result of an escritura calculation.
type Breakdown struct {
	Role             fiscal.Role
	Jurisdiction     fiscal.Jurisdiction
	TransactionPrice fiscal.Money
	WritingPriceARS  fiscal.Money
	Items            []LineItem
	TotalCosts       fiscal.Money
	FinalAmount      fiscal.Money // transactionPrice ± totalCosts by role
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Escritura computes the closing-cost breakdown for one contracting role.
func Escritura(in EscrituraInput, rates fiscal.RateTable) (*Breakdown, error) {
	if !in.ExchangeRate.IsValid() {
		return nil, fiscal.NewValidationError("exchange_rate", "must be a positive ARS/USD rate")
	}

	fees, err := rates.EscrituraFeesFor(in.Role)
	if err != nil {
		return nil, err
	}
	stampRate, err := rates.StampTaxRate(in.Jurisdiction)
	if err != nil {
		return nil, err
	}

	writingARS := in.ExchangeRate.ToARS(in.WritingPrice)

	b := &Breakdown{
		Role:             in.Role,
		Jurisdiction:     in.Jurisdiction,
		TransactionPrice: in.TransactionPrice,
		WritingPriceARS:  writingARS,
	}

	addFee := func(label string, rate fiscal.Percentage, base fiscal.Money) {
		if rate.IsZero() {
			return
		}
		amount := rate.ApplyTo(base)
		b.Items = append(b.Items, LineItem{Label: label, Rate: rate, Amount: amount})
		if fees.VATOnFees {
			b.Items = append(b.Items, LineItem{
				Label:  "IVA " + label,
				Rate:   rates.VAT,
				Amount: rates.VAT.ApplyTo(amount),
			})
		}
	}

	addFee("honorarios inmobiliaria", fees.Agency, in.TransactionPrice)
	addFee("honorarios escribano", fees.Notary, in.TransactionPrice)
	addFee("otros gastos", fees.OtherCosts, in.TransactionPrice)
	addFee("fondo de reserva", fees.ReserveFund, in.TransactionPrice)

	// Administrative costs run over the ARS writing price and convert back.
	if !fees.Administrative.IsZero() {
		amountARS := fees.Administrative.ApplyTo(writingARS)
		b.Items = append(b.Items, LineItem{
			Label:  "gastos administrativos",
			Rate:   fees.Administrative,
			Amount: in.ExchangeRate.ToUSD(amountARS),
		})
	}

	b.Items = append(b.Items, stampTaxItem(in, rates, stampRate, writingARS))

	total := fiscal.ZeroMoney(fiscal.USD)
	for _, item := range b.Items {
		total = total.Add(item.Amount)
	}
	b.TotalCosts = total

	if in.Role == fiscal.RoleSeller {
		b.FinalAmount = in.TransactionPrice.Sub(total) // seller receives net
	} else {
		b.FinalAmount = in.TransactionPrice.Add(total)
	}
	return b, nil
}

// stampTaxItem computes the sellos line. Buyer and seller each carry half
// the jurisdiction rate; a first registration carries the full rate.
func stampTaxItem(in EscrituraInput, rates fiscal.RateTable, fullRate fiscal.Percentage, writingARS fiscal.Money) LineItem {
	rate := fullRate.Half()
	if in.Role == fiscal.RoleFirstRegistration {
		rate = fullRate
	}

	base := writingARS
	if in.StampTaxExempt && in.Jurisdiction == fiscal.CABA {
		// Exemption: only the portion above the threshold is taxed.
		excess := writingARS.Sub(fiscal.NewMoneyFromDecimal(rates.StampExemptionThresholdARS, fiscal.ARS))
		base = excess.ClampZero()
	}

	return LineItem{
		Label:  "impuesto de sellos",
		Rate:   rate,
		Amount: in.ExchangeRate.ToUSD(rate.ApplyTo(base)),
	}
}
