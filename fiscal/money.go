/*
Package fiscal provides the core primitives of the fiscal calculation engine.

PURPOSE:
  This package contains the value types and lookup tables shared by every
  calculator in the platform: monetary amounts, percentages, exchange rates,
  jurisdiction tags, rate tables, and the business-day calendar. Whether
  computing escritura closing costs or a rent adjustment, the same
  primitives carry the numbers.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A decimal amount tagged with a currency (ARS or USD)
  - Percentage: A rate in [0, 100], applied as value/100
  - ExchangeRate: ARS-per-USD conversion, always caller-supplied

DESIGN PRINCIPLES:
  1. Immutability: Every value is constructed fresh per calculation
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Purity: No I/O, no globals, no reliance on wall-clock time
  4. Auditability: Breakdowns carry every intermediate line item

USAGE:
  price := fiscal.NewMoney(150000, fiscal.USD)
  fee := fiscal.NewPercent(4).ApplyTo(price) // 6000 USD

SEE ALSO:
  - rates.go: Jurisdiction/operation rate tables
  - normalize.go: String-to-number coercion policy
  - calendar.go: Business-day arithmetic
*/
package fiscal

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CURRENCY
// =============================================================================

type Currency string

const (
	ARS Currency = "ARS"
	USD Currency = "USD"
)

// =============================================================================
// MONEY - Decimal amount tagged with a currency
// =============================================================================

type Money struct {
	Value    decimal.Decimal
	Currency Currency
}

func NewMoney(value float64, currency Currency) Money {
	return Money{Value: decimal.NewFromFloat(value), Currency: currency}
}

func NewMoneyFromDecimal(value decimal.Decimal, currency Currency) Money {
	return Money{Value: value, Currency: currency}
}

func ZeroMoney(currency Currency) Money {
	return Money{Value: decimal.Zero, Currency: currency}
}

func (m Money) Add(b Money) Money              { return Money{Value: m.Value.Add(b.Value), Currency: m.Currency} }
func (m Money) Sub(b Money) Money              { return Money{Value: m.Value.Sub(b.Value), Currency: m.Currency} }
func (m Money) Mul(s decimal.Decimal) Money    { return Money{Value: m.Value.Mul(s), Currency: m.Currency} }
func (m Money) Div(s decimal.Decimal) Money    { return Money{Value: m.Value.Div(s), Currency: m.Currency} }
func (m Money) Neg() Money                     { return Money{Value: m.Value.Neg(), Currency: m.Currency} }
func (m Money) IsNegative() bool               { return m.Value.IsNegative() }
func (m Money) IsZero() bool                   { return m.Value.IsZero() }
func (m Money) IsPositive() bool               { return m.Value.IsPositive() }
func (m Money) GreaterThan(b Money) bool       { return m.Value.GreaterThan(b.Value) }
func (m Money) LessThan(b Money) bool          { return m.Value.LessThan(b.Value) }

// ClampZero floors the amount at zero. Used wherever a formula computes a
// signed difference but the result must never go negative (capital gain,
// stamp-tax excess over the exemption threshold).
func (m Money) ClampZero() Money {
	if m.Value.IsNegative() {
		return ZeroMoney(m.Currency)
	}
	return m
}

// =============================================================================
// PERCENTAGE - Rate in [0, 100], applied as value/100
// =============================================================================

type Percentage struct {
	Value decimal.Decimal
}

func NewPercent(value float64) Percentage {
	return Percentage{Value: decimal.NewFromFloat(value)}
}

func NewPercentFromDecimal(value decimal.Decimal) Percentage {
	return Percentage{Value: value}
}

var oneHundred = decimal.NewFromInt(100)

// Fraction returns the rate as a multiplier (4.15% -> 0.0415).
func (p Percentage) Fraction() decimal.Decimal {
	return p.Value.Div(oneHundred)
}

// ApplyTo returns amount * rate/100 in the amount's currency.
func (p Percentage) ApplyTo(m Money) Money {
	return m.Mul(p.Fraction())
}

// Half returns the rate split between two parties (stamp tax convention).
func (p Percentage) Half() Percentage {
	return Percentage{Value: p.Value.Div(decimal.NewFromInt(2))}
}

func (p Percentage) IsZero() bool { return p.Value.IsZero() }

// =============================================================================
// EXCHANGE RATE - ARS per USD, resolved by the caller before calculating
// =============================================================================

// ExchangeRate converts between the two platform currencies. The engine
// never fetches a live quote itself: the caller resolves one (or falls back
// to FallbackExchangeRate) and passes it in.
type ExchangeRate struct {
	ARSPerUSD decimal.Decimal
}

func NewExchangeRate(arsPerUSD float64) ExchangeRate {
	return ExchangeRate{ARSPerUSD: decimal.NewFromFloat(arsPerUSD)}
}

func (r ExchangeRate) ToARS(usd Money) Money {
	return Money{Value: usd.Value.Mul(r.ARSPerUSD), Currency: ARS}
}

func (r ExchangeRate) ToUSD(ars Money) Money {
	return Money{Value: ars.Value.Div(r.ARSPerUSD), Currency: USD}
}

func (r ExchangeRate) IsValid() bool {
	return r.ARSPerUSD.IsPositive()
}

// =============================================================================
// JURISDICTIONS AND PARTIES
// =============================================================================

// Jurisdiction selects a row in the rate tables. The platform currently
// operates in the City of Buenos Aires and the Province of Buenos Aires.
type Jurisdiction string

const (
	CABA Jurisdiction = "caba"
	PBA  Jurisdiction = "pba"
)

// Role identifies which contracting party an escritura fee schedule
// applies to.
type Role string

const (
	RoleBuyer             Role = "comprador"
	RoleSeller            Role = "vendedor"
	RoleFirstRegistration Role = "primera-escritura"
)

// OperationType identifies the kind of brokered operation for commission
// purposes.
type OperationType string

const (
	OperationSale              OperationType = "venta"
	OperationResidentialRental OperationType = "alquiler-residencial"
	OperationCommercialRental  OperationType = "alquiler-comercial"
	OperationTemporaryRental   OperationType = "alquiler-temporario"
)
