/*
normalize.go - Numeric input normalization

PURPOSE:
  The platform's forms accept free-form numeric input: users paste values
  with currency symbols, thousands separators, or stray letters
  ("US$ 1,500.50", "$1.200", "150000 aprox"). Every calculator shares this
  single parsing policy instead of each form field rolling its own.

POLICY:
  1. Strip every rune that is not a digit or a decimal point.
  2. If more than one decimal point survives, the FIRST one wins and the
     rest are dropped ("1.234.56" parses as 1.23456).
  3. Parse the remainder as a decimal. Empty or unparsable input yields
     the fallback (zero for amounts, FallbackExchangeRate for rates).

  Normalization NEVER fails. A malformed field becomes the fallback, not
  an error: this is a deliberate best-effort UX policy.

  Minus signs are stripped like any other non-digit, so normalized amounts
  are always non-negative. Formulas that need signed values (capital gain)
  compute the difference themselves and clamp.
*/
package fiscal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FallbackExchangeRate is substituted when the live ARS/USD feed is
// unavailable or returns an unparsable value. Updated periodically.
var FallbackExchangeRate = decimal.NewFromFloat(1456.89)

// NormalizeAmount parses a free-form numeric string, falling back to zero.
func NormalizeAmount(raw string) decimal.Decimal {
	return NormalizeAmountOr(raw, decimal.Zero)
}

// NormalizeAmountOr parses a free-form numeric string, substituting the
// given fallback when nothing numeric survives stripping.
func NormalizeAmountOr(raw string, fallback decimal.Decimal) decimal.Decimal {
	cleaned := stripNonNumeric(raw)
	if cleaned == "" || cleaned == "." {
		return fallback
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return fallback
	}
	return d
}

// NormalizeExchangeRate parses a free-form rate string, substituting the
// documented fallback constant on failure or on a non-positive value.
func NormalizeExchangeRate(raw string) ExchangeRate {
	d := NormalizeAmountOr(raw, FallbackExchangeRate)
	if !d.IsPositive() {
		d = FallbackExchangeRate
	}
	return ExchangeRate{ARSPerUSD: d}
}

// NormalizeMoney parses a free-form amount string into Money in the given
// currency, falling back to zero.
func NormalizeMoney(raw string, currency Currency) Money {
	return Money{Value: NormalizeAmount(raw), Currency: currency}
}

// stripNonNumeric removes everything but digits and the first decimal point.
func stripNonNumeric(raw string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
