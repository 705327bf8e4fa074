/*
format.go - Locale-aware currency rendering

PURPOSE:
  Renders monetary amounts for display using Argentine conventions:
  thousands separated by '.', decimals by ',', prefix "$" for pesos and
  "US$" for dollars. Formatting is strictly a presentation concern: the
  calculators return raw decimals and are tested without any locale logic.
*/
package fiscal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatARS renders an amount as Argentine pesos, e.g. "$ 1.234.567,89".
func FormatARS(value decimal.Decimal) string {
	return "$ " + formatLocalized(value)
}

// FormatUSD renders an amount as US dollars, e.g. "US$ 1.234,56".
func FormatUSD(value decimal.Decimal) string {
	return "US$ " + formatLocalized(value)
}

// FormatMoney picks the currency prefix from the Money tag.
func FormatMoney(m Money) string {
	if m.Currency == ARS {
		return FormatARS(m.Value)
	}
	return FormatUSD(m.Value)
}

// formatLocalized renders a decimal with es-AR separators and two decimal
// places ("-1234567.8" -> "-1.234.567,80").
func formatLocalized(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	intPart, decPart := parts[0], parts[1]

	if len(intPart) > 3 {
		var b strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteByte('.')
			}
			b.WriteRune(digit)
		}
		intPart = b.String()
	}

	return sign + intPart + "," + decPart
}
