package calc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
)

func usd(v float64) fiscal.Money { return fiscal.NewMoney(v, fiscal.USD) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// itemAmount returns the amount of the first line item whose label matches.
func itemAmount(t *testing.T, b *calc.Breakdown, label string) decimal.Decimal {
	t.Helper()
	for _, item := range b.Items {
		if item.Label == label {
			return item.Amount.Value
		}
	}
	t.Fatalf("breakdown has no line item %q", label)
	return decimal.Zero
}

func TestEscritura_BuyerCABA(t *testing.T) {
	// GIVEN: buyer in CABA, fx 1000, writing USD 100k, transaction USD 150k
	// THEN: agency 4% + notary 2% + other 0.75% over 150k, plus half the
	//       2.7% stamp rate over the ARS writing price converted back
	b, err := calc.Escritura(calc.EscrituraInput{
		Role:             fiscal.RoleBuyer,
		Jurisdiction:     fiscal.CABA,
		ExchangeRate:     fiscal.NewExchangeRate(1000),
		WritingPrice:     usd(100000),
		TransactionPrice: usd(150000),
	}, fiscal.DefaultRateTable())
	require.NoError(t, err)

	assert.True(t, itemAmount(t, b, "honorarios inmobiliaria").Equal(dec("6000")))
	assert.True(t, itemAmount(t, b, "honorarios escribano").Equal(dec("3000")))
	assert.True(t, itemAmount(t, b, "otros gastos").Equal(dec("1125")))
	// sellos: 1.35% of ARS 100,000,000 = ARS 1,350,000 = USD 1,350
	assert.True(t, itemAmount(t, b, "impuesto de sellos").Equal(dec("1350")))

	assert.True(t, b.TotalCosts.Value.Equal(dec("11475")))
	assert.True(t, b.FinalAmount.Value.Equal(dec("161475")), "buyer pays price plus costs")
}

func TestEscritura_SellerReceivesNet(t *testing.T) {
	// GIVEN: seller in CABA, same prices
	// THEN: agency 3% over transaction, administrative 2% over the ARS
	//       writing price converted back to USD, half stamp rate
	b, err := calc.Escritura(calc.EscrituraInput{
		Role:             fiscal.RoleSeller,
		Jurisdiction:     fiscal.CABA,
		ExchangeRate:     fiscal.NewExchangeRate(1000),
		WritingPrice:     usd(100000),
		TransactionPrice: usd(150000),
	}, fiscal.DefaultRateTable())
	require.NoError(t, err)

	assert.True(t, itemAmount(t, b, "honorarios inmobiliaria").Equal(dec("4500")))
	assert.True(t, itemAmount(t, b, "gastos administrativos").Equal(dec("2000")))
	assert.True(t, itemAmount(t, b, "impuesto de sellos").Equal(dec("1350")))

	assert.True(t, b.TotalCosts.Value.Equal(dec("7850")))
	assert.True(t, b.FinalAmount.Value.Equal(dec("142150")), "seller receives price minus costs")
}

func TestEscritura_FirstRegistrationAccruesVAT(t *testing.T) {
	// GIVEN: first registration in PBA
	// THEN: agency 4%, notary 3.5%, reserve fund 1%, each with a separate
	//       21% VAT line; full 2% stamp rate (no party split)
	b, err := calc.Escritura(calc.EscrituraInput{
		Role:             fiscal.RoleFirstRegistration,
		Jurisdiction:     fiscal.PBA,
		ExchangeRate:     fiscal.NewExchangeRate(1000),
		WritingPrice:     usd(100000),
		TransactionPrice: usd(150000),
	}, fiscal.DefaultRateTable())
	require.NoError(t, err)

	assert.True(t, itemAmount(t, b, "honorarios inmobiliaria").Equal(dec("6000")))
	assert.True(t, itemAmount(t, b, "IVA honorarios inmobiliaria").Equal(dec("1260")))
	assert.True(t, itemAmount(t, b, "honorarios escribano").Equal(dec("5250")))
	assert.True(t, itemAmount(t, b, "IVA honorarios escribano").Equal(dec("1102.5")))
	assert.True(t, itemAmount(t, b, "fondo de reserva").Equal(dec("1500")))
	assert.True(t, itemAmount(t, b, "IVA fondo de reserva").Equal(dec("315")))
	assert.True(t, itemAmount(t, b, "impuesto de sellos").Equal(dec("2000")))

	assert.True(t, b.TotalCosts.Value.Equal(dec("17427.5")))
	assert.True(t, b.FinalAmount.Value.Equal(dec("167427.5")))
}

func TestEscritura_Conservation(t *testing.T) {
	// Every breakdown must reconcile: sum(items) == totalCosts and
	// finalAmount == transactionPrice ± totalCosts by role.
	rates := fiscal.DefaultRateTable()
	for _, role := range []fiscal.Role{fiscal.RoleBuyer, fiscal.RoleSeller, fiscal.RoleFirstRegistration} {
		b, err := calc.Escritura(calc.EscrituraInput{
			Role:             role,
			Jurisdiction:     fiscal.PBA,
			ExchangeRate:     fiscal.NewExchangeRate(1456.89),
			WritingPrice:     usd(87300),
			TransactionPrice: usd(120500),
		}, rates)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, item := range b.Items {
			assert.False(t, item.Amount.IsNegative(), "%s: negative line item %q", role, item.Label)
			sum = sum.Add(item.Amount.Value)
		}
		assert.True(t, sum.Equal(b.TotalCosts.Value), "%s: items do not sum to totalCosts", role)

		expected := b.TransactionPrice.Value.Add(b.TotalCosts.Value)
		if role == fiscal.RoleSeller {
			expected = b.TransactionPrice.Value.Sub(b.TotalCosts.Value)
		}
		assert.True(t, b.FinalAmount.Value.Equal(expected), "%s: finalAmount mismatch", role)
	}
}

func TestEscritura_StampExemptionBoundary(t *testing.T) {
	rates := fiscal.DefaultRateTable()
	fx := fiscal.NewExchangeRate(1) // 1:1 keeps ARS figures readable

	base := calc.EscrituraInput{
		Role:             fiscal.RoleBuyer,
		Jurisdiction:     fiscal.CABA,
		ExchangeRate:     fx,
		TransactionPrice: usd(300000000),
		StampTaxExempt:   true,
	}

	// Exactly at the threshold: stamps are zero
	base.WritingPrice = usd(226100000)
	b, err := calc.Escritura(base, rates)
	require.NoError(t, err)
	assert.True(t, itemAmount(t, b, "impuesto de sellos").IsZero())

	// One ARS cent above: stamps tax only the excess (1.35% of 0.01)
	base.WritingPrice = fiscal.NewMoneyFromDecimal(dec("226100000.01"), fiscal.USD)
	b, err = calc.Escritura(base, rates)
	require.NoError(t, err)
	assert.True(t, itemAmount(t, b, "impuesto de sellos").Equal(dec("0.000135")))

	// Below the threshold: still zero
	base.WritingPrice = usd(100000000)
	b, err = calc.Escritura(base, rates)
	require.NoError(t, err)
	assert.True(t, itemAmount(t, b, "impuesto de sellos").IsZero())
}

func TestEscritura_ExemptionIsCABAOnly(t *testing.T) {
	// The flag must have no effect in PBA.
	rates := fiscal.DefaultRateTable()
	in := calc.EscrituraInput{
		Role:             fiscal.RoleBuyer,
		Jurisdiction:     fiscal.PBA,
		ExchangeRate:     fiscal.NewExchangeRate(1),
		WritingPrice:     usd(100000000), // below the CABA threshold
		TransactionPrice: usd(100000000),
		StampTaxExempt:   true,
	}
	b, err := calc.Escritura(in, rates)
	require.NoError(t, err)

	// half of PBA's 2% over the full writing price
	assert.True(t, itemAmount(t, b, "impuesto de sellos").Equal(dec("1000000")))
}

func TestEscritura_UnknownRoleIsConfigurationError(t *testing.T) {
	_, err := calc.Escritura(calc.EscrituraInput{
		Role:         fiscal.Role("inquilino"),
		Jurisdiction: fiscal.CABA,
		ExchangeRate: fiscal.NewExchangeRate(1000),
	}, fiscal.DefaultRateTable())
	require.Error(t, err)
	assert.True(t, fiscal.IsConfiguration(err))
}

func TestEscritura_RejectsInvalidExchangeRate(t *testing.T) {
	_, err := calc.Escritura(calc.EscrituraInput{
		Role:         fiscal.RoleBuyer,
		Jurisdiction: fiscal.CABA,
		ExchangeRate: fiscal.ExchangeRate{},
	}, fiscal.DefaultRateTable())
	require.Error(t, err)
	assert.True(t, fiscal.IsValidation(err))
}

func TestEscritura_Deterministic(t *testing.T) {
	in := calc.EscrituraInput{
		Role:             fiscal.RoleBuyer,
		Jurisdiction:     fiscal.CABA,
		ExchangeRate:     fiscal.NewExchangeRate(1456.89),
		WritingPrice:     usd(100000),
		TransactionPrice: usd(150000),
	}
	rates := fiscal.DefaultRateTable()

	first, err := calc.Escritura(in, rates)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := calc.Escritura(in, rates)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
