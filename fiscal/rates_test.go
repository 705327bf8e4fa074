package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitar/fiscal-engine/fiscal"
)

func TestRateTable_StampTaxByJurisdiction(t *testing.T) {
	rates := fiscal.DefaultRateTable()

	caba, err := rates.StampTaxRate(fiscal.CABA)
	require.NoError(t, err)
	assert.True(t, caba.Value.Equal(decimal.RequireFromString("2.7")))

	// Split between parties: each side of a sale pays half
	assert.True(t, caba.Half().Value.Equal(decimal.RequireFromString("1.35")))

	pba, err := rates.StampTaxRate(fiscal.PBA)
	require.NoError(t, err)
	assert.True(t, pba.Value.Equal(decimal.NewFromInt(2)))
}

func TestRateTable_UnknownKeysFailLoudly(t *testing.T) {
	rates := fiscal.DefaultRateTable()

	_, err := rates.StampTaxRate(fiscal.Jurisdiction("cordoba"))
	require.Error(t, err)
	assert.True(t, fiscal.IsConfiguration(err))

	_, err = rates.CommissionFor(fiscal.OperationType("permuta"), "")
	require.Error(t, err)
	assert.True(t, fiscal.IsConfiguration(err))

	_, err = rates.EscrituraFeesFor(fiscal.Role("escribano"))
	require.Error(t, err)
	assert.True(t, fiscal.IsConfiguration(err))

	_, err = rates.CedularRate(fiscal.Jurisdiction("mendoza"))
	require.Error(t, err)
	assert.True(t, fiscal.IsConfiguration(err))
}

func TestRateTable_ResidentialCommissionsVaryByZone(t *testing.T) {
	rates := fiscal.DefaultRateTable()

	caba, err := rates.CommissionFor(fiscal.OperationResidentialRental, fiscal.CABA)
	require.NoError(t, err)
	assert.True(t, caba.Owner.Value.Equal(decimal.RequireFromString("4.15")))
	assert.True(t, caba.Client.IsZero())

	pba, err := rates.CommissionFor(fiscal.OperationResidentialRental, fiscal.PBA)
	require.NoError(t, err)
	assert.True(t, pba.Owner.Value.Equal(decimal.NewFromInt(3)))
	assert.True(t, pba.Client.Value.Equal(decimal.NewFromInt(5)))

	// Zone is ignored for non-residential operations
	sale, err := rates.CommissionFor(fiscal.OperationSale, fiscal.CABA)
	require.NoError(t, err)
	assert.True(t, sale.Owner.Value.Equal(decimal.NewFromInt(3)))
	assert.True(t, sale.Client.Value.Equal(decimal.NewFromInt(4)))
}

func TestRateTable_CedularKeepsPerJurisdictionShape(t *testing.T) {
	// Both rows currently coincide at 15%, but the table must stay keyed by
	// jurisdiction so a per-province divergence is a data change only.
	rates := fiscal.DefaultRateTable()

	for _, j := range []fiscal.Jurisdiction{fiscal.CABA, fiscal.PBA} {
		rate, err := rates.CedularRate(j)
		require.NoError(t, err)
		assert.True(t, rate.Value.Equal(decimal.NewFromInt(15)))
	}
}

func TestPercentage_ApplyTo(t *testing.T) {
	fee := fiscal.NewPercent(4.15).ApplyTo(fiscal.NewMoney(100000, fiscal.ARS))
	assert.True(t, fee.Value.Equal(decimal.NewFromInt(4150)))
	assert.Equal(t, fiscal.ARS, fee.Currency)
}

func TestExchangeRate_RoundTrip(t *testing.T) {
	fx := fiscal.NewExchangeRate(1000)
	usd := fiscal.NewMoney(150, fiscal.USD)

	ars := fx.ToARS(usd)
	assert.Equal(t, fiscal.ARS, ars.Currency)
	assert.True(t, ars.Value.Equal(decimal.NewFromInt(150000)))

	back := fx.ToUSD(ars)
	assert.Equal(t, fiscal.USD, back.Currency)
	assert.True(t, back.Value.Equal(decimal.NewFromInt(150)))
}

func TestFormat_ArgentineLocale(t *testing.T) {
	assert.Equal(t, "$ 1.234.567,89", fiscal.FormatARS(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "US$ 1.234,50", fiscal.FormatUSD(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$ 0,00", fiscal.FormatARS(decimal.Zero))
	assert.Equal(t, "$ -12.500,00", fiscal.FormatARS(decimal.RequireFromString("-12500")))
	assert.Equal(t, "US$ 999,99", fiscal.FormatUSD(decimal.RequireFromString("999.99")))
}
