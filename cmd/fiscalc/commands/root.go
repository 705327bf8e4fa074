/*
Package commands implements the fiscalc CLI.

fiscalc runs the same calculators the HTTP API serves, from the terminal:

  fiscalc escritura --role comprador --jurisdiction caba \
      --writing 100000 --transaction 150000 --fx 1000
  fiscalc honorarios --operation alquiler-residencial --zone caba --amount 100000
  fiscalc cedular --purchase 100000 --sale 140000 --jurisdiction caba --year 2020
  fiscalc ajustes --amount 100000 --percentage 5 --period anual
  fiscalc cac --amount 1000000 --start 2024-01-15 --months 12
  fiscalc plazos dias --start 2024-03-25 --end 2024-04-02
  fiscalc plazos vencimiento --start 2024-01-01 --days 10

Amount flags accept the same formatted strings the web forms produce;
normalization applies before any arithmetic.
*/
package commands

import (
	"github.com/spf13/cobra"

	"github.com/habitar/fiscal-engine/config"
	"github.com/habitar/fiscal-engine/fiscal"
	"github.com/habitar/fiscal-engine/indices"
)

var (
	configPath string

	rates      fiscal.RateTable
	holidays   fiscal.HolidaySet
	indexSrc   indices.IndexSource
	fallbackFX fiscal.ExchangeRate
)

func Execute() error {
	root := &cobra.Command{
		Use:   "fiscalc",
		Short: "Real-estate fiscal calculators for Argentina",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}
			rates = conf.RateTable()
			holidays, err = conf.HolidaySet()
			if err != nil {
				return err
			}
			indexSrc = conf.IndexSource()
			fallbackFX = conf.FallbackExchangeRate()
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration path")

	root.AddCommand(
		escrituraCmd(),
		honorariosCmd(),
		cedularCmd(),
		ajustesCmd(),
		cacCmd(),
		plazosCmd(),
	)
	return root.Execute()
}

// resolveFX normalizes a --fx flag, falling back to the configured rate.
func resolveFX(raw string) fiscal.ExchangeRate {
	if raw == "" {
		return fallbackFX
	}
	value := fiscal.NormalizeAmount(raw)
	if !value.IsPositive() {
		return fallbackFX
	}
	return fiscal.ExchangeRate{ARSPerUSD: value}
}
