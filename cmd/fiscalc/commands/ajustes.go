package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
)

func ajustesCmd() *cobra.Command {
	var (
		amount     string
		percentage string
		period     string
	)

	cmd := &cobra.Command{
		Use:   "ajustes",
		Short: "Rent adjustment over one period",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := calc.RentAdjustment(calc.AdjustmentInput{
				CurrentAmount: fiscal.NormalizeMoney(amount, fiscal.ARS),
				Percentage:    fiscal.NewPercentFromDecimal(fiscal.NormalizeAmount(percentage)),
				Period:        calc.AdjustmentPeriod(period),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Ajuste de alquiler (%s, %d meses)\n\n", period, r.PeriodMultiplier)
			fmt.Printf("  actual:          %s\n", fiscal.FormatMoney(r.CurrentAmount))
			fmt.Printf("  aumento mensual: %s\n", fiscal.FormatMoney(r.Increase))
			fmt.Printf("  aumento total:   %s\n", fiscal.FormatMoney(r.TotalIncrease))
			fmt.Printf("  nuevo monto:     %s\n", fiscal.FormatMoney(r.TotalNewAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "current monthly rent, ARS")
	cmd.Flags().StringVar(&percentage, "percentage", "", "monthly reference percentage")
	cmd.Flags().StringVar(&period, "period", "anual", "mensual, trimestral, semestral or anual")
	return cmd
}
