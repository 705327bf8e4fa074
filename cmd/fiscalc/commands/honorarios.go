package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
)

func honorariosCmd() *cobra.Command {
	var (
		operation string
		zone      string
		amount    string
		monthly   string
		months    int
	)

	cmd := &cobra.Command{
		Use:   "honorarios",
		Short: "Brokerage commission for each contracting party",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := calc.Honorarios(calc.HonorariosInput{
				Operation:     fiscal.OperationType(operation),
				Zone:          fiscal.Jurisdiction(zone),
				Amount:        fiscal.NormalizeMoney(amount, fiscal.ARS),
				MonthlyAmount: fiscal.NormalizeMoney(monthly, fiscal.ARS),
				Months:        months,
			}, rates)
			if err != nil {
				return err
			}

			fmt.Printf("Honorarios (%s)\n\n", r.Operation)
			fmt.Printf("  base: %s\n", fiscal.FormatMoney(r.BaseAmount))
			fmt.Printf("  %-12s %s\n", r.OwnerParty, fiscal.FormatMoney(r.OwnerFee))
			fmt.Printf("  %-12s %s\n", r.ClientParty, fiscal.FormatMoney(r.ClientFee))
			return nil
		},
	}

	cmd.Flags().StringVar(&operation, "operation", "venta", "venta, alquiler-residencial, alquiler-comercial or alquiler-temporario")
	cmd.Flags().StringVar(&zone, "zone", "", "caba or pba (residential rentals)")
	cmd.Flags().StringVar(&amount, "amount", "", "operation amount")
	cmd.Flags().StringVar(&monthly, "monthly", "", "monthly amount (temporary rentals)")
	cmd.Flags().IntVar(&months, "months", 0, "contract months (temporary rentals)")
	return cmd
}
