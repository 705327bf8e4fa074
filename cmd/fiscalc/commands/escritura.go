package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
)

func escrituraCmd() *cobra.Command {
	var (
		role         string
		jurisdiction string
		fx           string
		writing      string
		transaction  string
		exempt       bool
	)

	cmd := &cobra.Command{
		Use:   "escritura",
		Short: "Closing-cost breakdown for a property transfer",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := calc.Escritura(calc.EscrituraInput{
				Role:             fiscal.Role(role),
				Jurisdiction:     fiscal.Jurisdiction(jurisdiction),
				ExchangeRate:     resolveFX(fx),
				WritingPrice:     fiscal.NormalizeMoney(writing, fiscal.USD),
				TransactionPrice: fiscal.NormalizeMoney(transaction, fiscal.USD),
				StampTaxExempt:   exempt,
			}, rates)
			if err != nil {
				return err
			}

			fmt.Printf("Escritura (%s, %s)\n\n", b.Role, b.Jurisdiction)
			for _, item := range b.Items {
				fmt.Printf("  %-28s %s\n", item.Label, fiscal.FormatMoney(item.Amount))
			}
			fmt.Printf("\n  %-28s %s\n", "total gastos", fiscal.FormatMoney(b.TotalCosts))
			fmt.Printf("  %-28s %s\n", "monto final", fiscal.FormatMoney(b.FinalAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "comprador", "comprador, vendedor or primera-escritura")
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", "caba", "caba or pba")
	cmd.Flags().StringVar(&fx, "fx", "", "ARS/USD rate (empty: configured fallback)")
	cmd.Flags().StringVar(&writing, "writing", "", "deed value, USD")
	cmd.Flags().StringVar(&transaction, "transaction", "", "agreed price, USD")
	cmd.Flags().BoolVar(&exempt, "exempt", false, "primary-residence stamp exemption (CABA)")
	return cmd
}
