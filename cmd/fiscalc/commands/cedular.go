package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
)

func cedularCmd() *cobra.Command {
	var (
		purchase      string
		sale          string
		expenses      string
		jurisdiction  string
		year          int
		soleResidence bool
	)

	cmd := &cobra.Command{
		Use:   "cedular",
		Short: "Capital-gains tax on a property sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := calc.Cedular(calc.CedularInput{
				PurchasePrice:      fiscal.NormalizeMoney(purchase, fiscal.USD),
				SalePrice:          fiscal.NormalizeMoney(sale, fiscal.USD),
				DeductibleExpenses: fiscal.NormalizeMoney(expenses, fiscal.USD),
				Jurisdiction:       fiscal.Jurisdiction(jurisdiction),
				AcquisitionYear:    year,
				SoleResidence:      soleResidence,
			}, rates)
			if err != nil {
				return err
			}

			fmt.Printf("Impuesto cedular\n\n")
			fmt.Printf("  ganancia: %s\n", fiscal.FormatMoney(r.Gain))
			if !r.Applies {
				fmt.Printf("  no aplica (%s)\n", r.Reason)
				return nil
			}
			fmt.Printf("  impuesto: %s\n", fiscal.FormatMoney(*r.Tax))
			return nil
		},
	}

	cmd.Flags().StringVar(&purchase, "purchase", "", "purchase price")
	cmd.Flags().StringVar(&sale, "sale", "", "sale price")
	cmd.Flags().StringVar(&expenses, "expenses", "", "deductible expenses")
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", "caba", "caba or pba")
	cmd.Flags().IntVar(&year, "year", 0, "acquisition year")
	cmd.Flags().BoolVar(&soleResidence, "sole-residence", false, "property is the seller's sole residence")
	return cmd
}
