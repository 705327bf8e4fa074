package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitar/fiscal-engine/fiscal"
	"github.com/habitar/fiscal-engine/indices"
)

func cacCmd() *cobra.Command {
	var (
		amount string
		start  string
		months int
	)

	cmd := &cobra.Command{
		Use:   "cac",
		Short: "Project an amount by the construction cost index",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid --start %q (use YYYY-MM-DD)", start)
			}

			p, err := indices.Project(indices.ProjectionInput{
				BaseAmount:     fiscal.NormalizeMoney(amount, fiscal.ARS),
				StartDate:      startDate,
				DurationMonths: months,
			}, indexSrc)
			if err != nil {
				return err
			}

			fmt.Printf("Proyección CAC desde %s\n\n", p.StartDate.Format("2006-01"))
			for _, e := range p.Entries {
				tag := ""
				if e.Estimated {
					tag = "  (estimado)"
				}
				fmt.Printf("  %s  índice %8s  %s%s\n",
					e.Date.Format("2006-01"), e.IndexValue.StringFixed(2), fiscal.FormatMoney(e.Amount), tag)
			}
			fmt.Printf("\n  monto final: %s\n", fiscal.FormatMoney(p.FinalAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "base amount, ARS")
	cmd.Flags().StringVar(&start, "start", "", "contract date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&months, "months", 12, "months to project")
	return cmd
}
