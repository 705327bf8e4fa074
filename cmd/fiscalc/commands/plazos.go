package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitar/fiscal-engine/fiscal"
)

func plazosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plazos",
		Short: "Business-day calendar calculations",
	}
	cmd.AddCommand(diasCmd(), vencimientoCmd())
	return cmd
}

func diasCmd() *cobra.Command {
	var startFlag, endFlag string

	cmd := &cobra.Command{
		Use:   "dias",
		Short: "Calendar and business days between two dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", startFlag)
			if err != nil {
				return fmt.Errorf("invalid --start %q (use YYYY-MM-DD)", startFlag)
			}
			end, err := time.Parse("2006-01-02", endFlag)
			if err != nil {
				return fmt.Errorf("invalid --end %q (use YYYY-MM-DD)", endFlag)
			}

			r, err := fiscal.DaysBetween(start, end, holidays)
			if err != nil {
				return err
			}

			fmt.Printf("Del %s al %s\n\n", startFlag, endFlag)
			fmt.Printf("  días corridos: %d\n", r.TotalCalendarDays)
			fmt.Printf("  días hábiles:  %d\n", r.BusinessDays)
			fmt.Printf("  fin de semana: %d\n", r.Weekends)
			fmt.Printf("  feriados:      %d\n", r.Holidays)
			for _, d := range r.NonBusinessDays {
				if d.Kind == "holiday" {
					fmt.Printf("    %s  %s\n", d.Date.Format("2006-01-02"), d.Reason)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}

func vencimientoCmd() *cobra.Command {
	var (
		startFlag string
		days      int
	)

	cmd := &cobra.Command{
		Use:   "vencimiento",
		Short: "Due date after N business days",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", startFlag)
			if err != nil {
				return fmt.Errorf("invalid --start %q (use YYYY-MM-DD)", startFlag)
			}

			r, err := fiscal.DueDate(start, days, holidays)
			if err != nil {
				return err
			}

			fmt.Printf("%d días hábiles desde %s\n\n", days, startFlag)
			fmt.Printf("  vencimiento:   %s\n", r.DueDate.Format("2006-01-02"))
			fmt.Printf("  días corridos: %d\n", r.TotalCalendarDays)
			for _, h := range r.SkippedHolidays {
				fmt.Printf("    feriado %s  %s\n", h.Date.Format("2006-01-02"), h.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 0, "business days to count")
	return cmd
}
