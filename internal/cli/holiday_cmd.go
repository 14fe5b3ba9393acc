package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage holiday ranges",
	}

	cmd.AddCommand(
		newHolidayAddCmd(app),
		newHolidayListCmd(app),
		newHolidayRemoveCmd(app),
	)

	return cmd
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a holiday range",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse(domain.DateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate := startDate
			if end != "" {
				if endDate, err = time.Parse(domain.DateLayout, end); err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
			}

			h := &domain.Holiday{
				Name:      name,
				StartDate: startDate,
				EndDate:   endDate,
			}
			if err := app.Holidays.Create(context.Background(), h); err != nil {
				return err
			}

			fmt.Printf("Added holiday %s (%s to %s)\n",
				h.Name, h.StartDate.Format(domain.DateLayout), h.EndDate.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Holiday name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, defaults to start)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays, err := app.Holidays.List(context.Background())
			if err != nil {
				return err
			}

			if len(holidays) == 0 {
				fmt.Println("No holidays configured.")
				return nil
			}

			rows := make([][]string, 0, len(holidays))
			for _, h := range holidays {
				rows = append(rows, []string{
					formatter.TruncID(h.ID),
					h.Name,
					h.StartDate.Format(domain.DateLayout),
					h.EndDate.Format(domain.DateLayout),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "NAME", "FROM", "TO"}, rows))
			return nil
		},
	}
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Holidays.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed holiday %s\n", args[0])
			return nil
		},
	}
}
