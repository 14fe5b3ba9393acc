package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/spf13/cobra"
)

// forecastRow is the JSON shape of one day estimate.
type forecastRow struct {
	Date             string  `json:"date"`
	ProjectID        string  `json:"projectId"`
	PhaseID          string  `json:"phaseId,omitempty"`
	Hours            float64 `json:"hours"`
	Source           string  `json:"source"`
	IsPlannedEvent   bool    `json:"isPlannedEvent,omitempty"`
	IsCompletedEvent bool    `json:"isCompletedEvent,omitempty"`
}

func newForecastCmd(app *App) *cobra.Command {
	var from, to string
	var asJSON, weekly bool

	cmd := &cobra.Command{
		Use:   "forecast [PROJECT]",
		Short: "Compute day-by-day hour estimates for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var input string
			if len(args) > 0 {
				input = args[0]
			} else if app.IsInteractive != nil && app.IsInteractive() {
				form := wizardSelectProject(ctx, app, &input)
				if form == nil {
					return fmt.Errorf("no projects found")
				}
				if err := form.Run(); err != nil {
					return err
				}
			}
			projectID, err := resolveProjectID(ctx, app, input)
			if err != nil {
				return err
			}

			var fromDate, toDate time.Time
			if from != "" {
				if fromDate, err = time.Parse(domain.DateLayout, from); err != nil {
					return fmt.Errorf("invalid --from date %q: %w", from, err)
				}
			}
			if to != "" {
				if toDate, err = time.Parse(domain.DateLayout, to); err != nil {
					return fmt.Errorf("invalid --to date %q: %w", to, err)
				}
			}

			forecast, err := app.Forecast.ForecastProject(ctx, projectID, fromDate, toDate)
			if err != nil {
				return err
			}

			if asJSON {
				rows := make([]forecastRow, len(forecast.Estimates))
				for i, e := range forecast.Estimates {
					rows[i] = forecastRow{
						Date:             e.Date.Format(domain.DateLayout),
						ProjectID:        e.ProjectID,
						PhaseID:          e.PhaseID,
						Hours:            e.Hours,
						Source:           string(e.Source),
						IsPlannedEvent:   e.IsPlannedEvent,
						IsCompletedEvent: e.IsCompletedEvent,
					}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			if weekly {
				fmt.Printf("%s\n", formatter.FormatWeeklyTotals(forecast.Estimates))
				return nil
			}

			names := make(map[string]string, len(forecast.Phases))
			for _, ph := range forecast.Phases {
				names[ph.ID] = ph.Name
			}
			fmt.Printf("%s\n", formatter.FormatForecast(formatter.ForecastData{
				Project:    forecast.Project,
				PhaseNames: names,
				Estimates:  forecast.Estimates,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit estimates as JSON")
	cmd.Flags().BoolVar(&weekly, "weekly", false, "Show per-week totals instead of days")

	return cmd
}
