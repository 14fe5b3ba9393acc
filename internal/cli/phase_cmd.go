package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage project phases",
	}

	cmd.AddCommand(
		newPhaseAddCmd(app),
		newPhaseListCmd(app),
		newPhaseUpdateCmd(app),
		newPhaseRemoveCmd(app),
		newPhaseValidateCmd(app),
	)

	return cmd
}

// buildRecurring assembles a RecurringConfig from flag values. An empty
// recurType means no recurrence.
func buildRecurring(recurType string, interval int, weekday, pattern string, dayOfMonth, weekOfMonth int, monthlyWeekday string) (*domain.RecurringConfig, error) {
	if recurType == "" {
		return nil, nil
	}
	if !domain.ValidRecurrenceTypes[recurType] {
		return nil, fmt.Errorf("unknown recurrence type %q (want daily, weekly, or monthly)", recurType)
	}
	if interval < 1 {
		interval = 1
	}
	cfg := &domain.RecurringConfig{
		Type:     domain.RecurrenceType(recurType),
		Interval: interval,
	}
	switch cfg.Type {
	case domain.RecurDaily:
	case domain.RecurWeekly:
		if weekday == "" {
			return nil, fmt.Errorf("weekly recurrence needs --weekday")
		}
		d, err := parseWeekdayName(weekday)
		if err != nil {
			return nil, err
		}
		cfg.Weekday = time.Weekday(d)
	case domain.RecurMonthly:
		switch pattern {
		case "", string(domain.MonthlyByDate):
			if dayOfMonth == 0 {
				return nil, fmt.Errorf("monthly recurrence needs --day-of-month")
			}
			cfg.MonthlyPattern = domain.MonthlyByDate
			cfg.DayOfMonth = dayOfMonth
		case string(domain.MonthlyByWeekday):
			if monthlyWeekday == "" || weekOfMonth == 0 {
				return nil, fmt.Errorf("monthly-by-weekday recurrence needs --week-of-month and --monthly-weekday")
			}
			d, err := parseWeekdayName(monthlyWeekday)
			if err != nil {
				return nil, err
			}
			cfg.MonthlyPattern = domain.MonthlyByWeekday
			cfg.WeekOfMonth = weekOfMonth
			cfg.MonthlyWeekday = time.Weekday(d)
		default:
			return nil, fmt.Errorf("unknown monthly pattern %q (want date or dayOfWeek)", pattern)
		}
	default:
		return nil, fmt.Errorf("unknown recurrence type %q (want daily, weekly, or monthly)", recurType)
	}
	return cfg, nil
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var name, start, end, recurType, weekday, pattern, monthlyWeekday string
	var hours float64
	var interval, dayOfMonth, weekOfMonth int

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Add a phase to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			// No flags plus a terminal means the interactive form.
			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				return runPhaseWizard(ctx, app, projectID)
			}

			ph := &domain.Phase{
				ProjectID:       projectID,
				Name:            name,
				AllocationHours: hours,
			}
			if start != "" {
				startDate, err := time.Parse(domain.DateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				ph.StartDate = &startDate
			}
			if ph.EndDate, err = time.Parse(domain.DateLayout, end); err != nil {
				return fmt.Errorf("invalid due date %q: %w", end, err)
			}
			if ph.Recurring, err = buildRecurring(recurType, interval, weekday, pattern, dayOfMonth, weekOfMonth, monthlyWeekday); err != nil {
				return err
			}

			if err := app.Phases.Create(ctx, ph); err != nil {
				return err
			}

			fmt.Printf("Added phase %s (due %s)\n", ph.Name, ph.EndDate.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Phase name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, defaults to previous phase end)")
	cmd.Flags().StringVar(&end, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Allocated hours")
	cmd.Flags().StringVar(&recurType, "recur", "", "Recurrence type (daily|weekly|monthly)")
	cmd.Flags().IntVar(&interval, "interval", 1, "Recurrence interval")
	cmd.Flags().StringVar(&weekday, "weekday", "", "Weekday for weekly recurrence (e.g. fri)")
	cmd.Flags().StringVar(&pattern, "monthly-pattern", "", "Monthly pattern (date|dayOfWeek)")
	cmd.Flags().IntVar(&dayOfMonth, "day-of-month", 0, "Day of month for monthly recurrence")
	cmd.Flags().IntVar(&weekOfMonth, "week-of-month", 0, "Week of month (1-4, -1 last, -2 second-last)")
	cmd.Flags().StringVar(&monthlyWeekday, "monthly-weekday", "", "Weekday for monthly-by-weekday recurrence")

	return cmd
}

// runPhaseWizard collects phase fields through huh forms and creates
// the phase.
func runPhaseWizard(ctx context.Context, app *App, projectID string) error {
	var v phaseWizardValues
	if err := wizardPhaseForm(&v).Run(); err != nil {
		return err
	}

	hours, err := strconv.ParseFloat(v.Hours, 64)
	if err != nil {
		return fmt.Errorf("invalid hours %q: %w", v.Hours, err)
	}

	ph := &domain.Phase{
		ProjectID:       projectID,
		Name:            v.Name,
		AllocationHours: hours,
	}
	if v.Start != "" {
		startDate, err := time.Parse(domain.DateLayout, v.Start)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", v.Start, err)
		}
		ph.StartDate = &startDate
	}
	if ph.EndDate, err = time.Parse(domain.DateLayout, v.End); err != nil {
		return fmt.Errorf("invalid due date %q: %w", v.End, err)
	}

	dayOfMonth := 0
	if v.DayOfMonth != "" {
		dayOfMonth, _ = strconv.Atoi(v.DayOfMonth)
	}
	if ph.Recurring, err = buildRecurring(v.Recurrence, 1, v.Weekday, "", dayOfMonth, 0, ""); err != nil {
		return err
	}

	if err := app.Phases.Create(ctx, ph); err != nil {
		return err
	}

	fmt.Printf("Added phase %s (due %s)\n", ph.Name, ph.EndDate.Format(domain.DateLayout))
	return nil
}

func newPhaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectInspect(p, phases))
			return nil
		},
	}
}

func newPhaseUpdateCmd(app *App) *cobra.Command {
	var name, start, end string
	var hours float64

	cmd := &cobra.Command{
		Use:   "update PHASE_ID",
		Short: "Update a phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ph, err := app.Phases.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			var hoursPtr *float64
			if cmd.Flags().Changed("hours") {
				hoursPtr = &hours
			}

			ph.Name = domain.CoalesceStr(name, ph.Name)
			ph.AllocationHours = domain.Float64FromPtrWithDefault(ph.AllocationHours, hoursPtr)

			if cmd.Flags().Changed("start") {
				if start == "" {
					ph.StartDate = nil
				} else {
					startDate, err := time.Parse(domain.DateLayout, start)
					if err != nil {
						return fmt.Errorf("invalid start date %q: %w", start, err)
					}
					ph.StartDate = &startDate
				}
			}
			if end != "" {
				if ph.EndDate, err = time.Parse(domain.DateLayout, end); err != nil {
					return fmt.Errorf("invalid due date %q: %w", end, err)
				}
			}

			if err := app.Phases.Update(ctx, ph); err != nil {
				return err
			}

			fmt.Printf("Updated phase %s\n", ph.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Phase name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&end, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Allocated hours")

	return cmd
}

func newPhaseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PHASE_ID",
		Short: "Remove a phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Phases.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed phase %s\n", args[0])
			return nil
		},
	}
}

func newPhaseValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate PROJECT",
		Short: "Check phase allocations against the project budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Phases.ValidateBudget(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatBudgetValidation(result))
			if !result.IsValid {
				// Non-zero exit so scripts can gate on budget health.
				return fmt.Errorf("budget validation failed")
			}
			return nil
		},
	}
}
