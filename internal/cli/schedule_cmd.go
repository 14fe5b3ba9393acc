package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the weekly work schedule",
	}

	cmd.AddCommand(
		newScheduleShowCmd(app),
		newScheduleSetCmd(app),
		newScheduleClearCmd(app),
	)

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := app.Schedule.Get(context.Background())
			if err != nil {
				return err
			}

			order := []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
				time.Friday, time.Saturday, time.Sunday,
			}
			rows := make([][]string, 0, len(order))
			for _, day := range order {
				slots := schedule[day]
				if len(slots) == 0 {
					rows = append(rows, []string{day.String(), formatter.Dim("off"), formatter.Dim("--")})
					continue
				}
				parts := make([]string, len(slots))
				for i, slot := range slots {
					parts[i] = slot.StartTime + "-" + slot.EndTime
				}
				rows = append(rows, []string{
					day.String(),
					strings.Join(parts, ", "),
					formatter.FormatHours(schedule.HoursOn(day)),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"DAY", "SLOTS", "HOURS"}, rows))
			return nil
		},
	}
}

// parseSlots turns "09:00-12:00,13:00-17:00" into work slots.
func parseSlots(spec string) ([]domain.WorkSlot, error) {
	if spec == "" {
		return nil, nil
	}
	var slots []domain.WorkSlot
	for _, part := range strings.Split(spec, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid slot %q, expected HH:MM-HH:MM", part)
		}
		slots = append(slots, domain.WorkSlot{StartTime: bounds[0], EndTime: bounds[1]})
	}
	return slots, nil
}

func newScheduleSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set DAY SLOTS",
		Short: "Set work slots for a weekday (e.g. set mon 09:00-12:00,13:00-17:00)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseWeekdayName(args[0])
			if err != nil {
				return err
			}
			slots, err := parseSlots(args[1])
			if err != nil {
				return err
			}
			if err := app.Schedule.SetDay(context.Background(), time.Weekday(d), slots); err != nil {
				return err
			}
			fmt.Printf("Set %s schedule (%d slot(s))\n", time.Weekday(d), len(slots))
			return nil
		},
	}
}

func newScheduleClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear DAY",
		Short: "Mark a weekday as non-working",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseWeekdayName(args[0])
			if err != nil {
				return err
			}
			if err := app.Schedule.SetDay(context.Background(), time.Weekday(d), nil); err != nil {
				return err
			}
			fmt.Printf("Cleared %s\n", time.Weekday(d))
			return nil
		},
	}
}
