package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	cmd.AddCommand(
		newEventLogCmd(app),
		newEventListCmd(app),
		newEventCompleteCmd(app),
		newEventRemoveCmd(app),
	)

	return cmd
}

func newEventLogCmd(app *App) *cobra.Command {
	var title, date, startTime string
	var hours float64
	var completed bool

	cmd := &cobra.Command{
		Use:   "log PROJECT",
		Short: "Log a calendar event against a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			day, err := time.Parse(domain.DateLayout, date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}
			wallClock, err := time.Parse("15:04", startTime)
			if err != nil {
				return fmt.Errorf("invalid start time %q: %w", startTime, err)
			}
			start := day.Add(time.Duration(wallClock.Hour())*time.Hour + time.Duration(wallClock.Minute())*time.Minute)

			e := &domain.CalendarEvent{
				ProjectID: projectID,
				Title:     title,
				StartTime: start,
				EndTime:   start.Add(time.Duration(hours * float64(time.Hour))),
				Completed: completed,
			}
			if err := app.Events.Log(ctx, e); err != nil {
				return err
			}

			fmt.Printf("Logged event %s (%s, %s)\n",
				e.Title, e.StartTime.Format(domain.DateLayout), formatter.FormatHours(e.Hours()))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startTime, "at", "09:00", "Start time (HH:MM)")
	cmd.Flags().Float64Var(&hours, "hours", 1, "Event duration in hours")
	cmd.Flags().BoolVar(&completed, "done", false, "Mark the event as completed")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			events, err := app.Events.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No events logged.")
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					e.Title,
					e.StartTime.Format(domain.DateLayout),
					formatter.FormatHours(e.Hours()),
					formatter.CompletionPill(e.Completed),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "TITLE", "DATE", "HOURS", "STATUS"}, rows))
			return nil
		},
	}
}

func newEventCompleteCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete EVENT_ID",
		Short: "Mark an event as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Events.SetCompleted(context.Background(), args[0], !undo); err != nil {
				return err
			}
			if undo {
				fmt.Printf("Marked event %s as planned\n", args[0])
			} else {
				fmt.Printf("Marked event %s as completed\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Revert to planned")

	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove EVENT_ID",
		Short: "Remove an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Events.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed event %s\n", args[0])
			return nil
		},
	}
}
