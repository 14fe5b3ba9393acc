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

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

// parseAutoDays turns --auto-days values like "mon,wed,fri" into the
// weekday override map.
func parseAutoDays(spec string) (map[time.Weekday]bool, error) {
	if spec == "" {
		return nil, nil
	}
	days := make(map[time.Weekday]bool)
	for _, part := range strings.Split(spec, ",") {
		d, err := parseWeekdayName(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		days[time.Weekday(d)] = true
	}
	return days, nil
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, start, end, shortID, autoDays string
	var hours float64
	var continuous bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse(domain.DateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			p := &domain.Project{
				ShortID:        strings.ToUpper(shortID),
				Name:           name,
				StartDate:      startDate,
				Continuous:     continuous,
				EstimatedHours: hours,
			}

			if end != "" {
				endDate, err := time.Parse(domain.DateLayout, end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = &endDate
			}

			if p.AutoEstimateDays, err = parseAutoDays(autoDays); err != nil {
				return err
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. THE01)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated total hours")
	cmd.Flags().BoolVar(&continuous, "continuous", false, "Project has no end date")
	cmd.Flags().StringVar(&autoDays, "auto-days", "", "Weekday override for estimates (e.g. mon,wed,fri)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
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

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, start, end, shortID, autoDays string
	var hours float64
	var continuous bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
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

			var hoursPtr *float64
			if cmd.Flags().Changed("hours") {
				hoursPtr = &hours
			}
			var continuousPtr *bool
			if cmd.Flags().Changed("continuous") {
				continuousPtr = &continuous
			}

			p.ShortID = strings.ToUpper(domain.CoalesceStr(shortID, p.ShortID))
			p.Name = domain.CoalesceStr(name, p.Name)
			p.EstimatedHours = domain.Float64FromPtrWithDefault(p.EstimatedHours, hoursPtr)
			p.Continuous = domain.BoolFromPtrWithDefault(p.Continuous, continuousPtr)

			if start != "" {
				startDate, err := time.Parse(domain.DateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = startDate
			}
			if cmd.Flags().Changed("end") {
				if end == "" {
					p.EndDate = nil
				} else {
					endDate, err := time.Parse(domain.DateLayout, end)
					if err != nil {
						return fmt.Errorf("invalid end date %q: %w", end, err)
					}
					p.EndDate = &endDate
				}
			}
			if cmd.Flags().Changed("auto-days") {
				if p.AutoEstimateDays, err = parseAutoDays(autoDays); err != nil {
					return err
				}
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated total hours")
	cmd.Flags().BoolVar(&continuous, "continuous", false, "Project has no end date")
	cmd.Flags().StringVar(&autoDays, "auto-days", "", "Weekday override for estimates (empty to clear)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID, force); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the project still has phases")

	return cmd
}
