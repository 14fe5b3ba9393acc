package cli

import (
	"github.com/alexanderramin/horizon/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Phases   service.PhaseService
	Holidays service.HolidayService
	Schedule service.ScheduleService
	Events   service.EventService
	Forecast service.ForecastService

	// IsInteractive reports whether stdin is attached to a terminal, so
	// commands can decide between flags and huh forms.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "horizon" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "horizon",
		Short: "Time allocation planner and day-by-day forecaster",
	}

	root.AddCommand(
		newProjectCmd(app),
		newPhaseCmd(app),
		newHolidayCmd(app),
		newScheduleCmd(app),
		newEventCmd(app),
		newForecastCmd(app),
	)

	return root
}
