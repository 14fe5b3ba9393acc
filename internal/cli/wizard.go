package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// horizonHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func horizonHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectProject creates a huh form to select a project from the list.
func wizardSelectProject(ctx context.Context, app *App, result *string) *huh.Form {
	projects, err := app.Projects.List(ctx)
	if err != nil || len(projects) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		label := p.Name
		if p.ShortID != "" {
			label = fmt.Sprintf("%s - %s", p.ShortID, p.Name)
		}
		options = append(options, huh.NewOption(label, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Project?").
				Options(options...).
				Value(result),
		),
	).WithTheme(horizonHuhTheme()).WithShowHelp(false)
}

// phaseWizardValues collects the fields of the interactive phase form.
type phaseWizardValues struct {
	Name       string
	Start      string
	End        string
	Hours      string
	Recurrence string
	Weekday    string
	DayOfMonth string
}

// wizardPhaseForm creates the multi-group huh form for adding a phase
// interactively.
func wizardPhaseForm(v *phaseWizardValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Phase Name").
				Placeholder("First draft").
				Value(&v.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD, blank to follow previous phase)").
				Placeholder("2026-01-01").
				Value(&v.Start).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Placeholder("2026-01-31").
				Value(&v.End).
				Validate(validateRequiredDate),
			huh.NewInput().
				Title("Allocated Hours").
				Placeholder("20").
				Value(&v.Hours).
				Validate(validatePositiveFloat),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recurrence").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly (by date)", "monthly"),
				).
				Value(&v.Recurrence),
			huh.NewInput().
				Title("Weekday (weekly only, e.g. fri)").
				Placeholder("fri").
				Value(&v.Weekday).
				Validate(validateOptionalWeekday),
			huh.NewInput().
				Title("Day of Month (monthly only)").
				Placeholder("15").
				Value(&v.DayOfMonth).
				Validate(validateOptionalInt),
		),
	).WithTheme(horizonHuhTheme()).WithShowHelp(false)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateRequiredDate accepts only a YYYY-MM-DD date string.
func validateRequiredDate(s string) error {
	if s == "" {
		return fmt.Errorf("date is required")
	}
	return validateOptionalDate(s)
}

// validatePositiveFloat accepts a positive number.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number of hours")
	}
	return nil
}

// validateOptionalInt accepts empty or a positive integer.
func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalWeekday accepts empty or a weekday name.
func validateOptionalWeekday(s string) error {
	if s == "" {
		return nil
	}
	_, err := parseWeekdayName(s)
	return err
}
