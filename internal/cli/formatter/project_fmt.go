package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/engine"
)

// FormatProjectList renders projects as an aligned table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "START", "END", "BUDGET"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		end := Dim("--")
		if p.Continuous {
			end = StylePurple.Render("continuous")
		} else if p.EndDate != nil {
			end = p.EndDate.Format(domain.DateLayout)
		}
		rows = append(rows, []string{
			Bold(p.DisplayID()),
			p.Name,
			p.StartDate.Format(domain.DateLayout),
			end,
			FormatHours(p.EstimatedHours),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectInspect renders the detail view for one project and its
// phases.
func FormatProjectInspect(p *domain.Project, phases []*domain.Phase) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n", Bold(p.DisplayID()), Dim(p.ID), budgetLine(p)))
	b.WriteString(fmt.Sprintf("%s %s", Dim("Starts"), p.StartDate.Format(domain.DateLayout)))
	if p.Continuous {
		b.WriteString(Dim("  ·  ") + StylePurple.Render("continuous"))
	} else if p.EndDate != nil {
		b.WriteString(fmt.Sprintf("%s %s", Dim("  ·  Ends"), p.EndDate.Format(domain.DateLayout)))
	}
	b.WriteString("\n")
	if len(p.AutoEstimateDays) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Auto-estimate days:"), WeekdayNames(p.AutoEstimateDays)))
	}

	if len(phases) == 0 {
		b.WriteString("\n" + Dim("No phases."))
		return b.String()
	}

	b.WriteString("\n")
	headers := []string{"PHASE", "DUE", "ALLOCATION", "RECURS"}
	rows := make([][]string, 0, len(phases))
	for _, ph := range phases {
		rows = append(rows, []string{
			ph.Name,
			ph.EndDate.Format(domain.DateLayout),
			FormatHours(ph.AllocationHours),
			recurrenceLabel(ph.Recurring),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func budgetLine(p *domain.Project) string {
	if p.EstimatedHours <= 0 {
		return Dim("no budget")
	}
	return fmt.Sprintf("%s %s", Dim("Budget:"), FormatHours(p.EstimatedHours))
}

func recurrenceLabel(cfg *domain.RecurringConfig) string {
	if cfg == nil {
		return Dim("--")
	}
	switch cfg.Type {
	case domain.RecurDaily:
		if cfg.Interval > 1 {
			return fmt.Sprintf("every %d days", cfg.Interval)
		}
		return "daily"
	case domain.RecurWeekly:
		day := cfg.Weekday.String()[:3]
		if cfg.Interval > 1 {
			return fmt.Sprintf("every %d weeks on %s", cfg.Interval, day)
		}
		return "weekly on " + day
	case domain.RecurMonthly:
		if cfg.MonthlyPattern == domain.MonthlyByWeekday {
			return fmt.Sprintf("monthly, %s %s", ordinalWeek(cfg.WeekOfMonth), cfg.MonthlyWeekday.String()[:3])
		}
		return fmt.Sprintf("monthly on day %d", cfg.DayOfMonth)
	default:
		return string(cfg.Type)
	}
}

func ordinalWeek(k int) string {
	switch k {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "4th"
	case -1:
		return "last"
	case -2:
		return "2nd-last"
	default:
		return fmt.Sprintf("%dth", k)
	}
}

// FormatBudgetValidation renders the budget analysis for a project.
func FormatBudgetValidation(result engine.BudgetValidation) string {
	var b strings.Builder

	if result.IsValid {
		b.WriteString(StyleGreen.Render("✔ Budget OK"))
	} else {
		b.WriteString(StyleRed.Render("✖ Budget exceeded"))
	}
	b.WriteString(fmt.Sprintf("  %s allocated", FormatHours(result.TotalAllocatedHours)))
	if result.OverageHours > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  (+%s over)", FormatHours(result.OverageHours))))
	} else {
		b.WriteString(Dim(fmt.Sprintf("  (%s remaining)", FormatHours(result.RemainingHours))))
	}
	b.WriteString(Dim(fmt.Sprintf("  ·  %.0f%% of budget", result.UtilizationPct)))

	for _, msg := range result.Errors {
		b.WriteString("\n" + StyleRed.Render("error: ") + msg)
	}
	for _, msg := range result.Warnings {
		b.WriteString("\n" + StyleYellow.Render("warning: ") + msg)
	}
	for _, msg := range result.Recommendations {
		b.WriteString("\n" + Dim("hint: "+msg))
	}
	return b.String()
}
