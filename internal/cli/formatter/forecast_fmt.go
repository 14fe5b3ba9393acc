package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/domain"
)

// ForecastData bundles everything the forecast view needs to render.
type ForecastData struct {
	Project    *domain.Project
	PhaseNames map[string]string
	Estimates  []domain.DayEstimate
}

// FormatForecast renders the day-by-day estimate table for one project,
// followed by a totals line.
func FormatForecast(data ForecastData) string {
	var b strings.Builder

	title := data.Project.Name
	if data.Project.ShortID != "" {
		title = fmt.Sprintf("%s [%s]", data.Project.Name, data.Project.ShortID)
	}
	b.WriteString(Header("Forecast: " + title))
	b.WriteString("\n\n")

	if len(data.Estimates) == 0 {
		b.WriteString(Dim("No estimated days in this window."))
		return b.String()
	}

	headers := []string{"DATE", "DAY", "HOURS", "SOURCE", "PHASE"}
	rows := make([][]string, 0, len(data.Estimates))
	var total float64
	for _, e := range data.Estimates {
		total += e.Hours
		rows = append(rows, []string{
			e.Date.Format(domain.DateLayout),
			e.Date.Weekday().String()[:3],
			SourceColor(e.Source).Render(FormatHours(e.Hours)),
			estimateBadge(e),
			phaseLabel(e, data.PhaseNames),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s across %d day(s)",
		Bold("Total:"), FormatHours(total), len(data.Estimates)))
	return b.String()
}

func estimateBadge(e domain.DayEstimate) string {
	if e.Source == domain.SourceEvent {
		if e.IsCompletedEvent {
			return StyleBlue.Render("◆ event") + " " + StyleGreen.Render("✔")
		}
		return StyleBlue.Render("◆ event")
	}
	return SourceBadge(e.Source)
}

func phaseLabel(e domain.DayEstimate, names map[string]string) string {
	if e.PhaseID == "" {
		return Dim("--")
	}
	if name, ok := names[e.PhaseID]; ok {
		return name
	}
	return TruncID(e.PhaseID)
}

// FormatWeeklyTotals renders per-week hour totals, bucketed by the
// Monday starting each week.
func FormatWeeklyTotals(estimates []domain.DayEstimate) string {
	if len(estimates) == 0 {
		return Dim("No estimated days.")
	}

	type week struct {
		monday string
		hours  float64
	}
	totals := make(map[string]float64)
	var order []string
	for _, e := range estimates {
		monday := e.Date.AddDate(0, 0, -int((e.Date.Weekday()+6)%7))
		key := monday.Format(domain.DateLayout)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += e.Hours
	}

	weeks := make([]week, 0, len(order))
	for _, key := range order {
		weeks = append(weeks, week{monday: key, hours: totals[key]})
	}

	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		rows = append(rows, []string{"Week of " + w.monday, FormatHours(w.hours)})
	}
	return RenderTable([]string{"WEEK", "HOURS"}, rows)
}
