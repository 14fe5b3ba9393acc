package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before
// content assertions, so tests hold in any terminal profile.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func sampleProject() *domain.Project {
	return &domain.Project{
		ID:             "11111111-2222-3333-4444-555555555555",
		ShortID:        "THE01",
		Name:           "Master Thesis",
		StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EstimatedHours: 120,
	}
}

func TestFormatForecast_TableAndTotal(t *testing.T) {
	estimates := []domain.DayEstimate{
		{
			Date:      time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			ProjectID: "p1", PhaseID: "ph1",
			Hours: 2.5, Source: domain.SourcePhaseAllocation,
		},
		{
			Date:      time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
			ProjectID: "p1",
			Hours:     1.5, Source: domain.SourceEvent, IsCompletedEvent: true,
		},
	}

	out := stripANSI(FormatForecast(ForecastData{
		Project:    sampleProject(),
		PhaseNames: map[string]string{"ph1": "Draft"},
		Estimates:  estimates,
	}))

	assert.Contains(t, out, "FORECAST: MASTER THESIS [THE01]")
	assert.Contains(t, out, "2026-01-05")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "2h 30m")
	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, "event")
	assert.Contains(t, out, "Total: 4h across 2 day(s)")
}

func TestFormatForecast_Empty(t *testing.T) {
	out := stripANSI(FormatForecast(ForecastData{Project: sampleProject()}))
	assert.Contains(t, out, "No estimated days")
}

func TestFormatWeeklyTotals_BucketsByMonday(t *testing.T) {
	estimates := []domain.DayEstimate{
		{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Hours: 2},  // Mon
		{Date: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC), Hours: 3},  // Fri, same week
		{Date: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), Hours: 4}, // next Mon
	}

	out := stripANSI(FormatWeeklyTotals(estimates))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + separator + two week rows
	assert.Len(t, lines, 4)
	assert.Contains(t, out, "Week of 2026-01-05")
	assert.Contains(t, out, "5h")
	assert.Contains(t, out, "Week of 2026-01-12")
	assert.Contains(t, out, "4h")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "LONG HEADER"},
		[][]string{
			{"x", "y"},
			{"wider cell", "z"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	// Second column starts at the same offset on every row.
	idx := strings.Index(lines[0], "LONG HEADER")
	assert.Equal(t, idx, strings.Index(lines[2], "y"))
	assert.Equal(t, idx, strings.Index(lines[3], "z"))
}
