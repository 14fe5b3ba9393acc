package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestFormatProjectList(t *testing.T) {
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	projects := []*domain.Project{
		{
			ShortID: "THE01", Name: "Master Thesis",
			StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   &end, EstimatedHours: 120,
		},
		{
			ShortID: "GTD01", Name: "Inbox Zero",
			StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Continuous: true,
		},
	}

	out := stripANSI(FormatProjectList(projects))
	assert.Contains(t, out, "THE01")
	assert.Contains(t, out, "2026-06-30")
	assert.Contains(t, out, "120h")
	assert.Contains(t, out, "continuous")
}

func TestFormatProjectInspect_PhaseTable(t *testing.T) {
	p := sampleProject()
	phases := []*domain.Phase{
		{
			Name:    "Draft",
			EndDate: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), AllocationHours: 40,
		},
		{
			Name:    "Weekly review",
			EndDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), AllocationHours: 2,
			Recurring: &domain.RecurringConfig{
				Type: domain.RecurWeekly, Interval: 1, Weekday: time.Friday,
			},
		},
	}

	out := stripANSI(FormatProjectInspect(p, phases))
	assert.Contains(t, out, "MASTER THESIS")
	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, "weekly on Fri")
	assert.Contains(t, out, "2026-02-15")
}

func TestRecurrenceLabel(t *testing.T) {
	tests := []struct {
		name string
		cfg  *domain.RecurringConfig
		want string
	}{
		{"none", nil, "--"},
		{"daily", &domain.RecurringConfig{Type: domain.RecurDaily, Interval: 1}, "daily"},
		{"every 3 days", &domain.RecurringConfig{Type: domain.RecurDaily, Interval: 3}, "every 3 days"},
		{"biweekly", &domain.RecurringConfig{Type: domain.RecurWeekly, Interval: 2, Weekday: time.Monday}, "every 2 weeks on Mon"},
		{"monthly by date", &domain.RecurringConfig{
			Type: domain.RecurMonthly, Interval: 1,
			MonthlyPattern: domain.MonthlyByDate, DayOfMonth: 15,
		}, "monthly on day 15"},
		{"last friday", &domain.RecurringConfig{
			Type: domain.RecurMonthly, Interval: 1,
			MonthlyPattern: domain.MonthlyByWeekday, WeekOfMonth: -1, MonthlyWeekday: time.Friday,
		}, "monthly, last Fri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(recurrenceLabel(tt.cfg)))
		})
	}
}

func TestFormatBudgetValidation(t *testing.T) {
	over := engine.BudgetValidation{
		IsValid:             false,
		TotalAllocatedHours: 60,
		OverageHours:        20,
		UtilizationPct:      150,
		Errors:              []string{"phases exceed project budget by 20.0h"},
	}
	out := stripANSI(FormatBudgetValidation(over))
	assert.Contains(t, out, "Budget exceeded")
	assert.Contains(t, out, "error:")

	ok := engine.BudgetValidation{
		IsValid:             true,
		TotalAllocatedHours: 30,
		RemainingHours:      10,
		UtilizationPct:      75,
		Warnings:            []string{"one phase dominates the budget"},
	}
	out = stripANSI(FormatBudgetValidation(ok))
	assert.Contains(t, out, "Budget OK")
	assert.Contains(t, out, "75% of budget")
	assert.Contains(t, out, "warning:")
}
