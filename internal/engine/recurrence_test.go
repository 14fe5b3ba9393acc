package engine

import (
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyPhase(weekday time.Weekday, interval int) *domain.Phase {
	return &domain.Phase{
		ID:              "ph-1",
		ProjectID:       "p-1",
		EndDate:         day(2026, 1, 31),
		AllocationHours: 10,
		Recurring: &domain.RecurringConfig{
			Type:     domain.RecurWeekly,
			Interval: interval,
			Weekday:  weekday,
		},
	}
}

func boundedProject(start, end time.Time) *domain.Project {
	return &domain.Project{ID: "p-1", StartDate: start, EndDate: &end}
}

func TestExpandAnchors_WeeklyOnProjectStart_NoSynthesizedAnchor(t *testing.T) {
	// Project starts on a Monday; weekly-Monday rule fires on day one,
	// so the first occurrence is anchor zero.
	project := boundedProject(day(2026, 1, 5), day(2026, 1, 31))
	anchors := ExpandAnchors(weeklyPhase(time.Monday, 1), project, day(2025, 12, 1))

	require.Equal(t, []time.Time{
		day(2026, 1, 5), day(2026, 1, 12), day(2026, 1, 19), day(2026, 1, 26),
	}, anchors)
}

func TestExpandAnchors_WeeklyMidWeekStart_SynthesizesPreviousAnchor(t *testing.T) {
	// Project starts Thursday Jan 1; first Monday occurrence is Jan 5,
	// so a synthetic anchor lands one interval earlier on Dec 29.
	project := boundedProject(day(2026, 1, 1), day(2026, 1, 31))
	anchors := ExpandAnchors(weeklyPhase(time.Monday, 1), project, day(2025, 12, 1))

	require.NotEmpty(t, anchors)
	assert.Equal(t, day(2025, 12, 29), anchors[0])
	assert.Equal(t, day(2026, 1, 5), anchors[1])
}

func TestExpandAnchors_DailyInterval(t *testing.T) {
	phase := &domain.Phase{
		ID: "ph-1", ProjectID: "p-1", EndDate: day(2026, 1, 31), AllocationHours: 2,
		Recurring: &domain.RecurringConfig{Type: domain.RecurDaily, Interval: 3},
	}
	project := boundedProject(day(2026, 1, 1), day(2026, 1, 10))
	anchors := ExpandAnchors(phase, project, day(2025, 12, 1))

	require.Equal(t, []time.Time{
		day(2026, 1, 1), day(2026, 1, 4), day(2026, 1, 7), day(2026, 1, 10),
	}, anchors)
}

func TestExpandAnchors_MonthlyByDate(t *testing.T) {
	phase := &domain.Phase{
		ID: "ph-1", ProjectID: "p-1", EndDate: day(2026, 6, 30), AllocationHours: 8,
		Recurring: &domain.RecurringConfig{
			Type: domain.RecurMonthly, Interval: 1,
			MonthlyPattern: domain.MonthlyByDate, DayOfMonth: 15,
		},
	}
	project := boundedProject(day(2026, 1, 1), day(2026, 3, 31))
	anchors := ExpandAnchors(phase, project, day(2025, 12, 1))

	require.Len(t, anchors, 4)
	// First generated occurrence is Jan 15, so Dec 15 is synthesized.
	assert.Equal(t, day(2025, 12, 15), anchors[0])
	assert.Equal(t, day(2026, 1, 15), anchors[1])
	assert.Equal(t, day(2026, 2, 15), anchors[2])
	assert.Equal(t, day(2026, 3, 15), anchors[3])
}

func TestExpandAnchors_MonthlyLastWeekday(t *testing.T) {
	phase := &domain.Phase{
		ID: "ph-1", ProjectID: "p-1", EndDate: day(2026, 3, 31), AllocationHours: 8,
		Recurring: &domain.RecurringConfig{
			Type: domain.RecurMonthly, Interval: 1,
			MonthlyPattern: domain.MonthlyByWeekday,
			MonthlyWeekday: time.Friday, WeekOfMonth: -1,
		},
	}
	project := boundedProject(day(2026, 1, 1), day(2026, 2, 28))
	anchors := ExpandAnchors(phase, project, day(2025, 12, 1))

	require.NotEmpty(t, anchors)
	// Last Fridays: Jan 30 and Feb 27 2026; Dec 26 2025 synthesized.
	assert.Contains(t, anchors, day(2026, 1, 30))
	assert.Contains(t, anchors, day(2026, 2, 27))
	assert.Equal(t, day(2025, 12, 26), anchors[0])
}

func TestExpandAnchors_MonthlySecondToLastWeekday(t *testing.T) {
	phase := &domain.Phase{
		ID: "ph-1", ProjectID: "p-1", EndDate: day(2026, 2, 28), AllocationHours: 8,
		Recurring: &domain.RecurringConfig{
			Type: domain.RecurMonthly, Interval: 1,
			MonthlyPattern: domain.MonthlyByWeekday,
			MonthlyWeekday: time.Friday, WeekOfMonth: -2,
		},
	}
	project := boundedProject(day(2026, 1, 1), day(2026, 2, 28))
	anchors := ExpandAnchors(phase, project, day(2025, 12, 1))

	require.NotEmpty(t, anchors)
	// Second-to-last Fridays: Jan 23 and Feb 20 2026; Dec 19 2025 synthesized.
	assert.Contains(t, anchors, day(2026, 1, 23))
	assert.Contains(t, anchors, day(2026, 2, 20))
	assert.Equal(t, day(2025, 12, 19), anchors[0])
}

func TestAnchorIntervals_WeeklySpansAreSevenDays(t *testing.T) {
	anchors := []time.Time{
		day(2026, 1, 5), day(2026, 1, 12), day(2026, 1, 19), day(2026, 1, 26),
	}
	intervals := AnchorIntervals(anchors, day(2026, 1, 5), day(2026, 1, 31))

	require.Len(t, intervals, 4)
	for i, iv := range intervals[:3] {
		assert.Equal(t, 6, int(iv.End.Sub(iv.Start).Hours()/24), "interval %d", i)
	}
	// Trailing interval is clamped to the window end.
	assert.Equal(t, day(2026, 1, 26), intervals[3].Start)
	assert.Equal(t, day(2026, 1, 31), intervals[3].End)
}

func TestAnchorIntervals_ClampsToWindow(t *testing.T) {
	anchors := []time.Time{day(2025, 12, 29), day(2026, 1, 5)}
	intervals := AnchorIntervals(anchors, day(2026, 1, 1), day(2026, 1, 31))

	require.Len(t, intervals, 2)
	// Synthesized anchor's interval starts at the window, not in December.
	assert.Equal(t, day(2026, 1, 1), intervals[0].Start)
	assert.Equal(t, day(2026, 1, 4), intervals[0].End)
}

func TestPreviousAnchor_MonthlyDateClampsShortMonths(t *testing.T) {
	cfg := &domain.RecurringConfig{
		Type: domain.RecurMonthly, Interval: 1,
		MonthlyPattern: domain.MonthlyByDate, DayOfMonth: 31,
	}
	// One month before Mar 31 is Feb 28 in a non-leap year.
	assert.Equal(t, day(2026, 2, 28), previousAnchor(cfg, day(2026, 3, 31)))
}

func TestNthWeekdayOfMonth(t *testing.T) {
	jan := day(2026, 1, 1)
	assert.Equal(t, day(2026, 1, 5), nthWeekdayOfMonth(jan, time.Monday, 1))
	assert.Equal(t, day(2026, 1, 26), nthWeekdayOfMonth(jan, time.Monday, -1))
	assert.Equal(t, day(2026, 1, 19), nthWeekdayOfMonth(jan, time.Monday, -2))
	assert.Equal(t, day(2026, 1, 30), nthWeekdayOfMonth(jan, time.Friday, -1))
}

func TestExpandAnchors_EmptyWhenWindowPrecedesRule(t *testing.T) {
	// Monthly on the 15th, but the project window is Jan 1-10.
	phase := &domain.Phase{
		ID: "ph-1", ProjectID: "p-1", EndDate: day(2026, 1, 10), AllocationHours: 8,
		Recurring: &domain.RecurringConfig{
			Type: domain.RecurMonthly, Interval: 1,
			MonthlyPattern: domain.MonthlyByDate, DayOfMonth: 15,
		},
	}
	project := boundedProject(day(2026, 1, 1), day(2026, 1, 10))
	assert.Empty(t, ExpandAnchors(phase, project, day(2025, 12, 1)))
}
