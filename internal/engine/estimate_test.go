package engine

import (
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// january2026 is a one-month project used by the scenario tests. The
// evaluation day sits before the window so no clamping interferes.
func january2026(estimatedHours float64) Input {
	end := day(2026, 1, 31)
	return Input{
		Project: domain.Project{
			ID:             "p-1",
			StartDate:      day(2026, 1, 1),
			EndDate:        &end,
			EstimatedHours: estimatedHours,
		},
		Schedule: weekdaySchedule(),
		Now:      day(2025, 12, 15),
	}
}

func TestComputeDayEstimates_AutoEstimateFallback(t *testing.T) {
	// No phases: the project budget spreads evenly across the window's
	// weekdays (January 2026 has 22 of them).
	in := january2026(40)

	estimates := ComputeDayEstimates(in)

	require.Len(t, estimates, 22)
	for _, e := range estimates {
		assert.Equal(t, domain.SourceProjectAuto, e.Source)
		assert.Empty(t, e.PhaseID)
		assert.InDelta(t, 40.0/22.0, e.Hours, 1e-9)
	}
	assert.InDelta(t, 40, sumHours(estimates), 1e-9)
}

func TestComputeDayEstimates_HolidayRemovesOneWorkingDay(t *testing.T) {
	in := january2026(40)
	in.Holidays = []domain.Holiday{
		{Name: "Mid-month day off", StartDate: day(2026, 1, 15), EndDate: day(2026, 1, 15)},
	}

	estimates := ComputeDayEstimates(in)

	require.Len(t, estimates, 21)
	for _, e := range estimates {
		assert.NotEqual(t, day(2026, 1, 15), e.Date)
		assert.InDelta(t, 40.0/21.0, e.Hours, 1e-9)
	}
	assert.InDelta(t, 40, sumHours(estimates), 1e-9)
}

func TestComputeDayEstimates_NoFallbackForContinuousProject(t *testing.T) {
	in := january2026(40)
	in.Project.Continuous = true

	assert.Empty(t, ComputeDayEstimates(in))
}

func TestComputeDayEstimates_FallbackSubtractsCompletedEvents(t *testing.T) {
	in := january2026(40)
	in.Events = []domain.CalendarEvent{
		event("p-1", time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC), 4, true),
	}

	estimates := ComputeDayEstimates(in)

	var autoTotal float64
	var eventCount int
	for _, e := range estimates {
		switch e.Source {
		case domain.SourceProjectAuto:
			autoTotal += e.Hours
			assert.NotEqual(t, day(2026, 1, 6), e.Date)
		case domain.SourceEvent:
			eventCount++
			assert.Equal(t, day(2026, 1, 6), e.Date)
			assert.InDelta(t, 4, e.Hours, 1e-9)
			assert.True(t, e.IsCompletedEvent)
			assert.False(t, e.IsPlannedEvent)
		}
	}
	assert.Equal(t, 1, eventCount)
	assert.InDelta(t, 36, autoTotal, 1e-9)
}

func TestComputeDayEstimates_EventPrecedence(t *testing.T) {
	// A phase covers the event day, but only the event estimate appears
	// there and the phase loses the consumed hours.
	in := january2026(0)
	start := day(2026, 1, 5)
	in.Phases = []domain.Phase{{
		ID: "ph-1", ProjectID: "p-1", Name: "Draft",
		StartDate: &start, EndDate: day(2026, 1, 9), AllocationHours: 10,
	}}
	in.Events = []domain.CalendarEvent{
		event("p-1", time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC), 3, true),
	}

	estimates := ComputeDayEstimates(in)

	byDate := make(map[string][]domain.DayEstimate)
	for _, e := range estimates {
		byDate[domain.DateKey(e.Date)] = append(byDate[domain.DateKey(e.Date)], e)
	}

	require.Len(t, byDate["2026-01-07"], 1)
	assert.Equal(t, domain.SourceEvent, byDate["2026-01-07"][0].Source)

	var phaseTotal float64
	for _, e := range estimates {
		if e.Source == domain.SourcePhaseAllocation {
			phaseTotal += e.Hours
		}
	}
	assert.InDelta(t, 7, phaseTotal, 1e-9)
}

func TestComputeDayEstimates_EventDayAggregatesAllEvents(t *testing.T) {
	in := january2026(0)
	in.Events = []domain.CalendarEvent{
		event("p-1", time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC), 2, false),
		event("p-1", time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC), 3, true),
	}

	estimates := ComputeDayEstimates(in)

	require.Len(t, estimates, 1)
	est := estimates[0]
	assert.Equal(t, domain.SourceEvent, est.Source)
	assert.InDelta(t, 5, est.Hours, 1e-9)
	// Planned classification wins when a day has both kinds.
	assert.True(t, est.IsPlannedEvent)
	assert.False(t, est.IsCompletedEvent)
}

func TestComputeDayEstimates_MilestoneChainDerivesSegmentStarts(t *testing.T) {
	// Two deadline-only milestones: the first runs from the project
	// start, the second from the day after the first one's end.
	in := january2026(0)
	in.Phases = []domain.Phase{
		{ID: "ph-2", ProjectID: "p-1", Name: "Revise", EndDate: day(2026, 1, 23), AllocationHours: 10},
		{ID: "ph-1", ProjectID: "p-1", Name: "Draft", EndDate: day(2026, 1, 9), AllocationHours: 7},
	}

	estimates := ComputeDayEstimates(in)

	var draft, revise []domain.DayEstimate
	for _, e := range estimates {
		switch e.PhaseID {
		case "ph-1":
			draft = append(draft, e)
		case "ph-2":
			revise = append(revise, e)
		}
	}

	// Draft: Jan 1-9 has 7 weekdays.
	require.Len(t, draft, 7)
	assert.Equal(t, day(2026, 1, 1), draft[0].Date)
	assert.InDelta(t, 7, sumHours(draft), 1e-9)

	// Revise: Jan 10-23, first working day Jan 12.
	require.Len(t, revise, 10)
	assert.Equal(t, day(2026, 1, 12), revise[0].Date)
	assert.InDelta(t, 10, sumHours(revise), 1e-9)
}

func TestComputeDayEstimates_TrailingRemainingBudget(t *testing.T) {
	// One 10h phase ending Jan 9 inside a 30h project: the remaining 20h
	// spreads over the working days after the phase.
	in := january2026(30)
	start := day(2026, 1, 1)
	in.Phases = []domain.Phase{{
		ID: "ph-1", ProjectID: "p-1", Name: "Draft",
		StartDate: &start, EndDate: day(2026, 1, 9), AllocationHours: 10,
	}}

	estimates := ComputeDayEstimates(in)

	var phaseTotal, autoTotal float64
	for _, e := range estimates {
		switch e.Source {
		case domain.SourcePhaseAllocation:
			phaseTotal += e.Hours
		case domain.SourceProjectAuto:
			autoTotal += e.Hours
			assert.True(t, e.Date.After(day(2026, 1, 9)))
		}
	}
	assert.InDelta(t, 10, phaseTotal, 1e-9)
	assert.InDelta(t, 20, autoTotal, 1e-9)
}

func TestComputeDayEstimates_WeeklyRecurringScenario(t *testing.T) {
	// Weekly Monday phase, 10h, project starting Monday Jan 5: each
	// 7-day interval carries 10h over its working days.
	end := day(2026, 1, 25)
	in := Input{
		Project:  domain.Project{ID: "p-1", StartDate: day(2026, 1, 5), EndDate: &end},
		Schedule: weekdaySchedule(),
		Now:      day(2025, 12, 15),
		Phases: []domain.Phase{{
			ID: "ph-1", ProjectID: "p-1", Name: "Review", EndDate: end, AllocationHours: 10,
			Recurring: &domain.RecurringConfig{
				Type: domain.RecurWeekly, Interval: 1, Weekday: time.Monday,
			},
		}},
	}

	estimates := ComputeDayEstimates(in)

	// Bucket by the Monday that opens each interval.
	weekTotals := make(map[string]float64)
	for _, e := range estimates {
		require.Equal(t, domain.SourcePhaseAllocation, e.Source)
		monday := e.Date.AddDate(0, 0, -int((e.Date.Weekday()+6)%7))
		weekTotals[domain.DateKey(monday)] += e.Hours
	}
	require.Len(t, weekTotals, 3)
	for week, total := range weekTotals {
		assert.InDelta(t, 10, total, 1e-9, "week of %s", week)
	}
}

func TestComputeDayEstimates_Idempotent(t *testing.T) {
	in := january2026(40)
	start := day(2026, 1, 5)
	in.Phases = []domain.Phase{{
		ID: "ph-1", ProjectID: "p-1", Name: "Draft",
		StartDate: &start, EndDate: day(2026, 1, 16), AllocationHours: 12,
	}}
	in.Events = []domain.CalendarEvent{
		event("p-1", time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC), 2, true),
	}

	first := ComputeDayEstimates(in)
	second := ComputeDayEstimates(in)
	assert.Equal(t, first, second)
}

func TestComputeDayEstimatesCached_MatchesUncached(t *testing.T) {
	in := january2026(40)
	cache := NewCache()

	direct := ComputeDayEstimates(in)
	viaCache := ComputeDayEstimatesCached(in, cache)
	assert.Equal(t, direct, viaCache)

	// Second call hits the cache and still matches.
	again := ComputeDayEstimatesCached(in, cache)
	assert.Equal(t, direct, again)

	// Mutating a returned slice must not poison later reads.
	again[0].Hours = -1
	clean := ComputeDayEstimatesCached(in, cache)
	assert.Equal(t, direct, clean)

	// Nil cache is fully supported.
	assert.Equal(t, direct, ComputeDayEstimatesCached(in, nil))
}
