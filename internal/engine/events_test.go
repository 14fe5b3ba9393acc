package engine

import (
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(projectID string, start time.Time, hours float64, completed bool) domain.CalendarEvent {
	return domain.CalendarEvent{
		ProjectID: projectID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours * float64(time.Hour))),
		Completed: completed,
	}
}

func TestClassifyEvents_SplitsPlannedAndCompleted(t *testing.T) {
	events := []domain.CalendarEvent{
		event("p-1", time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC), 2, false),
		event("p-1", time.Date(2026, 1, 12, 14, 0, 0, 0, time.UTC), 3, true),
		event("p-1", time.Date(2026, 1, 13, 9, 0, 0, 0, time.UTC), 1, true),
	}

	idx := ClassifyEvents("p-1", events)

	hours, ok := idx.Day(day(2026, 1, 12))
	require.True(t, ok)
	assert.InDelta(t, 2, hours.Planned, 1e-9)
	assert.InDelta(t, 3, hours.Completed, 1e-9)
	assert.InDelta(t, 5, hours.Total(), 1e-9)

	hours, ok = idx.Day(day(2026, 1, 13))
	require.True(t, ok)
	assert.InDelta(t, 0, hours.Planned, 1e-9)
	assert.InDelta(t, 1, hours.Completed, 1e-9)
}

func TestClassifyEvents_IgnoresOtherProjects(t *testing.T) {
	events := []domain.CalendarEvent{
		event("p-2", time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC), 2, false),
	}
	idx := ClassifyEvents("p-1", events)
	assert.False(t, idx.HasEvent(day(2026, 1, 12)))
	assert.Empty(t, idx.Dates())
}

func TestEventIndex_DatesSorted(t *testing.T) {
	events := []domain.CalendarEvent{
		event("p-1", time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC), 1, false),
		event("p-1", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), 1, false),
		event("p-1", time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC), 1, false),
	}
	idx := ClassifyEvents("p-1", events)
	dates := idx.Dates()
	require.Len(t, dates, 3)
	assert.Equal(t, day(2026, 1, 5), dates[0])
	assert.Equal(t, day(2026, 1, 12), dates[1])
	assert.Equal(t, day(2026, 1, 20), dates[2])
}

func TestEventIndex_HoursBetween_CountsBothKinds(t *testing.T) {
	events := []domain.CalendarEvent{
		event("p-1", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), 2, false),
		event("p-1", time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC), 3, true),
		event("p-1", time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC), 4, true),
	}
	idx := ClassifyEvents("p-1", events)

	// Planned and completed both count as consumed time.
	assert.InDelta(t, 5, idx.HoursBetween(day(2026, 1, 5), day(2026, 1, 10)), 1e-9)
	// Completed-only view.
	assert.InDelta(t, 3, idx.CompletedBetween(day(2026, 1, 5), day(2026, 1, 10)), 1e-9)
	// Whole window.
	assert.InDelta(t, 9, idx.HoursBetween(day(2026, 1, 1), day(2026, 1, 31)), 1e-9)
}

func TestClassifyEvents_InvertedEventContributesNothing(t *testing.T) {
	ev := domain.CalendarEvent{
		ProjectID: "p-1",
		StartTime: time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC),
	}
	idx := ClassifyEvents("p-1", []domain.CalendarEvent{ev})
	hours, ok := idx.Day(day(2026, 1, 12))
	require.True(t, ok, "day is still blocked even with zero hours")
	assert.InDelta(t, 0, hours.Total(), 1e-9)
}
