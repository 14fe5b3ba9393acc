package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	events := NewSQLiteEventRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Thesis")
	require.NoError(t, projects.Create(ctx, p))

	ev := testutil.NewTestEvent(p.ID, p.StartDate, 2.5, false)
	require.NoError(t, events.Create(ctx, ev))

	got, err := events.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ProjectID)
	assert.InDelta(t, 2.5, got.Hours(), 1e-9)
	assert.False(t, got.Completed)
}

func TestEventRepo_SetCompleted(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	events := NewSQLiteEventRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Thesis")
	require.NoError(t, projects.Create(ctx, p))
	ev := testutil.NewTestEvent(p.ID, p.StartDate, 1, false)
	require.NoError(t, events.Create(ctx, ev))

	require.NoError(t, events.SetCompleted(ctx, ev.ID, true))

	got, err := events.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestEventRepo_ListByProjectOrderedByStart(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(database)
	events := NewSQLiteEventRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Thesis")
	other := testutil.NewTestProject("Novel")
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, projects.Create(ctx, other))

	require.NoError(t, events.Create(ctx, testutil.NewTestEvent(p.ID, p.StartDate.AddDate(0, 0, 3), 1, false)))
	require.NoError(t, events.Create(ctx, testutil.NewTestEvent(p.ID, p.StartDate, 1, true)))
	require.NoError(t, events.Create(ctx, testutil.NewTestEvent(other.ID, p.StartDate, 1, false)))

	list, err := events.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].StartTime.Before(list[1].StartTime))
}

func TestScheduleRepo_ReplaceDay(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	morning := domain.WorkSlot{StartTime: "09:00", EndTime: "12:00"}
	afternoon := domain.WorkSlot{StartTime: "13:00", EndTime: "17:00"}
	require.NoError(t, repo.ReplaceDay(ctx, time.Monday, []domain.WorkSlot{morning, afternoon}))

	schedule, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, schedule[time.Monday], 2)
	assert.InDelta(t, 7, schedule.HoursOn(time.Monday), 1e-9)

	// Replacing with a single slot drops the old ones.
	require.NoError(t, repo.ReplaceDay(ctx, time.Monday, []domain.WorkSlot{morning}))
	schedule, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, schedule[time.Monday], 1)

	// Clearing a day removes it from the map entirely.
	require.NoError(t, repo.ReplaceDay(ctx, time.Monday, nil))
	schedule, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.NotContains(t, schedule, time.Monday)
}

func TestHolidayRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteHolidayRepo(database)
	ctx := context.Background()

	h := &domain.Holiday{
		ID:        "hol-1",
		Name:      "Winter break",
		StartDate: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, h))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Winter break", list[0].Name)
	assert.True(t, list[0].Contains(time.Date(2026, 12, 28, 15, 0, 0, 0, time.UTC)))

	require.NoError(t, repo.Delete(ctx, h.ID))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
