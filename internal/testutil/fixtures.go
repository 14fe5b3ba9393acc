package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/horizon/internal/domain"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithEndDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.EndDate = &d
	}
}

func WithContinuous() ProjectOption {
	return func(p *domain.Project) {
		p.Continuous = true
		p.EndDate = nil
	}
}

func WithEstimatedHours(h float64) ProjectOption {
	return func(p *domain.Project) {
		p.EstimatedHours = h
	}
}

func WithAutoEstimateDays(days map[time.Weekday]bool) ProjectOption {
	return func(p *domain.Project) {
		p.AutoEstimateDays = days
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestProject builds a project starting on the first of next month
// with a one-month window, so estimates are never clamped away by the
// no-past rule.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	start := domain.DayOf(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0))
	end := start.AddDate(0, 1, -1)
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		Name:      name,
		StartDate: start,
		EndDate:   &end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseStart(d time.Time) PhaseOption {
	return func(ph *domain.Phase) {
		ph.StartDate = &d
	}
}

func WithRecurring(cfg domain.RecurringConfig) PhaseOption {
	return func(ph *domain.Phase) {
		ph.Recurring = &cfg
	}
}

func NewTestPhase(projectID, name string, end time.Time, hours float64, opts ...PhaseOption) *domain.Phase {
	now := time.Now().UTC()
	ph := &domain.Phase{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		Name:            name,
		EndDate:         domain.DayOf(end),
		AllocationHours: hours,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(ph)
	}
	return ph
}

// NewTestEvent builds an event of the given duration starting at 09:00
// on the given day.
func NewTestEvent(projectID string, day time.Time, hours float64, completed bool) *domain.CalendarEvent {
	start := domain.DayOf(day).Add(9 * time.Hour)
	return &domain.CalendarEvent{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     "Work session",
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours * float64(time.Hour))),
		Completed: completed,
		CreatedAt: time.Now().UTC(),
	}
}

// WeekdaySlots returns a standard Monday-to-Friday schedule with one
// slot per day.
func WeekdaySlots() domain.WeeklySchedule {
	slot := domain.WorkSlot{StartTime: "09:00", EndTime: "17:00"}
	return domain.WeeklySchedule{
		time.Monday:    {slot},
		time.Tuesday:   {slot},
		time.Wednesday: {slot},
		time.Thursday:  {slot},
		time.Friday:    {slot},
	}
}
