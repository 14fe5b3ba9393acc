package engine

import (
	"sort"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// DayEventHours is the classified event time on one calendar day.
type DayEventHours struct {
	// Planned is time from events not yet marked completed.
	Planned float64
	// Completed is time from completed events.
	Completed float64
}

// Total returns the day's full consumed hours. Both planned and
// completed time subtract from remaining budget: planned time is a
// committed future projection, not available for re-estimation.
func (d DayEventHours) Total() float64 {
	return d.Planned + d.Completed
}

// EventIndex groups one project's calendar events by day. Days present
// in the index are blocked from receiving computed estimates.
type EventIndex struct {
	days  map[string]DayEventHours
	dates []time.Time
}

// ClassifyEvents partitions a project's events into planned vs completed
// hours per day. Events belonging to other projects are ignored; events
// are attributed to the day they start on.
func ClassifyEvents(projectID string, events []domain.CalendarEvent) EventIndex {
	days := make(map[string]DayEventHours)
	for i := range events {
		ev := &events[i]
		if ev.ProjectID != projectID {
			continue
		}
		hours := sanitizeHours(ev.Hours())
		key := domain.DateKey(ev.StartTime)
		d := days[key]
		if ev.Completed {
			d.Completed += hours
		} else {
			d.Planned += hours
		}
		days[key] = d
	}

	dates := make([]time.Time, 0, len(days))
	for key := range days {
		t, err := time.Parse(domain.DateLayout, key)
		if err != nil {
			continue
		}
		dates = append(dates, domain.DayOf(t))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return EventIndex{days: days, dates: dates}
}

// HasEvent reports whether the project has any event on the given day.
func (ix EventIndex) HasEvent(date time.Time) bool {
	_, ok := ix.days[domain.DateKey(date)]
	return ok
}

// Day returns the classified hours for one day.
func (ix EventIndex) Day(date time.Time) (DayEventHours, bool) {
	d, ok := ix.days[domain.DateKey(date)]
	return d, ok
}

// Dates returns all event days in ascending order.
func (ix EventIndex) Dates() []time.Time {
	return ix.dates
}

// HoursBetween sums planned plus completed hours over [start, end]
// inclusive, normalized to day boundaries.
func (ix EventIndex) HoursBetween(start, end time.Time) float64 {
	var total float64
	from, to := domain.DayOf(start), domain.DayOf(end)
	for _, d := range ix.dates {
		if d.Before(from) || d.After(to) {
			continue
		}
		total += ix.days[domain.DateKey(d)].Total()
	}
	return total
}

// CompletedBetween sums only completed hours over [start, end] inclusive.
func (ix EventIndex) CompletedBetween(start, end time.Time) float64 {
	var total float64
	from, to := domain.DayOf(start), domain.DayOf(end)
	for _, d := range ix.dates {
		if d.Before(from) || d.After(to) {
			continue
		}
		total += ix.days[domain.DateKey(d)].Completed
	}
	return total
}
