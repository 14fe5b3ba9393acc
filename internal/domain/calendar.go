package domain

import "time"

// Holiday blocks working-day status for every date in its inclusive range.
type Holiday struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}

// Contains reports whether the day containing t falls inside the holiday
// range, normalized to day boundaries.
func (h *Holiday) Contains(t time.Time) bool {
	d := DayOf(t)
	return !d.Before(DayOf(h.StartDate)) && !d.After(DayOf(h.EndDate))
}

// WorkSlot is one contiguous block of scheduled work time within a day.
// Times use the "15:04" wall-clock format.
type WorkSlot struct {
	StartTime string
	EndTime   string
}

const slotLayout = "15:04"

// Hours returns the slot duration in hours, or 0 if the times fail to
// parse or the slot is inverted.
func (s WorkSlot) Hours() float64 {
	start, err := time.Parse(slotLayout, s.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(slotLayout, s.EndTime)
	if err != nil {
		return 0
	}
	d := end.Sub(start).Hours()
	if d < 0 {
		return 0
	}
	return d
}

// WeeklySchedule maps each weekday to its work slots. A weekday with no
// slots is a non-working day under the global fallback rule.
type WeeklySchedule map[time.Weekday][]WorkSlot

// HoursOn returns the total scheduled capacity for a weekday.
func (ws WeeklySchedule) HoursOn(day time.Weekday) float64 {
	var total float64
	for _, slot := range ws[day] {
		total += slot.Hours()
	}
	return total
}

// CalendarEvent is actually-planned or actually-spent time on the
// calendar. Events are the source of truth for their day and always win
// over computed estimates.
type CalendarEvent struct {
	ID        string
	ProjectID string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Completed bool
	CreatedAt time.Time
}

// Hours returns the event duration in hours (0 for inverted ranges).
func (e *CalendarEvent) Hours() float64 {
	d := e.EndTime.Sub(e.StartTime).Hours()
	if d < 0 {
		return 0
	}
	return d
}
