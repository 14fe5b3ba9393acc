package domain

import "time"

// Phase is a budgeted unit of work within a project. A phase with a
// StartDate is a fixed segment; without one it is a deadline-only
// milestone whose segment start is derived from the previous phase's
// end (or the project start). A non-nil Recurring config turns the
// phase into a repeating series of occurrence segments.
type Phase struct {
	ID        string
	ProjectID string
	Name      string
	StartDate *time.Time
	// EndDate is the phase due date and the inclusive end of its segment.
	EndDate time.Time
	// AllocationHours is the time budget for the phase. For recurring
	// phases it is the budget of each occurrence interval, not a total.
	AllocationHours float64
	Recurring       *RecurringConfig
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsRecurring reports whether the phase repeats on a recurrence rule.
func (p *Phase) IsRecurring() bool {
	return p.Recurring != nil
}

// RecurringConfig defines the recurrence rule for a repeating phase.
type RecurringConfig struct {
	Type     RecurrenceType
	Interval int

	// Weekday is the fixed day of week for weekly recurrence.
	Weekday time.Weekday

	// Monthly recurrence: either a fixed day of month, or the K-th
	// weekday of the month (WeekOfMonth 1..4, -1 for last, -2 for
	// second-last).
	MonthlyPattern MonthlyPattern
	DayOfMonth     int
	WeekOfMonth    int
	MonthlyWeekday time.Weekday
}
