package engine

import (
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// IsWorkingDay decides whether date counts as a working day for a
// project. Order of checks: holiday ranges block outright; a per-project
// weekday override bypasses the weekly schedule; otherwise the weekly
// schedule must have at least one work slot for the weekday.
func IsWorkingDay(date time.Time, schedule domain.WeeklySchedule, holidays []domain.Holiday, project *domain.Project) bool {
	d := domain.DayOf(date)
	for i := range holidays {
		if holidays[i].Contains(d) {
			return false
		}
	}
	if project != nil && project.AutoEstimateDays != nil {
		return project.AutoEstimateDays[d.Weekday()]
	}
	return len(schedule[d.Weekday()]) > 0
}

// WorkingDaysBetween enumerates all working days in [start, end]
// inclusive, with the lower bound clamped to the day containing now.
// The clamp is what keeps estimated time out of the past.
func WorkingDaysBetween(start, end, now time.Time, schedule domain.WeeklySchedule, holidays []domain.Holiday, project *domain.Project) []time.Time {
	from := domain.MaxDay(domain.DayOf(start), domain.DayOf(now))
	to := domain.DayOf(end)

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, schedule, holidays, project) {
			days = append(days, d)
		}
	}
	return days
}
