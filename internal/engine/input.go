// Package engine turns a project, its phases, holidays, the weekly
// schedule, and calendar events into a day-by-day hour allocation. It is
// a pure, synchronous computation: identical input snapshots always
// produce identical output, and nothing is persisted or mutated.
package engine

import (
	"math"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// continuousHorizonDays bounds estimate generation for continuous
// projects, which otherwise have no end date: one rolling year from the
// evaluation day.
const continuousHorizonDays = 365

// Input is an immutable snapshot of everything the engine needs for one
// project. Now is injected so callers (and tests) control the "today"
// used by the no-past-estimates rule.
type Input struct {
	Project  domain.Project
	Phases   []domain.Phase
	Schedule domain.WeeklySchedule
	Holidays []domain.Holiday
	Events   []domain.CalendarEvent
	Now      time.Time
}

// horizonFor returns the last day estimates may be generated for.
func horizonFor(p *domain.Project, now time.Time) time.Time {
	if p.Continuous || p.EndDate == nil {
		return domain.DayOf(now).AddDate(0, 0, continuousHorizonDays)
	}
	return domain.DayOf(*p.EndDate)
}

// sanitizeHours maps malformed-but-well-typed hour values (NaN, ±Inf,
// negatives) to zero so they suppress generation instead of raising.
func sanitizeHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}
