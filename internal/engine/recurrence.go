package engine

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/alexanderramin/horizon/internal/domain"
)

// Interval is the concrete date range one recurrence occurrence
// distributes its hours over. Both bounds are inclusive days.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ExpandAnchors produces the ascending anchor occurrence dates for a
// recurring phase, bounded by the owning project's active window. If the
// first generated occurrence does not land exactly on the project start,
// a previous anchor is synthesized one interval earlier so the first
// work interval is never degenerate. Returns nil when the rule resolves
// no occurrence at all; callers degrade the phase to a single
// non-recurring occurrence at its due date.
func ExpandAnchors(phase *domain.Phase, project *domain.Project, now time.Time) []time.Time {
	if phase.Recurring == nil {
		return nil
	}
	start := domain.DayOf(project.StartDate)
	end := horizonFor(project, now)
	if end.Before(start) {
		return nil
	}

	anchors := rawOccurrences(phase.Recurring, start, end)
	if len(anchors) == 0 {
		return nil
	}
	if !anchors[0].Equal(start) {
		prev := previousAnchor(phase.Recurring, anchors[0])
		anchors = append([]time.Time{prev}, anchors...)
	}
	return anchors
}

// AnchorIntervals stitches consecutive anchors into work intervals: each
// interval starts on an anchor and ends the day before the next one, so
// a weekly pattern yields exactly 7-day spans. The interval opened by
// the final anchor runs to the window end. All intervals are clamped to
// [windowStart, windowEnd].
func AnchorIntervals(anchors []time.Time, windowStart, windowEnd time.Time) []Interval {
	var intervals []Interval
	appendClamped := func(start, end time.Time) {
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if end.Before(start) {
			return
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}

	for i := 1; i < len(anchors); i++ {
		appendClamped(anchors[i-1], anchors[i].AddDate(0, 0, -1))
	}
	if n := len(anchors); n > 0 {
		appendClamped(anchors[n-1], windowEnd)
	}
	return intervals
}

// rawOccurrences generates the rule's occurrence dates in [start, end]
// inclusive via rrule.
func rawOccurrences(cfg *domain.RecurringConfig, start, end time.Time) []time.Time {
	interval := cfg.Interval
	if interval < 1 {
		interval = 1
	}

	opt := rrule.ROption{Interval: interval, Dtstart: start, Until: end}
	switch cfg.Type {
	case domain.RecurDaily:
		opt.Freq = rrule.DAILY
	case domain.RecurWeekly:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rruleWeekday(cfg.Weekday)}
	case domain.RecurMonthly:
		opt.Freq = rrule.MONTHLY
		if cfg.MonthlyPattern == domain.MonthlyByWeekday {
			wd := rruleWeekday(cfg.MonthlyWeekday)
			opt.Byweekday = []rrule.Weekday{wd.Nth(cfg.WeekOfMonth)}
		} else {
			opt.Bymonthday = []int{cfg.DayOfMonth}
		}
	default:
		return nil
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil
	}

	occ := r.Between(start, end, true)
	dates := make([]time.Time, 0, len(occ))
	for _, t := range occ {
		dates = append(dates, domain.DayOf(t))
	}
	return dates
}

// previousAnchor subtracts exactly one interval, per the same rule, from
// the first generated occurrence.
func previousAnchor(cfg *domain.RecurringConfig, first time.Time) time.Time {
	interval := cfg.Interval
	if interval < 1 {
		interval = 1
	}

	switch cfg.Type {
	case domain.RecurDaily:
		return first.AddDate(0, 0, -interval)
	case domain.RecurWeekly:
		return first.AddDate(0, 0, -7*interval)
	case domain.RecurMonthly:
		year, month, _ := first.Date()
		prevMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -interval, 0)
		if cfg.MonthlyPattern == domain.MonthlyByWeekday {
			return nthWeekdayOfMonth(prevMonth, cfg.MonthlyWeekday, cfg.WeekOfMonth)
		}
		return dayOfMonthClamped(prevMonth, cfg.DayOfMonth)
	}
	return first
}

// dayOfMonthClamped returns the given day within the month containing
// firstOfMonth, clamped to the month's length.
func dayOfMonthClamped(firstOfMonth time.Time, day int) time.Time {
	if day < 1 {
		day = 1
	}
	last := firstOfMonth.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(firstOfMonth.Year(), firstOfMonth.Month(), day, 0, 0, 0, 0, time.UTC)
}

// nthWeekdayOfMonth returns the k-th occurrence of weekday within the
// month containing firstOfMonth. Negative k counts from the end (-1 is
// the last occurrence, -2 second-last); out-of-range k clamps to the
// month's first or last matching day.
func nthWeekdayOfMonth(firstOfMonth time.Time, weekday time.Weekday, k int) time.Time {
	first := firstOfMonth
	for first.Weekday() != weekday {
		first = first.AddDate(0, 0, 1)
	}
	lastDay := firstOfMonth.AddDate(0, 1, -1)
	count := int(lastDay.Sub(first).Hours()/24)/7 + 1

	var idx int
	switch {
	case k > 0:
		idx = k - 1
	case k < 0:
		idx = count + k
	default:
		idx = 0
	}
	if idx < 0 {
		idx = 0
	}
	if idx > count-1 {
		idx = count - 1
	}
	return first.AddDate(0, 0, 7*idx)
}

// rruleWeekday maps a time.Weekday onto the rrule weekday constants.
func rruleWeekday(d time.Weekday) rrule.Weekday {
	switch d {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
