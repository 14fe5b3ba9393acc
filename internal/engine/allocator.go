package engine

import (
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// AllocatePhase spreads one phase's remaining budget across the working
// days of its segment(s). Non-recurring phases get a single segment from
// segStart to the phase due date; recurring phases get one segment per
// recurrence interval, each carrying the full per-occurrence allocation.
func AllocatePhase(phase *domain.Phase, segStart time.Time, in *Input, idx EventIndex) []domain.DayEstimate {
	allocation := sanitizeHours(phase.AllocationHours)
	if allocation <= 0 {
		return nil
	}

	if phase.Recurring != nil {
		anchors := ExpandAnchors(phase, &in.Project, in.Now)
		if len(anchors) == 0 {
			// Rule resolved no occurrence: degrade to a single
			// non-recurring occurrence at the due date.
			seg := Interval{Start: domain.DayOf(segStart), End: domain.DayOf(phase.EndDate)}
			return allocateSegment(phase, seg, allocation, in, idx, false)
		}
		windowStart := domain.DayOf(in.Project.StartDate)
		windowEnd := horizonFor(&in.Project, in.Now)

		var estimates []domain.DayEstimate
		for _, seg := range AnchorIntervals(anchors, windowStart, windowEnd) {
			estimates = append(estimates, allocateSegment(phase, seg, allocation, in, idx, true)...)
		}
		return estimates
	}

	seg := Interval{Start: domain.DayOf(segStart), End: domain.DayOf(phase.EndDate)}
	return allocateSegment(phase, seg, allocation, in, idx, false)
}

// allocateSegment distributes the segment's remaining hours (allocation
// minus event hours already inside the segment) evenly over its working
// days, then drops days blocked by events. Non-recurring phases
// redistribute over the surviving days so filtering does not shrink the
// segment total; recurring occurrences keep the pre-filter rate because
// each occurrence's allocation is already period-scoped.
func allocateSegment(phase *domain.Phase, seg Interval, allocation float64, in *Input, idx EventIndex, recurring bool) []domain.DayEstimate {
	days := WorkingDaysBetween(seg.Start, seg.End, in.Now, in.Schedule, in.Holidays, &in.Project)
	if len(days) == 0 {
		return nil
	}

	remaining := allocation - idx.HoursBetween(seg.Start, seg.End)
	if remaining <= 0 {
		return nil
	}

	perDay := remaining / float64(len(days))

	var free []time.Time
	for _, d := range days {
		if !idx.HasEvent(d) {
			free = append(free, d)
		}
	}
	if len(free) == 0 {
		return nil
	}
	if !recurring {
		perDay = remaining / float64(len(free))
	}

	estimates := make([]domain.DayEstimate, 0, len(free))
	for _, d := range free {
		estimates = append(estimates, domain.DayEstimate{
			Date:      d,
			ProjectID: phase.ProjectID,
			PhaseID:   phase.ID,
			Hours:     perDay,
			Source:    domain.SourcePhaseAllocation,
		})
	}
	return estimates
}
