package engine

import (
	"sort"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// ComputeDayEstimates is the engine's single entry point: it reconciles
// the four time sources for one project under strict precedence —
// events first, then phase allocations in due-date order, then the
// project-level fallback — and returns the combined day-by-day
// allocation in deterministic order.
func ComputeDayEstimates(in Input) []domain.DayEstimate {
	idx := ClassifyEvents(in.Project.ID, in.Events)

	estimates := eventEstimates(&in, idx)

	if len(in.Phases) > 0 {
		phases := sortByDueDate(in.Phases)
		var prevEnd time.Time
		for i := range phases {
			segStart := segmentStart(&phases[i], prevEnd, &in.Project)
			estimates = append(estimates, AllocatePhase(&phases[i], segStart, &in, idx)...)
			prevEnd = domain.DayOf(phases[i].EndDate)
		}
		estimates = append(estimates, trailingEstimates(phases, prevEnd, &in, idx)...)
	} else {
		estimates = append(estimates, projectAutoEstimates(&in, idx)...)
	}

	sortEstimates(estimates)
	return estimates
}

// eventEstimates emits exactly one event-sourced estimate per day that
// has any event for the project, aggregating all of that day's hours.
// These days are blocked for every lower-priority source.
func eventEstimates(in *Input, idx EventIndex) []domain.DayEstimate {
	dates := idx.Dates()
	estimates := make([]domain.DayEstimate, 0, len(dates))
	for _, d := range dates {
		hours, _ := idx.Day(d)
		est := domain.DayEstimate{
			Date:      d,
			ProjectID: in.Project.ID,
			Hours:     hours.Total(),
			Source:    domain.SourceEvent,
		}
		// Planned is reported preferentially when a day has both.
		if hours.Planned > 0 {
			est.IsPlannedEvent = true
		} else if hours.Completed > 0 {
			est.IsCompletedEvent = true
		}
		estimates = append(estimates, est)
	}
	return estimates
}

// segmentStart derives where a phase's segment begins: its explicit
// start date, else the day after the previous phase's end, else the
// project start.
func segmentStart(phase *domain.Phase, prevEnd time.Time, project *domain.Project) time.Time {
	if phase.StartDate != nil {
		return domain.DayOf(*phase.StartDate)
	}
	if !prevEnd.IsZero() {
		return domain.NextDay(prevEnd)
	}
	return domain.DayOf(project.StartDate)
}

// projectAutoEstimates is the fallback when a project has no phases at
// all: spread the budget left after completed events across the
// project's event-free working days. Continuous projects have no end to
// spread toward, so they get no fallback.
func projectAutoEstimates(in *Input, idx EventIndex) []domain.DayEstimate {
	if in.Project.Continuous || in.Project.EndDate == nil {
		return nil
	}
	budget := sanitizeHours(in.Project.EstimatedHours)
	if budget <= 0 {
		return nil
	}

	start := domain.DayOf(in.Project.StartDate)
	end := domain.DayOf(*in.Project.EndDate)
	return spreadAutoEstimate(budget-idx.CompletedBetween(start, end), start, end, in, idx)
}

// trailingEstimates stitches the remaining-budget segment after the last
// phase: whatever part of the project budget is not claimed by fixed
// phase allocations is spread over the working days between the last
// phase's end and the project end. Recurring phases claim no fixed total
// and so do not reduce the trailing budget.
func trailingEstimates(phases []domain.Phase, lastEnd time.Time, in *Input, idx EventIndex) []domain.DayEstimate {
	if in.Project.Continuous || in.Project.EndDate == nil {
		return nil
	}
	budget := sanitizeHours(in.Project.EstimatedHours)
	if budget <= 0 {
		return nil
	}

	var allocated float64
	for i := range phases {
		if phases[i].Recurring == nil {
			allocated += sanitizeHours(phases[i].AllocationHours)
		}
	}

	start := domain.NextDay(lastEnd)
	end := domain.DayOf(*in.Project.EndDate)
	if end.Before(start) {
		return nil
	}
	remaining := budget - allocated - idx.HoursBetween(start, end)
	return spreadAutoEstimate(remaining, start, end, in, idx)
}

// spreadAutoEstimate distributes remaining hours evenly over the
// event-free working days in [start, end], tagged project-auto-estimate.
func spreadAutoEstimate(remaining float64, start, end time.Time, in *Input, idx EventIndex) []domain.DayEstimate {
	if remaining <= 0 {
		return nil
	}
	days := WorkingDaysBetween(start, end, in.Now, in.Schedule, in.Holidays, &in.Project)

	var free []time.Time
	for _, d := range days {
		if !idx.HasEvent(d) {
			free = append(free, d)
		}
	}
	if len(free) == 0 {
		return nil
	}

	perDay := remaining / float64(len(free))
	estimates := make([]domain.DayEstimate, 0, len(free))
	for _, d := range free {
		estimates = append(estimates, domain.DayEstimate{
			Date:      d,
			ProjectID: in.Project.ID,
			Hours:     perDay,
			Source:    domain.SourceProjectAuto,
		})
	}
	return estimates
}

// sortByDueDate returns the phases ordered by ascending due date without
// mutating the caller's slice. Ties break on ID for determinism.
func sortByDueDate(phases []domain.Phase) []domain.Phase {
	sorted := make([]domain.Phase, len(phases))
	copy(sorted, phases)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := domain.DayOf(sorted[i].EndDate), domain.DayOf(sorted[j].EndDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

var sourceRank = map[domain.EstimateSource]int{
	domain.SourceEvent:           0,
	domain.SourcePhaseAllocation: 1,
	domain.SourceProjectAuto:     2,
}

// sortEstimates orders output by date, then source priority, then phase,
// so identical inputs always yield byte-identical output.
func sortEstimates(estimates []domain.DayEstimate) {
	sort.SliceStable(estimates, func(i, j int) bool {
		if !estimates[i].Date.Equal(estimates[j].Date) {
			return estimates[i].Date.Before(estimates[j].Date)
		}
		if sourceRank[estimates[i].Source] != sourceRank[estimates[j].Source] {
			return sourceRank[estimates[i].Source] < sourceRank[estimates[j].Source]
		}
		return estimates[i].PhaseID < estimates[j].PhaseID
	})
}
