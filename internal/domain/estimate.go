package domain

import "time"

// DayEstimate is one day's worth of implied work for a project. It is
// ephemeral output: recomputed fully on every engine call and never
// persisted.
type DayEstimate struct {
	Date      time.Time
	ProjectID string
	Hours     float64
	Source    EstimateSource
	// PhaseID is set only for phase-allocation estimates.
	PhaseID string
	// Event-sourced estimates carry exactly one classification flag:
	// planned wins when a day has both planned and completed events.
	IsPlannedEvent   bool
	IsCompletedEvent bool
}
