package domain

type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
)

// ValidRecurrenceTypes is the canonical set of accepted recurrence type strings.
var ValidRecurrenceTypes = map[string]bool{
	"daily": true, "weekly": true, "monthly": true,
}

type MonthlyPattern string

const (
	MonthlyByDate    MonthlyPattern = "date"
	MonthlyByWeekday MonthlyPattern = "dayOfWeek"
)

// EstimateSource identifies which time source produced a day estimate.
// Events always win over computed allocations.
type EstimateSource string

const (
	SourceEvent           EstimateSource = "event"
	SourcePhaseAllocation EstimateSource = "phase-allocation"
	SourceProjectAuto     EstimateSource = "project-auto-estimate"
)
