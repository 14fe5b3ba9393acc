package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

type Project struct {
	ID        string
	ShortID   string
	Name      string
	StartDate time.Time
	// EndDate bounds estimate generation. Ignored when Continuous is set.
	EndDate *time.Time
	// Continuous projects have no effective end bound; estimates roll
	// forward over an open-ended horizon.
	Continuous bool
	// EstimatedHours is the overall project budget. It feeds the
	// auto-estimate fallback and the trailing remaining-budget segment.
	EstimatedHours float64
	// AutoEstimateDays, when non-nil, overrides the weekly schedule for
	// this project: the boolean per weekday decides working-day status.
	AutoEstimateDays map[time.Weekday]bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. THE01, WRIT0234).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required (use --id flag)")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. THE01)", p.ShortID)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
