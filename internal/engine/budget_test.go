package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phaseWithHours(name string, hours float64) domain.Phase {
	return domain.Phase{ID: name, Name: name, EndDate: day(2026, 6, 1), AllocationHours: hours}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestValidateBudget_WithinBudget(t *testing.T) {
	phases := []domain.Phase{
		phaseWithHours("draft", 10),
		phaseWithHours("revise", 15),
	}

	v := ValidateBudget(phases, 40)

	assert.True(t, v.IsValid)
	assert.Empty(t, v.Errors)
	assert.InDelta(t, 25, v.TotalAllocatedHours, 1e-9)
	assert.InDelta(t, 15, v.RemainingHours, 1e-9)
	assert.InDelta(t, 0, v.OverageHours, 1e-9)
	assert.InDelta(t, 62.5, v.UtilizationPct, 1e-9)
}

func TestValidateBudget_Overage(t *testing.T) {
	phases := []domain.Phase{
		phaseWithHours("draft", 30),
		phaseWithHours("revise", 25),
	}

	v := ValidateBudget(phases, 40)

	assert.False(t, v.IsValid)
	require.NotEmpty(t, v.Errors)
	assert.InDelta(t, 15, v.OverageHours, 1e-9)
	assert.NotEmpty(t, v.Recommendations)
}

func TestValidateBudget_RecurringPhasesBypassCheck(t *testing.T) {
	recurring := phaseWithHours("standup", 100)
	recurring.Recurring = &domain.RecurringConfig{
		Type: domain.RecurWeekly, Interval: 1, Weekday: time.Monday,
	}
	phases := []domain.Phase{recurring, phaseWithHours("draft", 10)}

	v := ValidateBudget(phases, 20)

	// The 100h recurring allocation is period-scoped and does not count
	// against the fixed budget.
	assert.True(t, v.IsValid)
	assert.InDelta(t, 10, v.TotalAllocatedHours, 1e-9)
}

func TestValidateBudget_NearLimitWarning(t *testing.T) {
	v := ValidateBudget([]domain.Phase{phaseWithHours("draft", 38)}, 40)

	assert.True(t, v.IsValid)
	require.NotEmpty(t, v.Warnings)
	assert.Contains(t, v.Warnings[0], "95%")
}

func TestValidateBudget_DominanceWarning(t *testing.T) {
	phases := []domain.Phase{
		phaseWithHours("draft", 30),
		phaseWithHours("revise", 5),
	}

	v := ValidateBudget(phases, 60)

	require.NotEmpty(t, v.Warnings)
	assert.True(t, hasWarning(v.Warnings, "draft"),
		"expected dominance warning for draft, got %v", v.Warnings)
}

func TestValidateBudget_ZeroHourPhaseWarning(t *testing.T) {
	v := ValidateBudget([]domain.Phase{phaseWithHours("empty", 0)}, 40)

	require.NotEmpty(t, v.Warnings)
	assert.Contains(t, v.Warnings[0], "empty")
}

func TestValidateBudget_UnevenDistributionWarning(t *testing.T) {
	phases := []domain.Phase{
		phaseWithHours("a", 1),
		phaseWithHours("b", 2),
		phaseWithHours("c", 30),
	}

	v := ValidateBudget(phases, 100)

	assert.True(t, hasWarning(v.Warnings, "unevenly"),
		"expected uneven-distribution warning, got %v", v.Warnings)
}

func TestValidateBudget_EvenDistributionNoWarning(t *testing.T) {
	phases := []domain.Phase{
		phaseWithHours("a", 10),
		phaseWithHours("b", 11),
		phaseWithHours("c", 12),
	}

	v := ValidateBudget(phases, 100)

	for _, w := range v.Warnings {
		assert.NotContains(t, w, "unevenly")
	}
}

func TestValidateBudget_MalformedValuesTreatedAsZero(t *testing.T) {
	v := ValidateBudget([]domain.Phase{phaseWithHours("draft", nan())}, inf())

	assert.True(t, v.IsValid)
	assert.InDelta(t, 0, v.TotalAllocatedHours, 1e-9)
	assert.InDelta(t, 0, v.UtilizationPct, 1e-9)
}
