package engine

import (
	"fmt"
	"math"

	"github.com/alexanderramin/horizon/internal/domain"
)

// BudgetValidation is the structured result of analyzing phase
// allocations against a project budget. It never blocks by itself;
// callers decide whether Errors prevent a save.
type BudgetValidation struct {
	IsValid             bool
	TotalAllocatedHours float64
	RemainingHours      float64
	OverageHours        float64
	UtilizationPct      float64
	Errors              []string
	Warnings            []string
	Recommendations     []string
}

const (
	utilizationWarningPct = 90
	dominanceSharePct     = 50
)

// ValidateBudget analyzes total phase allocation against the project
// budget. Recurring phases bypass the overage check entirely: their
// total impact is not a single fixed allocation. The function never
// returns an error; malformed values are treated as zero.
func ValidateBudget(phases []domain.Phase, budgetHours float64) BudgetValidation {
	budget := sanitizeHours(budgetHours)

	var fixed []float64
	for i := range phases {
		if phases[i].Recurring != nil {
			continue
		}
		fixed = append(fixed, sanitizeHours(phases[i].AllocationHours))
	}

	var total float64
	for _, h := range fixed {
		total += h
	}

	v := BudgetValidation{
		IsValid:             total <= budget,
		TotalAllocatedHours: total,
		RemainingHours:      budget - total,
		OverageHours:        math.Max(0, total-budget),
	}
	if budget > 0 {
		v.UtilizationPct = total / budget * 100
	}

	if !v.IsValid {
		v.Errors = append(v.Errors, fmt.Sprintf(
			"phases allocate %.1fh against a %.1fh budget (%.1fh over)",
			total, budget, v.OverageHours))
		v.Recommendations = append(v.Recommendations,
			fmt.Sprintf("Reduce phase allocations by %.1fh or raise the project budget.", v.OverageHours))
	}

	if v.UtilizationPct >= utilizationWarningPct && v.UtilizationPct < 100 {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"budget utilization is at %.0f%%", v.UtilizationPct))
		v.Recommendations = append(v.Recommendations,
			"Leave some budget unallocated to absorb overruns.")
	}

	for i := range phases {
		hours := sanitizeHours(phases[i].AllocationHours)
		if hours == 0 {
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"phase %q has no allocated hours", phases[i].Name))
			continue
		}
		if phases[i].Recurring == nil && budget > 0 && hours/budget*100 > dominanceSharePct {
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"phase %q claims %.0f%% of the budget", phases[i].Name, hours/budget*100))
			v.Recommendations = append(v.Recommendations,
				fmt.Sprintf("Consider splitting %q into smaller phases.", phases[i].Name))
		}
	}

	if warn, ok := unevenDistribution(fixed); ok {
		v.Warnings = append(v.Warnings, warn)
		v.Recommendations = append(v.Recommendations,
			"Allocations vary widely; balancing them makes day-to-day load steadier.")
	}

	return v
}

// unevenDistribution flags three or more fixed allocations whose
// standard deviation exceeds half their mean.
func unevenDistribution(allocations []float64) (string, bool) {
	if len(allocations) < 3 {
		return "", false
	}
	var sum float64
	for _, h := range allocations {
		sum += h
	}
	mean := sum / float64(len(allocations))
	if mean <= 0 {
		return "", false
	}

	var variance float64
	for _, h := range allocations {
		variance += (h - mean) * (h - mean)
	}
	stddev := math.Sqrt(variance / float64(len(allocations)))
	if stddev <= 0.5*mean {
		return "", false
	}
	return fmt.Sprintf("phase allocations are unevenly distributed (σ=%.1fh, mean=%.1fh)", stddev, mean), true
}
