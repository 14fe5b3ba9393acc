package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/engine"
	"github.com/alexanderramin/horizon/internal/repository"
	"github.com/google/uuid"
)

type phaseService struct {
	phases   repository.PhaseRepo
	projects repository.ProjectRepo
}

func NewPhaseService(phases repository.PhaseRepo, projects repository.ProjectRepo) PhaseService {
	return &phaseService{phases: phases, projects: projects}
}

func (s *phaseService) Create(ctx context.Context, ph *domain.Phase) error {
	if _, err := s.projects.GetByID(ctx, ph.ProjectID); err != nil {
		return fmt.Errorf("looking up project for phase: %w", err)
	}
	if err := validatePhase(ph); err != nil {
		return err
	}
	if ph.ID == "" {
		ph.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	ph.CreatedAt = now
	ph.UpdatedAt = now
	return s.phases.Create(ctx, ph)
}

func (s *phaseService) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	return s.phases.GetByID(ctx, id)
}

func (s *phaseService) ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	return s.phases.ListByProject(ctx, projectID)
}

func (s *phaseService) Update(ctx context.Context, ph *domain.Phase) error {
	if err := validatePhase(ph); err != nil {
		return err
	}
	ph.UpdatedAt = time.Now().UTC()
	return s.phases.Update(ctx, ph)
}

func (s *phaseService) Delete(ctx context.Context, id string) error {
	return s.phases.Delete(ctx, id)
}

func (s *phaseService) ValidateBudget(ctx context.Context, projectID string) (engine.BudgetValidation, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return engine.BudgetValidation{}, err
	}
	list, err := s.phases.ListByProject(ctx, projectID)
	if err != nil {
		return engine.BudgetValidation{}, err
	}
	phases := make([]domain.Phase, len(list))
	for i, ph := range list {
		phases[i] = *ph
	}
	return engine.ValidateBudget(phases, project.EstimatedHours), nil
}

// validatePhase rejects structurally broken phases before they reach
// storage. Budget-level problems are warnings, not errors, and live in
// ValidateBudget instead.
func validatePhase(ph *domain.Phase) error {
	if ph.Name == "" {
		return fmt.Errorf("phase name is required")
	}
	if ph.EndDate.IsZero() {
		return fmt.Errorf("phase %q needs a due date", ph.Name)
	}
	if ph.StartDate != nil && ph.EndDate.Before(*ph.StartDate) {
		return fmt.Errorf("phase %q ends %s, before it starts %s",
			ph.Name, ph.EndDate.Format(domain.DateLayout), ph.StartDate.Format(domain.DateLayout))
	}
	if cfg := ph.Recurring; cfg != nil {
		if cfg.Interval < 1 {
			return fmt.Errorf("phase %q recurrence interval must be at least 1", ph.Name)
		}
		switch cfg.Type {
		case domain.RecurDaily, domain.RecurWeekly:
		case domain.RecurMonthly:
			switch cfg.MonthlyPattern {
			case domain.MonthlyByDate:
				if cfg.DayOfMonth < 1 || cfg.DayOfMonth > 31 {
					return fmt.Errorf("phase %q day of month must be 1-31", ph.Name)
				}
			case domain.MonthlyByWeekday:
				if cfg.WeekOfMonth == 0 || cfg.WeekOfMonth > 4 || cfg.WeekOfMonth < -2 {
					return fmt.Errorf("phase %q week of month must be 1-4, -1, or -2", ph.Name)
				}
			default:
				return fmt.Errorf("phase %q has unknown monthly pattern %q", ph.Name, cfg.MonthlyPattern)
			}
		default:
			return fmt.Errorf("phase %q has unknown recurrence type %q", ph.Name, cfg.Type)
		}
	}
	return nil
}
