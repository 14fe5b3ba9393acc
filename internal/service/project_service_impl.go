package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	phases   repository.PhaseRepo
}

func NewProjectService(projects repository.ProjectRepo, phases repository.PhaseRepo) ProjectService {
	return &projectService{projects: projects, phases: phases}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.ValidateShortID(); err != nil {
		return err
	}
	if err := validateProjectDates(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	return s.projects.GetByShortID(ctx, shortID)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := validateProjectDates(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		phases, err := s.phases.ListByProject(ctx, id)
		if err != nil {
			return err
		}
		if len(phases) > 0 {
			return fmt.Errorf("project has %d phase(s); remove them first or use --force", len(phases))
		}
	}
	return s.projects.Delete(ctx, id)
}

func validateProjectDates(p *domain.Project) error {
	if p.StartDate.IsZero() {
		return fmt.Errorf("project start date is required")
	}
	if !p.Continuous && p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("project end date %s is before start date %s",
			p.EndDate.Format(domain.DateLayout), p.StartDate.Format(domain.DateLayout))
	}
	return nil
}
