package service

import (
	"context"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/engine"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string, force bool) error
}

type PhaseService interface {
	Create(ctx context.Context, ph *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error)
	Update(ctx context.Context, ph *domain.Phase) error
	Delete(ctx context.Context, id string) error
	// ValidateBudget analyzes a project's saved phases against its hour
	// budget without persisting anything.
	ValidateBudget(ctx context.Context, projectID string) (engine.BudgetValidation, error)
}

type HolidayService interface {
	Create(ctx context.Context, h *domain.Holiday) error
	List(ctx context.Context) ([]*domain.Holiday, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	Get(ctx context.Context) (domain.WeeklySchedule, error)
	SetDay(ctx context.Context, weekday time.Weekday, slots []domain.WorkSlot) error
	// SetWeek replaces the entire weekly schedule atomically.
	SetWeek(ctx context.Context, schedule domain.WeeklySchedule) error
}

type EventService interface {
	Log(ctx context.Context, e *domain.CalendarEvent) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.CalendarEvent, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

// Forecast is one project's computed day estimates plus the inputs the
// engine saw, so callers can render context alongside the numbers.
type Forecast struct {
	Project   *domain.Project
	Phases    []*domain.Phase
	Estimates []domain.DayEstimate
}

type ForecastService interface {
	// ForecastProject computes day estimates for a project over an
	// optional [from, to] window. Zero bounds mean "unbounded" on that
	// side.
	ForecastProject(ctx context.Context, projectID string, from, to time.Time) (*Forecast, error)
}
