package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	Create(ctx context.Context, ph *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error)
	Update(ctx context.Context, ph *domain.Phase) error
	Delete(ctx context.Context, id string) error
}

type HolidayRepo interface {
	Create(ctx context.Context, h *domain.Holiday) error
	List(ctx context.Context) ([]*domain.Holiday, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	// Get returns the full weekly schedule; weekdays without slots are
	// absent from the map.
	Get(ctx context.Context) (domain.WeeklySchedule, error)
	// ReplaceDay swaps out all slots for one weekday.
	ReplaceDay(ctx context.Context, weekday time.Weekday, slots []domain.WorkSlot) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.CalendarEvent) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.CalendarEvent, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}
