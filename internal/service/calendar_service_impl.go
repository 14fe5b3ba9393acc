package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/repository"
	"github.com/google/uuid"
)

type holidayService struct {
	holidays repository.HolidayRepo
}

func NewHolidayService(holidays repository.HolidayRepo) HolidayService {
	return &holidayService{holidays: holidays}
}

func (s *holidayService) Create(ctx context.Context, h *domain.Holiday) error {
	if h.Name == "" {
		return fmt.Errorf("holiday name is required")
	}
	if h.EndDate.Before(h.StartDate) {
		return fmt.Errorf("holiday %q ends %s, before it starts %s",
			h.Name, h.EndDate.Format(domain.DateLayout), h.StartDate.Format(domain.DateLayout))
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.CreatedAt = time.Now().UTC()
	return s.holidays.Create(ctx, h)
}

func (s *holidayService) List(ctx context.Context) ([]*domain.Holiday, error) {
	return s.holidays.List(ctx)
}

func (s *holidayService) Delete(ctx context.Context, id string) error {
	return s.holidays.Delete(ctx, id)
}

type scheduleService struct {
	schedule repository.ScheduleRepo
	uow      db.UnitOfWork
}

func NewScheduleService(schedule repository.ScheduleRepo, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{schedule: schedule, uow: uow}
}

func (s *scheduleService) Get(ctx context.Context) (domain.WeeklySchedule, error) {
	return s.schedule.Get(ctx)
}

func (s *scheduleService) SetDay(ctx context.Context, weekday time.Weekday, slots []domain.WorkSlot) error {
	if err := validateSlots(slots); err != nil {
		return fmt.Errorf("%s: %w", weekday, err)
	}
	return s.schedule.ReplaceDay(ctx, weekday, slots)
}

func (s *scheduleService) SetWeek(ctx context.Context, schedule domain.WeeklySchedule) error {
	for weekday, slots := range schedule {
		if err := validateSlots(slots); err != nil {
			return fmt.Errorf("%s: %w", weekday, err)
		}
	}
	// All seven days swap in one transaction so a failed write cannot
	// leave a half-replaced week behind.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedule := repository.NewSQLiteScheduleRepo(tx)
		for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
			if err := txSchedule.ReplaceDay(ctx, weekday, schedule[weekday]); err != nil {
				return err
			}
		}
		return nil
	})
}

func validateSlots(slots []domain.WorkSlot) error {
	for _, slot := range slots {
		start, err := time.Parse("15:04", slot.StartTime)
		if err != nil {
			return fmt.Errorf("bad start time %q (want HH:MM)", slot.StartTime)
		}
		end, err := time.Parse("15:04", slot.EndTime)
		if err != nil {
			return fmt.Errorf("bad end time %q (want HH:MM)", slot.EndTime)
		}
		if !end.After(start) {
			return fmt.Errorf("slot %s-%s must end after it starts", slot.StartTime, slot.EndTime)
		}
	}
	return nil
}

type eventService struct {
	events   repository.EventRepo
	projects repository.ProjectRepo
}

func NewEventService(events repository.EventRepo, projects repository.ProjectRepo) EventService {
	return &eventService{events: events, projects: projects}
}

func (s *eventService) Log(ctx context.Context, e *domain.CalendarEvent) error {
	if e.ProjectID != "" {
		if _, err := s.projects.GetByID(ctx, e.ProjectID); err != nil {
			return fmt.Errorf("looking up project for event: %w", err)
		}
	}
	if !e.EndTime.After(e.StartTime) {
		return fmt.Errorf("event must end after it starts")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().UTC()
	return s.events.Create(ctx, e)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) ListByProject(ctx context.Context, projectID string) ([]*domain.CalendarEvent, error) {
	return s.events.ListByProject(ctx, projectID)
}

func (s *eventService) SetCompleted(ctx context.Context, id string, completed bool) error {
	return s.events.SetCompleted(ctx, id, completed)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
