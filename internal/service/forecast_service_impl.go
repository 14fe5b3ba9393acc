package service

import (
	"context"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/engine"
	"github.com/alexanderramin/horizon/internal/repository"
)

type forecastService struct {
	projects repository.ProjectRepo
	phases   repository.PhaseRepo
	holidays repository.HolidayRepo
	schedule repository.ScheduleRepo
	events   repository.EventRepo
	cache    *engine.Cache
	observer UseCaseObserver
	now      func() time.Time
}

func NewForecastService(
	projects repository.ProjectRepo,
	phases repository.PhaseRepo,
	holidays repository.HolidayRepo,
	schedule repository.ScheduleRepo,
	events repository.EventRepo,
	observers ...UseCaseObserver,
) ForecastService {
	return &forecastService{
		projects: projects,
		phases:   phases,
		holidays: holidays,
		schedule: schedule,
		events:   events,
		cache:    engine.NewCache(),
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *forecastService) ForecastProject(ctx context.Context, projectID string, from, to time.Time) (forecast *Forecast, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "forecast-project",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	in, phaseList, project, err := s.loadInput(ctx, projectID)
	if err != nil {
		return nil, err
	}

	estimates := engine.ComputeDayEstimatesCached(in, s.cache)
	estimates = filterWindow(estimates, from, to)
	fields["estimate_count"] = len(estimates)

	return &Forecast{Project: project, Phases: phaseList, Estimates: estimates}, nil
}

func (s *forecastService) loadInput(ctx context.Context, projectID string) (engine.Input, []*domain.Phase, *domain.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return engine.Input{}, nil, nil, err
	}
	phaseList, err := s.phases.ListByProject(ctx, projectID)
	if err != nil {
		return engine.Input{}, nil, nil, err
	}
	holidayList, err := s.holidays.List(ctx)
	if err != nil {
		return engine.Input{}, nil, nil, err
	}
	schedule, err := s.schedule.Get(ctx)
	if err != nil {
		return engine.Input{}, nil, nil, err
	}
	eventList, err := s.events.ListByProject(ctx, projectID)
	if err != nil {
		return engine.Input{}, nil, nil, err
	}

	phases := make([]domain.Phase, len(phaseList))
	for i, ph := range phaseList {
		phases[i] = *ph
	}
	holidays := make([]domain.Holiday, len(holidayList))
	for i, h := range holidayList {
		holidays[i] = *h
	}
	events := make([]domain.CalendarEvent, len(eventList))
	for i, e := range eventList {
		events[i] = *e
	}

	// Day granularity keeps the snapshot hash stable across calls made
	// on the same day, so the memoized result actually gets reused.
	in := engine.Input{
		Project:  *project,
		Phases:   phases,
		Schedule: schedule,
		Holidays: holidays,
		Events:   events,
		Now:      domain.DayOf(s.now()),
	}
	return in, phaseList, project, nil
}

func filterWindow(estimates []domain.DayEstimate, from, to time.Time) []domain.DayEstimate {
	if from.IsZero() && to.IsZero() {
		return estimates
	}
	filtered := make([]domain.DayEstimate, 0, len(estimates))
	for _, e := range estimates {
		if !from.IsZero() && e.Date.Before(domain.DayOf(from)) {
			continue
		}
		if !to.IsZero() && e.Date.After(domain.DayOf(to)) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
