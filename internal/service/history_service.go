package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/repository"
)

const MaxHistoryDays = 365

var ErrInvalidWindow = errors.New("days must be between 1 and 365")

// HistoryService answers read-only window queries over a user's records.
type HistoryService struct {
	measurements repository.MeasurementRepository
	meals        repository.MealRepository
	workouts     repository.WorkoutRepository
	defaultDays  int
	loc          *time.Location
	now          func() time.Time
}

func NewHistoryService(repos *repository.Repositories, defaultDays int, loc *time.Location) *HistoryService {
	return &HistoryService{
		measurements: repos.Measurement,
		meals:        repos.Meal,
		workouts:     repos.Workout,
		defaultDays:  defaultDays,
		loc:          loc,
		now:          time.Now,
	}
}

// WithClock replaces the time source.
func (s *HistoryService) WithClock(now func() time.Time) *HistoryService {
	s.now = now
	return s
}

// Today covers the current calendar day in the configured zone.
func (s *HistoryService) Today(ctx context.Context, userID uuid.UUID) (*domain.Summary, error) {
	return s.Summary(ctx, userID, domain.Day(s.now().In(s.loc)))
}

// History covers [now - days, now]. days == 0 selects the configured default.
func (s *HistoryService) History(ctx context.Context, userID uuid.UUID, days int) (*domain.Summary, error) {
	if days == 0 {
		days = s.defaultDays
	}
	if days < 1 || days > MaxHistoryDays {
		return nil, ErrInvalidWindow
	}
	return s.Summary(ctx, userID, domain.TrailingDays(s.now().In(s.loc), days))
}

func (s *HistoryService) Summary(ctx context.Context, userID uuid.UUID, w domain.Window) (*domain.Summary, error) {
	measurements, err := s.measurements.ListInWindow(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	meals, err := s.meals.ListInWindow(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workouts.ListInWindow(ctx, userID, w)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		Measurements: measurements,
		Meals:        meals,
		Workouts:     workouts,
	}
	if summary.Measurements == nil {
		summary.Measurements = []*domain.Measurement{}
	}
	if summary.Meals == nil {
		summary.Meals = []*domain.Meal{}
	}
	if summary.Workouts == nil {
		summary.Workouts = []*domain.Workout{}
	}
	return summary, nil
}
