package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/repository"
)

// RecordService writes and lists a user's measurements, meals and workouts.
// The owner is always the authenticated user passed in by the caller.
type RecordService struct {
	measurements repository.MeasurementRepository
	meals        repository.MealRepository
	workouts     repository.WorkoutRepository
}

func NewRecordService(measurements repository.MeasurementRepository, meals repository.MealRepository, workouts repository.WorkoutRepository) *RecordService {
	return &RecordService{
		measurements: measurements,
		meals:        meals,
		workouts:     workouts,
	}
}

type MeasurementRequest struct {
	Date       string   `json:"date" validate:"required"`
	Waist      *float64 `json:"waist" validate:"omitempty,gte=0"`
	Hips       *float64 `json:"hips" validate:"omitempty,gte=0"`
	Thigh      *float64 `json:"thigh" validate:"omitempty,gte=0"`
	Arm        *float64 `json:"arm" validate:"omitempty,gte=0"`
	Chest      *float64 `json:"chest" validate:"omitempty,gte=0"`
	UnderNavel *float64 `json:"underNavel" validate:"omitempty,gte=0"`
	Weight     *float64 `json:"weight" validate:"omitempty,gte=0"`
}

type MealRequest struct {
	Date  string            `json:"date" validate:"required"`
	Items []domain.MealItem `json:"items" validate:"required,min=1,dive"`
}

type WorkoutRequest struct {
	Date      string               `json:"date" validate:"required"`
	Exercises []domain.ExerciseSet `json:"exercises" validate:"required,min=1,dive"`
}

// SaveMeasurement overwrites the user's measurement for the request's day, or
// inserts it when the day has none.
func (s *RecordService) SaveMeasurement(ctx context.Context, userID uuid.UUID, req MeasurementRequest) (*domain.Measurement, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	day, err := domain.ParseDay(req.Date)
	if err != nil {
		return nil, invalid(err.Error())
	}

	m := &domain.Measurement{
		UserID:     userID,
		Date:       day,
		Waist:      req.Waist,
		Hips:       req.Hips,
		Thigh:      req.Thigh,
		Arm:        req.Arm,
		Chest:      req.Chest,
		UnderNavel: req.UnderNavel,
		Weight:     req.Weight,
	}

	if err := s.measurements.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AddMeal always appends a new meal, even if the day already has some.
func (s *RecordService) AddMeal(ctx context.Context, userID uuid.UUID, req MealRequest) (*domain.Meal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseInstant(req.Date)
	if err != nil {
		return nil, invalid(err.Error())
	}

	meal := &domain.Meal{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Items:     req.Items,
		CreatedAt: time.Now(),
	}

	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// AddWorkout always appends a new workout.
func (s *RecordService) AddWorkout(ctx context.Context, userID uuid.UUID, req WorkoutRequest) (*domain.Workout, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseInstant(req.Date)
	if err != nil {
		return nil, invalid(err.Error())
	}

	workout := &domain.Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Exercises: req.Exercises,
		CreatedAt: time.Now(),
	}

	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *RecordService) ListMeasurements(ctx context.Context, userID uuid.UUID) ([]*domain.Measurement, error) {
	return s.measurements.ListByUser(ctx, userID)
}

func (s *RecordService) ListMeals(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	return s.meals.ListByUser(ctx, userID)
}

func (s *RecordService) ListWorkouts(ctx context.Context, userID uuid.UUID) ([]*domain.Workout, error) {
	return s.workouts.ListByUser(ctx, userID)
}
