// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
)

// ErrImplausibleWeight indicates a body weight outside the accepted range.
var ErrImplausibleWeight = errors.New("weight must be within (0, 500] kg")

// WorkoutService encapsulates workout-recording use cases.
type WorkoutService struct {
	repo domain.WorkoutRepository
}

// NewWorkoutService creates a WorkoutService backed by the given repository.
func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// Preview builds the workout for a sensor package and returns its summary
// without persisting anything.
func (s *WorkoutService) Preview(code string, data []float64) (domain.Summary, error) {
	w, err := domain.BuildWorkout(code, data)
	if err != nil {
		return domain.Summary{}, err
	}
	return w.Summarize(), nil
}

// RecordPackage builds the workout for a sensor package, computes its
// summary and stores the result.
func (s *WorkoutService) RecordPackage(ctx context.Context, userID int64, code string, data []float64) (domain.WorkoutEntry, error) {
	w, err := domain.BuildWorkout(code, data)
	if err != nil {
		return domain.WorkoutEntry{}, err
	}

	// Weight is the third slot for every workout code.
	weight := data[2]
	if weight <= 0 || weight > 500 {
		return domain.WorkoutEntry{}, ErrImplausibleWeight
	}

	sum := w.Summarize()
	entry := domain.WorkoutEntry{
		UserID:        userID,
		Code:          code,
		WorkoutType:   sum.WorkoutType,
		DurationHours: sum.DurationHours,
		DistanceKm:    sum.DistanceKm,
		AvgSpeedKmh:   sum.AvgSpeedKmh,
		CaloriesKcal:  sum.CaloriesKcal,
		WeightKg:      weight,
		CreatedAt:     time.Now(),
	}

	id, err := s.repo.AddWorkout(ctx, userID, entry)
	if err != nil {
		return domain.WorkoutEntry{}, err
	}
	entry.ID = id
	return entry, nil
}

// ListRecent returns the most recent workouts up to limit.
func (s *WorkoutService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WorkoutEntry, error) {
	return s.repo.ListRecentWorkouts(ctx, userID, limit)
}

// UndoLast deletes the most recent workout.
func (s *WorkoutService) UndoLast(ctx context.Context, userID int64) (bool, int64, error) {
	items, err := s.repo.ListRecentWorkouts(ctx, userID, 1)
	if err != nil {
		return false, 0, err
	}
	if len(items) == 0 {
		return false, 0, nil
	}
	if err := s.repo.DeleteWorkout(ctx, userID, items[0].ID); err != nil {
		return false, 0, err
	}
	return true, items[0].ID, nil
}
