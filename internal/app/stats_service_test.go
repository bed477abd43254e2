package app_test

import (
	"context"
	"math"
	"testing"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

func TestGetDaily_RejectsUnknownUnit(t *testing.T) {
	svc := app.NewStatsService(&mockWorkoutRepo{})
	if _, err := svc.GetDaily(context.Background(), 1, 7, "st"); err == nil {
		t.Fatal("expected error for unknown unit")
	}
}

func TestGetDaily_ReturnsOnePointPerDay(t *testing.T) {
	repo := &mockWorkoutRepo{
		totalsFn: func(_ context.Context, _ int64, _ string) (domain.DayTotals, error) {
			return domain.DayTotals{DistanceKm: 5, CaloriesKcal: 300, Workouts: 1}, nil
		},
	}
	svc := app.NewStatsService(repo)

	points, err := svc.GetDaily(context.Background(), 1, 7, "kg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	for _, p := range points {
		if p.DistanceKm != 5 || p.CaloriesKcal != 300 || p.Workouts != 1 {
			t.Errorf("unexpected point: %+v", p)
		}
		if p.Weight != nil {
			t.Errorf("expected nil weight for day %s", p.Day)
		}
	}
}

func TestGetDaily_ConvertsWeightUnit(t *testing.T) {
	repo := &mockWorkoutRepo{
		latestFn: func(_ context.Context, _ int64, _ string) (*domain.WorkoutEntry, error) {
			return &domain.WorkoutEntry{WeightKg: 100}, nil
		},
	}
	svc := app.NewStatsService(repo)

	points, err := svc.GetDaily(context.Background(), 1, 1, "lb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Weight == nil {
		t.Fatalf("expected one point with weight, got %+v", points)
	}
	if w := points[0].Weight; w.Unit != "lb" || math.Abs(w.Value-220.46226218) > 0.001 {
		t.Errorf("weight = %+v; want ~220.462 lb", w)
	}
}
