package app

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
)

// StatsService encapsulates per-day statistics use cases.
type StatsService struct {
	repo domain.WorkoutRepository
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(repo domain.WorkoutRepository) *StatsService {
	return &StatsService{repo: repo}
}

// GetTodayTotals returns the workout totals for the given local day.
func (s *StatsService) GetTodayTotals(ctx context.Context, userID int64, today string) (domain.DayTotals, error) {
	return s.repo.TotalsForLocalDay(ctx, userID, today)
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day          string       `json:"day"`
	DistanceKm   float64      `json:"distanceKm"`
	CaloriesKcal float64      `json:"caloriesKcal"`
	Workouts     int          `json:"workouts"`
	Weight       *WeightPoint `json:"weight"`
}

// WeightPoint is the optional body-weight value within a DayPoint, taken
// from the latest workout recorded that day.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GetDaily returns per-day workout totals for the last days days, with
// body weights converted to the requested unit.
func (s *StatsService) GetDaily(ctx context.Context, userID int64, days int, unit string) ([]DayPoint, error) {
	if unit != "kg" && unit != "lb" {
		return nil, errors.New("unit must be \"kg\" or \"lb\"")
	}
	if days > 366 {
		days = 366
	}

	today := time.Now().In(time.Local)
	points := make([]DayPoint, 0, days)

	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		dayStr := d.Format("2006-01-02")

		totals, err := s.repo.TotalsForLocalDay(ctx, userID, dayStr)
		if err != nil {
			return nil, err
		}

		entry, err := s.repo.LatestWeightForLocalDay(ctx, userID, dayStr)
		if err != nil {
			return nil, err
		}

		var wp *WeightPoint
		if entry != nil {
			val := entry.WeightKg
			if unit != "kg" {
				val = domain.ConvertWeight(val, "kg", unit)
			}
			wp = &WeightPoint{Value: val, Unit: unit}
		}

		points = append(points, DayPoint{
			Day:          dayStr,
			DistanceKm:   totals.DistanceKm,
			CaloriesKcal: totals.CaloriesKcal,
			Workouts:     totals.Workouts,
			Weight:       wp,
		})
	}
	return points, nil
}
