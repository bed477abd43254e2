// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// WorkoutKind identifies one of the supported workout variants.
type WorkoutKind string

const (
	KindRunning  WorkoutKind = "Running"
	KindWalking  WorkoutKind = "Walking"
	KindSwimming WorkoutKind = "Swimming"
)

const (
	metersInKm = 1000.0
	minPerHour = 60.0

	stepLengthM   = 0.65 // one step, running and walking
	strokeLengthM = 1.38 // one swimming stroke
)

// Per-variant calorie coefficients.
const (
	runSpeedMultiplier = 18.0
	runSpeedShift      = 1.79

	walkWeightMultiplier      = 0.035
	walkSpeedHeightMultiplier = 0.029
	kmhToMs                   = 0.278
	cmInM                     = 100.0

	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2.0
)

// Workout is the closed set of workout record variants. Every variant
// carries its raw sensor inputs and derives distance, mean speed and
// calories from them. Records are immutable once constructed; callers
// must guarantee DurationHours > 0 (BuildWorkout enforces this).
type Workout interface {
	Kind() WorkoutKind
	DistanceKm() float64
	MeanSpeedKmh() float64
	CaloriesKcal() float64
	Summarize() Summary
}

// Effort holds the sensor inputs common to every workout variant.
type Effort struct {
	ActionCount   int     `json:"actionCount"`
	DurationHours float64 `json:"durationHours"`
	WeightKg      float64 `json:"weightKg"`
}

func (e Effort) distanceKm(strideM float64) float64 {
	return float64(e.ActionCount) * strideM / metersInKm
}

// Running is a running workout record.
type Running struct {
	Effort
}

func (r Running) Kind() WorkoutKind { return KindRunning }

func (r Running) DistanceKm() float64 {
	return r.distanceKm(stepLengthM)
}

func (r Running) MeanSpeedKmh() float64 {
	return r.DistanceKm() / r.DurationHours
}

func (r Running) CaloriesKcal() float64 {
	return (runSpeedMultiplier*r.MeanSpeedKmh() + runSpeedShift) *
		r.WeightKg / metersInKm * (r.DurationHours * minPerHour)
}

func (r Running) Summarize() Summary {
	return Summary{
		WorkoutType:   string(KindRunning),
		DurationHours: r.DurationHours,
		DistanceKm:    r.DistanceKm(),
		AvgSpeedKmh:   r.MeanSpeedKmh(),
		CaloriesKcal:  r.CaloriesKcal(),
	}
}

// Walking is a sports-walking workout record.
type Walking struct {
	Effort
	HeightCm float64 `json:"heightCm"`
}

func (w Walking) Kind() WorkoutKind { return KindWalking }

func (w Walking) DistanceKm() float64 {
	return w.distanceKm(stepLengthM)
}

func (w Walking) MeanSpeedKmh() float64 {
	return w.DistanceKm() / w.DurationHours
}

func (w Walking) CaloriesKcal() float64 {
	speedMs := w.MeanSpeedKmh() * kmhToMs
	return (walkWeightMultiplier*w.WeightKg +
		speedMs*speedMs/(w.HeightCm/cmInM)*walkSpeedHeightMultiplier*w.WeightKg) *
		(w.DurationHours * minPerHour)
}

func (w Walking) Summarize() Summary {
	return Summary{
		WorkoutType:   string(KindWalking),
		DurationHours: w.DurationHours,
		DistanceKm:    w.DistanceKm(),
		AvgSpeedKmh:   w.MeanSpeedKmh(),
		CaloriesKcal:  w.CaloriesKcal(),
	}
}

// Swimming is a pool swimming workout record. Mean speed comes from the
// pool length and lap count rather than the stroke-derived distance.
type Swimming struct {
	Effort
	PoolLengthM     float64 `json:"poolLengthM"`
	PoolLengthCount float64 `json:"poolLengthCount"`
}

func (s Swimming) Kind() WorkoutKind { return KindSwimming }

func (s Swimming) DistanceKm() float64 {
	return s.distanceKm(strokeLengthM)
}

func (s Swimming) MeanSpeedKmh() float64 {
	return s.PoolLengthM * s.PoolLengthCount / metersInKm / s.DurationHours
}

func (s Swimming) CaloriesKcal() float64 {
	return (s.MeanSpeedKmh() + swimSpeedShift) * swimWeightMultiplier *
		s.WeightKg * s.DurationHours
}

func (s Swimming) Summarize() Summary {
	return Summary{
		WorkoutType:   string(KindSwimming),
		DurationHours: s.DurationHours,
		DistanceKm:    s.DistanceKm(),
		AvgSpeedKmh:   s.MeanSpeedKmh(),
		CaloriesKcal:  s.CaloriesKcal(),
	}
}

// WorkoutEntry is a persisted workout with its computed summary.
type WorkoutEntry struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Code          string    `json:"code"`
	WorkoutType   string    `json:"workoutType"`
	DurationHours float64   `json:"durationHours"`
	DistanceKm    float64   `json:"distanceKm"`
	AvgSpeedKmh   float64   `json:"avgSpeedKmh"`
	CaloriesKcal  float64   `json:"caloriesKcal"`
	WeightKg      float64   `json:"weightKg"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DayTotals aggregates the workouts recorded on one local calendar day.
type DayTotals struct {
	DistanceKm   float64 `json:"distanceKm"`
	CaloriesKcal float64 `json:"caloriesKcal"`
	Workouts     int     `json:"workouts"`
}

// WorkoutRepository is the port for workout persistence.
type WorkoutRepository interface {
	AddWorkout(ctx context.Context, userID int64, e WorkoutEntry) (int64, error)
	DeleteWorkout(ctx context.Context, userID int64, id int64) error
	ListRecentWorkouts(ctx context.Context, userID int64, limit int) ([]WorkoutEntry, error)
	TotalsForLocalDay(ctx context.Context, userID int64, localDay string) (DayTotals, error)
	LatestWeightForLocalDay(ctx context.Context, userID int64, localDay string) (*WorkoutEntry, error)
}
