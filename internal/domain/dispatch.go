package domain

import (
	"errors"
	"fmt"
)

// Sensor package codes for the supported workout variants.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

var (
	// ErrUnknownWorkoutCode indicates a sensor package code outside the dispatch table.
	ErrUnknownWorkoutCode = errors.New("unknown workout code")
	// ErrArityMismatch indicates sensor data whose length does not match the variant's fields.
	ErrArityMismatch = errors.New("sensor data arity mismatch")
	// ErrNonPositiveDuration indicates a duration of zero or less.
	ErrNonPositiveDuration = errors.New("duration must be positive")
)

// SensorPackage is one fixed-shape record received from a fitness tracker:
// a workout code plus positional numeric readings.
type SensorPackage struct {
	Code string    `json:"code"`
	Data []float64 `json:"data"`
}

// BuildWorkout constructs the workout variant selected by code from
// positional sensor data. Data maps to the variant's fields in declaration
// order: RUN action, duration, weight; WLK adds height; SWM adds pool
// length and lap count. Arity and duration are validated here so that the
// formulas never divide by zero.
func BuildWorkout(code string, data []float64) (Workout, error) {
	switch code {
	case CodeRunning:
		if err := checkPackage(code, data, 3); err != nil {
			return nil, err
		}
		return Running{Effort: effortFrom(data)}, nil
	case CodeWalking:
		if err := checkPackage(code, data, 4); err != nil {
			return nil, err
		}
		return Walking{Effort: effortFrom(data), HeightCm: data[3]}, nil
	case CodeSwimming:
		if err := checkPackage(code, data, 5); err != nil {
			return nil, err
		}
		return Swimming{Effort: effortFrom(data), PoolLengthM: data[3], PoolLengthCount: data[4]}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutCode, code)
	}
}

func effortFrom(data []float64) Effort {
	return Effort{
		ActionCount:   int(data[0]),
		DurationHours: data[1],
		WeightKg:      data[2],
	}
}

func checkPackage(code string, data []float64, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s wants %d values, got %d", ErrArityMismatch, code, want, len(data))
	}
	if data[1] <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveDuration, data[1])
	}
	return nil
}
