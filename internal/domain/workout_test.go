package domain_test

import (
	"math"
	"testing"

	"fittrack/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRunningMetrics(t *testing.T) {
	r := domain.Running{Effort: domain.Effort{ActionCount: 15000, DurationHours: 1, WeightKg: 75}}

	if got := r.DistanceKm(); !almostEqual(got, 9.75, 1e-9) {
		t.Errorf("DistanceKm() = %v; want 9.75", got)
	}
	if got := r.MeanSpeedKmh(); !almostEqual(got, 9.75, 1e-9) {
		t.Errorf("MeanSpeedKmh() = %v; want 9.75", got)
	}
	// (18*9.75 + 1.79) * 75 / 1000 * 60
	if got := r.CaloriesKcal(); !almostEqual(got, 797.805, 1e-6) {
		t.Errorf("CaloriesKcal() = %v; want 797.805", got)
	}
}

func TestWalkingMetrics(t *testing.T) {
	w := domain.Walking{
		Effort:   domain.Effort{ActionCount: 9000, DurationHours: 1, WeightKg: 75},
		HeightCm: 180,
	}

	if got := w.DistanceKm(); !almostEqual(got, 5.85, 1e-9) {
		t.Errorf("DistanceKm() = %v; want 5.85", got)
	}
	if got := w.MeanSpeedKmh(); !almostEqual(got, 5.85, 1e-9) {
		t.Errorf("MeanSpeedKmh() = %v; want 5.85", got)
	}
	// (0.035*75 + (5.85*0.278)^2/(180/100)*0.029*75) * 60
	if got := w.CaloriesKcal(); !almostEqual(got, 349.25174775, 1e-6) {
		t.Errorf("CaloriesKcal() = %v; want 349.25174775", got)
	}
}

func TestSwimmingMetrics(t *testing.T) {
	s := domain.Swimming{
		Effort:          domain.Effort{ActionCount: 720, DurationHours: 1, WeightKg: 80},
		PoolLengthM:     25,
		PoolLengthCount: 40,
	}

	if got := s.DistanceKm(); !almostEqual(got, 0.9936, 1e-9) {
		t.Errorf("DistanceKm() = %v; want 0.9936", got)
	}
	// Speed is defined by pool laps, not stroke distance.
	if got := s.MeanSpeedKmh(); !almostEqual(got, 1.0, 1e-9) {
		t.Errorf("MeanSpeedKmh() = %v; want 1.0", got)
	}
	// (1.0 + 1.1) * 2 * 80 * 1
	if got := s.CaloriesKcal(); !almostEqual(got, 336.0, 1e-9) {
		t.Errorf("CaloriesKcal() = %v; want 336.0", got)
	}
}

func TestDistanceLinearInActionCount(t *testing.T) {
	workouts := func(n int) []domain.Workout {
		e := domain.Effort{ActionCount: n, DurationHours: 1, WeightKg: 75}
		return []domain.Workout{
			domain.Running{Effort: e},
			domain.Walking{Effort: e, HeightCm: 180},
			domain.Swimming{Effort: e, PoolLengthM: 25, PoolLengthCount: 40},
		}
	}

	base := workouts(5000)
	doubled := workouts(10000)
	for i := range base {
		got := doubled[i].DistanceKm()
		want := 2 * base[i].DistanceKm()
		if !almostEqual(got, want, 1e-9) {
			t.Errorf("%s: doubled action count gives distance %v; want %v",
				base[i].Kind(), got, want)
		}
	}
}

func TestCaloriesMonotoneInDuration(t *testing.T) {
	running := func(h float64) domain.Workout {
		return domain.Running{Effort: domain.Effort{ActionCount: 15000, DurationHours: h, WeightKg: 75}}
	}
	swimming := func(h float64) domain.Workout {
		return domain.Swimming{
			Effort:      domain.Effort{ActionCount: 720, DurationHours: h, WeightKg: 80},
			PoolLengthM: 25, PoolLengthCount: 40,
		}
	}

	for _, tc := range []struct {
		name string
		make func(h float64) domain.Workout
	}{
		{"running", running},
		{"swimming", swimming},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prev := tc.make(0.5).CaloriesKcal()
			for _, h := range []float64{1, 1.5, 2, 3} {
				cur := tc.make(h).CaloriesKcal()
				if cur <= prev {
					t.Errorf("calories not increasing: %v h gives %v, previous %v", h, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestSummarizeTagsVariantName(t *testing.T) {
	tests := []struct {
		w    domain.Workout
		want string
	}{
		{domain.Running{Effort: domain.Effort{ActionCount: 1, DurationHours: 1, WeightKg: 70}}, "Running"},
		{domain.Walking{Effort: domain.Effort{ActionCount: 1, DurationHours: 1, WeightKg: 70}, HeightCm: 175}, "Walking"},
		{domain.Swimming{Effort: domain.Effort{ActionCount: 1, DurationHours: 1, WeightKg: 70}, PoolLengthM: 25, PoolLengthCount: 2}, "Swimming"},
	}
	for _, tc := range tests {
		s := tc.w.Summarize()
		if s.WorkoutType != tc.want {
			t.Errorf("Summarize().WorkoutType = %q; want %q", s.WorkoutType, tc.want)
		}
		if !almostEqual(s.DistanceKm, tc.w.DistanceKm(), 1e-9) ||
			!almostEqual(s.AvgSpeedKmh, tc.w.MeanSpeedKmh(), 1e-9) ||
			!almostEqual(s.CaloriesKcal, tc.w.CaloriesKcal(), 1e-9) {
			t.Errorf("%s: summary fields disagree with formulas: %+v", tc.want, s)
		}
	}
}
