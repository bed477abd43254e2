package domain

import "fmt"

// Summary holds the derived metrics of a single workout. It is created
// once per workout and never mutated.
type Summary struct {
	WorkoutType   string  `json:"workoutType"`
	DurationHours float64 `json:"durationHours"`
	DistanceKm    float64 `json:"distanceKm"`
	AvgSpeedKmh   float64 `json:"avgSpeedKmh"`
	CaloriesKcal  float64 `json:"caloriesKcal"`
}

// FormatMessage renders a summary as a single human-readable line.
// Every numeric field is rendered with exactly three decimal places.
func FormatMessage(s Summary) string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		s.WorkoutType, s.DurationHours, s.DistanceKm, s.AvgSpeedKmh, s.CaloriesKcal)
}
