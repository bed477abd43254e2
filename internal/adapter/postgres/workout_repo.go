package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fittrack/internal/domain"
)

// AddWorkout inserts a new workout entry.
func (d *DB) AddWorkout(ctx context.Context, userID int64, e domain.WorkoutEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO workouts(user_id, code, workout_type, duration_hours, distance_km, avg_speed_kmh, calories_kcal, weight_kg, created_at) "+
			"VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;",
		userID, e.Code, e.WorkoutType, e.DurationHours, e.DistanceKm, e.AvgSpeedKmh, e.CaloriesKcal, e.WeightKg, e.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteWorkout removes a workout by id.
func (d *DB) DeleteWorkout(ctx context.Context, userID int64, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM workouts WHERE id=$1 AND user_id=$2;", id, userID)
	return err
}

// ListRecentWorkouts returns the most recent workouts up to limit.
func (d *DB) ListRecentWorkouts(ctx context.Context, userID int64, limit int) ([]domain.WorkoutEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, code, workout_type, duration_hours, distance_km, avg_speed_kmh, calories_kcal, weight_kg, created_at "+
			"FROM workouts WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WorkoutEntry, 0, limit)
	for rows.Next() {
		var e domain.WorkoutEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Code, &e.WorkoutType, &e.DurationHours,
			&e.DistanceKm, &e.AvgSpeedKmh, &e.CaloriesKcal, &e.WeightKg, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// TotalsForLocalDay aggregates distance, calories and workout count for a
// local calendar day.
func (d *DB) TotalsForLocalDay(ctx context.Context, userID int64, localDay string) (domain.DayTotals, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return domain.DayTotals{}, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	row := d.sql.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(distance_km), 0), COALESCE(SUM(calories_kcal), 0), COUNT(1) "+
			"FROM workouts WHERE user_id=$1 AND created_at >= $2 AND created_at < $3;",
		userID, dayStart.UTC(), dayEnd.UTC(),
	)

	var t domain.DayTotals
	if err := row.Scan(&t.DistanceKm, &t.CaloriesKcal, &t.Workouts); err != nil {
		return domain.DayTotals{}, err
	}
	return t, nil
}

// LatestWeightForLocalDay returns the most recent workout of a local
// calendar day, nil if none was recorded.
func (d *DB) LatestWeightForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.WorkoutEntry, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	row := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, code, workout_type, duration_hours, distance_km, avg_speed_kmh, calories_kcal, weight_kg, created_at "+
			"FROM workouts WHERE user_id=$1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC LIMIT 1;",
		userID, dayStart.UTC(), dayEnd.UTC(),
	)

	var e domain.WorkoutEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Code, &e.WorkoutType, &e.DurationHours,
		&e.DistanceKm, &e.AvgSpeedKmh, &e.CaloriesKcal, &e.WeightKg, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
