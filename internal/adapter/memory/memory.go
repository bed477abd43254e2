// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fittrack/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	workouts []domain.WorkoutEntry
	users    []*domain.User
	sessions map[string]*domain.Session

	workoutIDCounter int64
	userIDCounter    int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.WorkoutRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- WorkoutRepository ---

// AddWorkout adds a workout entry.
func (db *DB) AddWorkout(ctx context.Context, userID int64, e domain.WorkoutEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.workoutIDCounter++
	e.ID = db.workoutIDCounter
	e.UserID = userID
	e.CreatedAt = e.CreatedAt.UTC()
	db.workouts = append(db.workouts, e)
	return e.ID, nil
}

// DeleteWorkout deletes a workout by ID.
func (db *DB) DeleteWorkout(ctx context.Context, userID int64, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, w := range db.workouts {
		if w.ID == id && w.UserID == userID {
			db.workouts = append(db.workouts[:i], db.workouts[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListRecentWorkouts lists the most recent workouts.
func (db *DB) ListRecentWorkouts(ctx context.Context, userID int64, limit int) ([]domain.WorkoutEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WorkoutEntry, 0, len(db.workouts))
	for _, w := range db.workouts {
		if w.UserID == userID {
			result = append(result, w)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// TotalsForLocalDay aggregates workouts for the given day.
func (db *DB) TotalsForLocalDay(ctx context.Context, userID int64, localDay string) (domain.DayTotals, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	dayStart, dayEnd, err := localDayBounds(localDay)
	if err != nil {
		return domain.DayTotals{}, err
	}

	var t domain.DayTotals
	for _, w := range db.workouts {
		if w.UserID == userID && inRange(w.CreatedAt, dayStart, dayEnd) {
			t.DistanceKm += w.DistanceKm
			t.CaloriesKcal += w.CaloriesKcal
			t.Workouts++
		}
	}
	return t, nil
}

// LatestWeightForLocalDay returns the latest workout for the given day.
func (db *DB) LatestWeightForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.WorkoutEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	dayStart, dayEnd, err := localDayBounds(localDay)
	if err != nil {
		return nil, err
	}

	var latest *domain.WorkoutEntry
	for i := range db.workouts {
		w := &db.workouts[i]
		if w.UserID != userID || !inRange(w.CreatedAt, dayStart, dayEnd) {
			continue
		}
		if latest == nil || w.CreatedAt.After(latest.CreatedAt) {
			latest = w
		}
	}

	if latest == nil {
		return nil, nil
	}
	ret := *latest
	return &ret, nil
}

func localDayBounds(localDay string) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	// Compare in UTC, matching how entries are stored and how Postgres compares.
	return dayStart.UTC(), dayStart.Add(24 * time.Hour).UTC(), nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session storage over the in-memory DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	return s, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
