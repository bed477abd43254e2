package adapthttp

import (
	"errors"
	"net/http"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

func isBadPackage(err error) bool {
	return errors.Is(err, domain.ErrUnknownWorkoutCode) ||
		errors.Is(err, domain.ErrArityMismatch) ||
		errors.Is(err, domain.ErrNonPositiveDuration) ||
		errors.Is(err, app.ErrImplausibleWeight)
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.recordWorkout(w, r)
	case http.MethodGet:
		s.listWorkouts(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) recordWorkout(w http.ResponseWriter, r *http.Request) {
	var body domain.SensorPackage
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.workouts.RecordPackage(r.Context(), s.currentUserID(r), body.Code, body.Data)
	if err != nil {
		if isBadPackage(err) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entry":   entry,
		"message": domain.FormatMessage(summaryOf(entry)),
	})
}

func (s *Server) listWorkouts(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 20)
	items, err := s.workouts.ListRecent(r.Context(), s.currentUserID(r), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWorkoutPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body domain.SensorPackage
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sum, err := s.workouts.Preview(body.Code, body.Data)
	if err != nil {
		if isBadPackage(err) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": sum,
		"message": domain.FormatMessage(sum),
	})
}

func (s *Server) handleWorkoutUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	undone, id, err := s.workouts.UndoLast(r.Context(), s.currentUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"undone": undone, "id": id})
}

func summaryOf(e domain.WorkoutEntry) domain.Summary {
	return domain.Summary{
		WorkoutType:   e.WorkoutType,
		DurationHours: e.DurationHours,
		DistanceKm:    e.DistanceKm,
		AvgSpeedKmh:   e.AvgSpeedKmh,
		CaloriesKcal:  e.CaloriesKcal,
	}
}
