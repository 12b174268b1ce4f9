package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// HabitHandler handles HTTP requests related to habits.
type HabitHandler struct {
	Service *services.HabitService
}

// NewHabitHandler creates a new instance of HabitHandler.
func NewHabitHandler(service *services.HabitService) *HabitHandler {
	return &HabitHandler{Service: service}
}

// GetHabitsHandler returns all habits.
func (h *HabitHandler) GetHabitsHandler(w http.ResponseWriter, r *http.Request) {
	habits, err := h.Service.GetAllHabits(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch habits")
		http.Error(w, "Failed to fetch habits", http.StatusInternalServerError)
		return
	}

	writeJSON(w, habits)
}

// GetHabitHandler returns a single habit by its ID.
func (h *HabitHandler) GetHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := habitID(w, r)
	if !ok {
		return
	}

	habit, err := h.Service.GetHabit(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch habit")
		return
	}

	writeJSON(w, habit)
}

// CreateHabitHandler handles the creation of a new habit.
func (h *HabitHandler) CreateHabitHandler(w http.ResponseWriter, r *http.Request) {
	var input models.HabitCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during habit creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	habit, err := h.Service.CreateHabit(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, "Failed to create habit")
		return
	}

	logrus.WithField("habitID", habit.ID.String()).Info("Habit successfully created")
	writeJSON(w, habit)
}

// UpdateHabitHandler merges the supplied fields into an existing habit.
func (h *HabitHandler) UpdateHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := habitID(w, r)
	if !ok {
		return
	}

	var input models.HabitUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during habit update")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	habit, err := h.Service.UpdateHabit(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err, "Failed to update habit")
		return
	}

	writeJSON(w, habit)
}

// DeleteHabitHandler removes a habit.
func (h *HabitHandler) DeleteHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := habitID(w, r)
	if !ok {
		return
	}

	removed, err := h.Service.DeleteHabit(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to delete habit")
		return
	}
	if !removed {
		logrus.WithField("habitID", id.String()).Warn("Habit not found for deletion")
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]string{"message": "Habit deleted successfully"})
}

// CompleteHabitHandler marks a habit as done for now and extends its streak.
func (h *HabitHandler) CompleteHabitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := habitID(w, r)
	if !ok {
		return
	}

	habit, err := h.Service.CompleteHabit(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to complete habit")
		return
	}

	writeJSON(w, habit)
}

// GetHabitStatsHandler returns streak and completion figures for a habit.
func (h *HabitHandler) GetHabitStatsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := habitID(w, r)
	if !ok {
		return
	}

	stats, err := h.Service.GetHabitStats(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch habit stats")
		return
	}

	writeJSON(w, stats)
}

// habitID parses the {id} route variable, writing a 400 when it is malformed.
func habitID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := services.ParseHabitID(raw)
	if err != nil {
		logrus.WithField("habitID", raw).Warn("Invalid habit ID format")
		http.Error(w, "Invalid habit ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidHabitID):
		http.Error(w, "Invalid habit ID", http.StatusBadRequest)
	case errors.Is(err, services.ErrHabitNotFound):
		http.Error(w, "Habit not found", http.StatusNotFound)
	default:
		logrus.WithError(err).Error(fallback)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}
