package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/internal/repository"
	"github.com/Dias221467/HealthHabit/pkg/logger"
	"github.com/google/uuid"
)

var (
	// ErrHabitNotFound is returned when no habit has the requested ID.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidHabitID is returned when an ID string is not a valid UUID.
	ErrInvalidHabitID = errors.New("invalid habit ID")
)

// HabitService encapsulates the business logic for habits.
//
// Every mutation runs load-check-mutate-persist under a single mutex, so
// concurrent requests within one process never interleave their writes.
type HabitService struct {
	repo repository.HabitStore
	now  func() time.Time

	mu sync.Mutex
}

// NewHabitService creates a new instance of HabitService.
func NewHabitService(repo repository.HabitStore) *HabitService {
	return &HabitService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ParseHabitID converts the string form of a habit ID.
func ParseHabitID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidHabitID, id)
	}
	return parsed, nil
}

// GetAllHabits returns every stored habit.
func (s *HabitService) GetAllHabits(ctx context.Context) ([]models.Habit, error) {
	habits, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch all habits")
		return nil, fmt.Errorf("failed to fetch habits: %w", err)
	}
	return habits, nil
}

// GetHabit retrieves a habit by its ID.
func (s *HabitService) GetHabit(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	return s.get(ctx, id)
}

// CreateHabit validates the payload and stores a new habit with fresh
// identity and lifecycle fields.
func (s *HabitService) CreateHabit(ctx context.Context, input models.HabitCreate) (*models.Habit, error) {
	if err := input.Validate(); err != nil {
		logger.Log.WithError(err).Warn("Invalid habit payload during creation")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	habit := models.Habit{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         input.Name,
		Description:  input.Description,
		Frequency:    input.Frequency,
		TargetValue:  input.TargetValue,
		Unit:         input.Unit,
		ReminderTime: input.ReminderTime,
		CreatedAt:    now,
		UpdatedAt:    now,
		IsActive:     true,
		Streak:       0,
	}

	if err := s.repo.Save(ctx, habit); err != nil {
		logger.Log.WithError(err).Error("Service failed to create habit")
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	logger.Log.WithField("habit_id", habit.ID.String()).Info("Habit created")
	return &habit, nil
}

// UpdateHabit applies the fields present in input and leaves the rest untouched.
func (s *HabitService) UpdateHabit(ctx context.Context, id uuid.UUID, input models.HabitUpdate) (*models.Habit, error) {
	if err := input.Validate(); err != nil {
		logger.Log.WithField("habit_id", id.String()).WithError(err).Warn("Invalid habit update payload")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(habit)
	habit.UpdatedAt = s.later(habit.UpdatedAt)

	if err := s.repo.Save(ctx, *habit); err != nil {
		logger.Log.WithField("habit_id", id.String()).WithError(err).Error("Failed to update habit")
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	logger.Log.WithField("habit_id", id.String()).Info("Habit updated")
	return habit, nil
}

// DeleteHabit removes a habit and reports whether anything was removed.
func (s *HabitService) DeleteHabit(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Log.WithField("habit_id", id.String()).WithError(err).Error("Failed to delete habit")
		return false, fmt.Errorf("failed to delete habit: %w", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"habit_id": id.String(),
		"removed":  removed,
	}).Info("Habit delete processed")
	return removed, nil
}

// CompleteHabit records a completion: last_completed is set to now and the
// streak grows by one.
func (s *HabitService) CompleteHabit(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.later(habit.UpdatedAt)
	habit.LastCompleted = &now
	habit.Streak++
	habit.UpdatedAt = now

	if err := s.repo.Save(ctx, *habit); err != nil {
		logger.Log.WithField("habit_id", id.String()).WithError(err).Error("Failed to complete habit")
		return nil, fmt.Errorf("failed to complete habit: %w", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"habit_id": id.String(),
		"streak":   habit.Streak,
	}).Info("Habit completed")
	return habit, nil
}

// GetHabitStats summarises the tracking state of a habit.
func (s *HabitService) GetHabitStats(ctx context.Context, id uuid.UUID) (*models.HabitStats, error) {
	habit, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.HabitStats{
		Streak:         habit.Streak,
		LastCompleted:  habit.LastCompleted,
		CreatedAt:      habit.CreatedAt,
		CompletionRate: completionRate(habit),
	}, nil
}

// completionRate only distinguishes "never completed" from "completed at
// least once"; individual completions are not recorded.
func completionRate(h *models.Habit) float64 {
	if h.LastCompleted == nil {
		return 0.0
	}
	return 1.0
}

func (s *HabitService) get(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	habit, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrHabitNotFound) {
		logger.Log.WithField("habit_id", id.String()).Warn("Habit not found")
		return nil, ErrHabitNotFound
	}
	if err != nil {
		logger.Log.WithField("habit_id", id.String()).WithError(err).Error("Failed to get habit from repository")
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	return habit, nil
}

// later returns the current time, never earlier than prev, so updated_at
// stays monotonic even if the wall clock steps backwards.
func (s *HabitService) later(prev time.Time) time.Time {
	now := s.now()
	if now.Before(prev) {
		return prev
	}
	return now
}
