package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/pkg/logger"
	"github.com/google/uuid"
)

// JSONStore keeps every habit in memory and mirrors the whole set to a
// single JSON file keyed by habit ID. Each mutation rewrites the file.
type JSONStore struct {
	path string

	mu     sync.RWMutex
	habits map[uuid.UUID]models.Habit
}

// NewJSONStore creates a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the mirror file. A missing file yields an empty store;
// malformed content is an error.
func (s *JSONStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.habits = make(map[uuid.UUID]models.Habit)
		logger.Log.WithField("path", s.path).Info("No habits file found, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read habits file: %w", err)
	}

	var raw map[string]models.Habit
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse habits file %s: %w", s.path, err)
	}

	habits := make(map[uuid.UUID]models.Habit, len(raw))
	for key, habit := range raw {
		id, err := uuid.Parse(key)
		if err != nil {
			return fmt.Errorf("failed to parse habits file %s: invalid key %q: %w", s.path, key, err)
		}
		if habit.ID != id {
			return fmt.Errorf("failed to parse habits file %s: key %s does not match habit id %s", s.path, key, habit.ID)
		}
		habits[id] = habit
	}
	s.habits = habits

	logger.Log.WithField("count", len(habits)).Info("Habits loaded from file")
	return nil
}

func (s *JSONStore) List(ctx context.Context) ([]models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.habits == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.habits))
	for _, habit := range s.habits {
		habits = append(habits, habit)
	}
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].ID.String() < habits[j].ID.String()
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *JSONStore) Get(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.habits == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habit, ok := s.habits[id]
	if !ok {
		return nil, ErrHabitNotFound
	}
	return &habit, nil
}

// Save inserts or replaces habit and rewrites the mirror. The in-memory set
// only changes once the file write has succeeded.
func (s *JSONStore) Save(ctx context.Context, habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.habits == nil {
		return fmt.Errorf("storage not loaded")
	}

	next := make(map[uuid.UUID]models.Habit, len(s.habits)+1)
	for id, h := range s.habits {
		next[id] = h
	}
	next[habit.ID] = habit

	if err := s.write(next); err != nil {
		return err
	}
	s.habits = next
	return nil
}

// Delete removes the habit if present. The file is rewritten only when
// something was removed.
func (s *JSONStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.habits == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	if _, ok := s.habits[id]; !ok {
		return false, nil
	}

	next := make(map[uuid.UUID]models.Habit, len(s.habits))
	for key, h := range s.habits {
		if key != id {
			next[key] = h
		}
	}

	if err := s.write(next); err != nil {
		return false, err
	}
	s.habits = next
	return true, nil
}

func (s *JSONStore) Close() error {
	return nil
}

// write serializes habits to a temp file next to the mirror and renames it
// into place.
func (s *JSONStore) write(habits map[uuid.UUID]models.Habit) error {
	raw := make(map[string]models.Habit, len(habits))
	for id, habit := range habits {
		raw[id.String()] = habit
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".habits-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write habits file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write habits file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write habits file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write habits file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to write habits file: %w", err)
	}

	logger.Log.WithField("count", len(habits)).Debug("Habits file rewritten")
	return nil
}
